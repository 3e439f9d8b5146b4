package cli

import (
	"context"
)

// AddCommand asks for a title and description and stores a new task
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context) error {
	title, err := c.app.prompt("Task title: ")
	if err != nil {
		return err
	}
	description, err := c.app.prompt("Task description: ")
	if err != nil {
		return err
	}

	// Rejected input never reaches the database.
	if err := c.app.taskValidator.ValidateTaskForCreation(title, description); err != nil {
		return err
	}

	task, err := c.app.service.AddTask(ctx, title, description)
	if err != nil {
		return err
	}

	c.app.printf("\nTask added with ID %d.\n", task.ID)
	return nil
}
