package cli

import (
	"context"
)

// DeleteCommand removes a task permanently
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) error {
	id, ok, err := c.app.selectExistingTask(ctx, "Task ID to delete: ")
	if err != nil || !ok {
		return err
	}

	if err := c.app.service.DeleteTask(ctx, id); err != nil {
		return err
	}

	c.app.printf("\nTask %d deleted.\n", id)
	return nil
}
