package cli

import (
	"context"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

type statusChoice struct {
	key    string
	status domain.Status
}

// Statuses a task can be moved to from the update menu.
var statusChoices = []statusChoice{
	{key: "1", status: domain.StatusInProgress},
	{key: "2", status: domain.StatusDone},
}

// UpdateCommand changes the status of an existing task
type UpdateCommand struct {
	app *App
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{app: app}
}

// Execute runs the update command
func (c *UpdateCommand) Execute(ctx context.Context) error {
	id, ok, err := c.app.selectExistingTask(ctx, "Task ID: ")
	if err != nil || !ok {
		return err
	}

	c.app.println()
	for _, choice := range statusChoices {
		c.app.printf("%s. %s\n", choice.key, choice.status.Label())
	}

	input, err := c.app.prompt("New status (1-2): ")
	if err != nil {
		return err
	}

	status, found := lookupStatusChoice(input)
	if !found {
		return errors.NewInvalidInputError("status choice", input, "choose 1 or 2")
	}

	if err := c.app.service.UpdateTaskStatus(ctx, id, status); err != nil {
		return err
	}

	c.app.printf("\nTask %d updated to '%s'.\n", id, status)
	return nil
}

func lookupStatusChoice(input string) (domain.Status, bool) {
	for _, choice := range statusChoices {
		if choice.key == input {
			return choice.status, true
		}
	}
	return "", false
}
