package cli

import (
	"context"

	"task-manager/internal/errors"
)

const taskSeparator = "------------------------------"

// ListCommand prints the tasks that are not done yet
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) error {
	_, err := c.app.showActiveTasks(ctx)
	return err
}

// showActiveTasks prints the active tasks and reports how many there were.
func (a *App) showActiveTasks(ctx context.Context) (int, error) {
	tasks, err := a.service.ListActiveTasks(ctx)
	if err != nil {
		return 0, err
	}

	if len(tasks) == 0 {
		a.println("The task list is empty.")
		return 0, nil
	}

	a.println(taskSeparator)
	for _, task := range tasks {
		a.printf("ID: %d\n", task.ID)
		a.printf("Title: %s\n", task.Title)
		a.printf("Description: %s\n", task.Description)
		a.printf("Status: %s\n", task.Status)
		a.println(taskSeparator)
	}
	return len(tasks), nil
}

// selectExistingTask lists the active tasks and asks for an id. It returns
// ok=false without error when there is nothing to choose from.
func (a *App) selectExistingTask(ctx context.Context, label string) (id int64, ok bool, err error) {
	count, err := a.showActiveTasks(ctx)
	if err != nil || count == 0 {
		return 0, false, err
	}

	input, err := a.prompt(label)
	if err != nil {
		return 0, false, err
	}

	id, err = a.taskValidator.ParseTaskID(input)
	if err != nil {
		return 0, false, err
	}

	exists, err := a.service.TaskExists(ctx, id)
	if err != nil {
		return 0, false, err
	}
	if !exists {
		return 0, false, errors.NewTaskNotFoundError(id)
	}

	return id, true, nil
}
