package cli

import (
	"context"

	"todolist/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: todo delete ID")
	}
	return c.deleteTask(ctx, args[0])
}

func (c *DeleteCommand) deleteTask(ctx context.Context, ref string) error {
	id, err := c.app.resolveID(ctx, ref)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	task, err := c.app.api.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if err := c.app.api.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	c.app.printf("Deleted task %s: %s\n\n", task.ShortID(c.app.config.Display.IDLength), task.Name)
	return printTasks(ctx, c.app, c.errorHandler)
}
