package cli

import (
	"context"

	"todolist/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute replaces the name and description of the task matching args[0].
// The completion flag is left as it is.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidInputError("command", "edit", "usage: todo edit ID NAME DESCRIPTION")
	}

	id, err := c.app.resolveID(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	task, err := c.app.api.UpdateTask(ctx, id, args[1], args[2])
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	c.app.printf("Updated task %s: %s\n\n", task.ShortID(c.app.config.Display.IDLength), task.Name)
	return printTasks(ctx, c.app, c.errorHandler)
}
