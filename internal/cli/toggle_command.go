package cli

import (
	"context"

	"todolist/internal/errors"
)

// ToggleCommand flips the completion flag of one task
type ToggleCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the toggle command
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "toggle", "usage: todo toggle ID")
	}

	id, err := c.app.resolveID(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	task, err := c.app.api.ToggleTaskCompleted(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	state := "not done"
	if task.IsCompleted {
		state = "done"
	}
	c.app.printf("Marked task %s as %s: %s\n\n", task.ShortID(c.app.config.Display.IDLength), state, task.Name)
	return printTasks(ctx, c.app, c.errorHandler)
}
