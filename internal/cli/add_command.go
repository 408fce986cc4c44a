package cli

import (
	"context"

	"todolist/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
	completed    bool
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// WithCompleted returns a copy of the handler that creates tasks already marked done
func (c *AddCommand) WithCompleted(completed bool) *AddCommand {
	next := *c
	next.completed = completed
	return &next
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "add", "usage: todo add NAME DESCRIPTION [--completed]")
	}

	task, err := c.app.api.CreateTask(ctx, args[0], args[1], c.completed)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.printf("Added task %s: %s\n\n", task.ShortID(c.app.config.Display.IDLength), task.Name)
	return printTasks(ctx, c.app, c.errorHandler)
}
