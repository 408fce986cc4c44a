package cli

import (
	"context"
	"strings"

	"todolist/internal/domain"
	"todolist/internal/errors"
	"todolist/internal/logging"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command. An empty store is seeded first when seeding is enabled.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "list", "usage: todo list")
	}

	if c.app.config.Seed.Enabled {
		result := c.app.api.SeedIfEmpty(ctx)
		if result.Err == nil && !result.Skipped {
			logging.Infof("imported %d sample tasks", result.Imported)
		}
	}

	return printTasks(ctx, c.app, c.errorHandler)
}

// printTasks fetches a fresh snapshot and writes it out
func printTasks(ctx context.Context, app *App, eh *ErrorHandler) error {
	snapshot, err := app.api.FetchAll(ctx)
	if err != nil {
		return eh.Handle("list tasks", err)
	}
	printSnapshot(app, snapshot)
	return nil
}

// printSnapshot prints one line per task in the format:
// shortID [✓] name
// followed by an indented description line when the task has one.
func printSnapshot(app *App, snapshot domain.Snapshot) {
	if snapshot.IsEmpty() {
		app.println("No tasks found")
		return
	}

	idLength := app.config.Display.IDLength
	for _, task := range snapshot.Tasks() {
		app.printf("%s [%s] %s\n", task.ShortID(idLength), task.StatusMark(), singleLine(task.Name))
		if desc := singleLine(task.Description); desc != "" {
			app.printf("%s     %s\n", strings.Repeat(" ", len(task.ShortID(idLength))), desc)
		}
	}

	app.printf("\n%d %s, %d completed\n", snapshot.Len(), plural(snapshot.Len(), "task", "tasks"), snapshot.CompletedCount())
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
