package cli

import (
	"context"
	"fmt"

	"todolist/internal/errors"
	"todolist/internal/services"
)

// SeedCommand imports the sample tasks into an empty store
type SeedCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSeedCommand creates a new seed command handler
func NewSeedCommand(app *App) *SeedCommand {
	return &SeedCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the seeder regardless of the startup setting and prints what it did
func (c *SeedCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "seed", "usage: todo seed")
	}

	result := c.app.api.SeedIfEmpty(ctx)
	if result.Err != nil {
		return c.errorHandler.Handle("seed tasks", result.Err)
	}

	c.app.println(FormatSeedResult(result))
	return nil
}

// FormatSeedResult describes the outcome of a successful seeding run
func FormatSeedResult(result services.SeedResult) string {
	if result.Skipped {
		return "Store already has tasks, nothing imported"
	}
	msg := fmt.Sprintf("Imported %d of %d %s", result.Imported, result.Fetched, plural(result.Fetched, "task", "tasks"))
	if result.Failed > 0 {
		msg += fmt.Sprintf(" (%d failed)", result.Failed)
	}
	return msg
}
