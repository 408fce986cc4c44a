package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"todolist/internal/api"
	"todolist/internal/config"
)

// App represents the main CLI application
type App struct {
	api      api.API
	config   *config.Config
	out      io.Writer
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with default configuration
func NewApp(api api.API) *App {
	return NewAppWithConfig(api, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application writing to stdout
func NewAppWithConfig(api api.API, cfg *config.Config) *App {
	return NewAppWithOutput(api, cfg, os.Stdout)
}

// NewAppWithOutput creates a new CLI application writing to out
func NewAppWithOutput(api api.API, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:    api,
		config: cfg,
		out:    out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// resolveID expands a full ID or unique prefix typed by the user
func (a *App) resolveID(ctx context.Context, ref string) (string, error) {
	return a.api.ResolveTaskID(ctx, ref)
}
