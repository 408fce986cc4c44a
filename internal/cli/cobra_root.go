package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todolist/internal/api"
	"todolist/internal/config"
	"todolist/internal/logging"
	"todolist/internal/tui"
)

// APIFactory builds the API once flags have been applied to cfg. The returned closer
// releases whatever the API holds open.
type APIFactory func(cfg *config.Config) (api.API, io.Closer, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	factory APIFactory

	api     api.API
	closers []io.Closer
}

// NewRootCommand creates the root cobra command with global flags. The API is built
// lazily by factory, after flag overrides are applied.
func NewRootCommand(cfg *config.Config, factory APIFactory) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	root := &RootCommand{
		config:  cfg,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A small persistent to-do list",
		Long: `todo keeps a list of tasks, each with a name, a description and a done flag.

FEATURES:
  • Add, edit, toggle and delete tasks from the command line
  • Browse and edit the list interactively with todo ui
  • An empty list is filled once with sample tasks from a public endpoint
  • Fully configurable via environment variables, a .env file and command-line flags

EXAMPLES:
  todo list                                # Show every task
  todo add "Buy milk" "Two litres"         # Add a task
  todo add "Pay rent" "March" --completed  # Add a task that is already done
  todo toggle 3f2a                         # Flip the done flag (ID prefix is enough)
  todo edit 3f2a "Buy oat milk" "One litre"
  todo delete 3f2a
  todo seed                                # Import sample tasks into an empty list
  todo ui                                  # Interactive list

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env > defaults

  Database Configuration:
    TODO_DB_DIR                            Database directory (default: ~/.todo)
    TODO_DB_FILENAME                       Database filename, :memory: for a scratch list (default: todo.db)
    TODO_DB_QUERY_TIMEOUT                  Query timeout (default: 10s)
    TODO_DB_WRITE_TIMEOUT                  Write timeout (default: 5s)

  Seed Configuration:
    TODO_SEED_ENABLED                      Import sample tasks into an empty list (default: true)
    TODO_SEED_URL                          Sample task endpoint (default: https://dummyjson.com/todos)
    TODO_SEED_TIMEOUT                      Request timeout (default: 10s)

  Validation Configuration:
    TODO_VALIDATION_NAME_MAX               Max name length (default: 255)
    TODO_VALIDATION_DESCRIPTION_MAX        Max description length (default: 4096)

  Application Configuration:
    TODO_APP_TIMEOUT                       Per-command timeout (default: 60s)
    TODO_APP_VERBOSE                       Enable verbose output (default: false)
    TODO_LOG_FILE                          Append log output to this file
    TODO_DEBUG                             Enable debug logging
    TODO_ENV                               development (./todo.db), testing (:memory:) or production (default)

GETTING HELP:
  todo [command] --help                    # Get help for any specific command
  todo completion bash                     # Generate bash completion script`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runHandler(cmd, args, func(app *App) Command { return NewListCommand(app) })
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// NewRootCommandWithAPI creates a root command over an existing API
func NewRootCommandWithAPI(apiInstance api.API, cfg *config.Config) *RootCommand {
	return NewRootCommand(cfg, func(*config.Config) (api.API, io.Closer, error) {
		return apiInstance, nil, nil
	})
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and releases the API afterwards
func (r *RootCommand) Execute() error {
	defer r.close()
	return r.cmd.Execute()
}

// ExecuteArgs runs the root command with explicit arguments
func (r *RootCommand) ExecuteArgs(args []string) error {
	r.cmd.SetArgs(args)
	return r.Execute()
}

func (r *RootCommand) close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			logging.Warnf("close: %v", err)
		}
	}
	r.closers = nil
	r.api = nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TODO_DB_WRITE_TIMEOUT)")

	// Seed configuration
	flags.String("seed-url", "", "Sample task endpoint (overrides TODO_SEED_URL)")
	flags.Duration("seed-timeout", 0, "Sample task request timeout (overrides TODO_SEED_TIMEOUT)")
	flags.Bool("no-seed", false, "Do not import sample tasks into an empty list (overrides TODO_SEED_ENABLED)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides TODO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
	flags.String("log-file", "", "Append log output to this file (overrides TODO_LOG_FILE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long: `List every task, oldest first.

An empty list is first filled with sample tasks unless seeding is disabled.
Each line starts with the first characters of the task ID; any unique prefix
can be passed to edit, toggle and delete.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runHandler(cmd, args, func(app *App) Command { return NewListCommand(app) })
		},
	}

	addCmd := &cobra.Command{
		Use:   "add NAME DESCRIPTION",
		Short: "Add a task",
		Long: `Add a task. Name and description must both contain something other than whitespace.

Examples:
  todo add "Buy milk" "Two litres"
  todo add "Renew passport" "Book an appointment" --completed`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			completed, _ := cmd.Flags().GetBool("completed")
			return r.runHandler(cmd, args, func(app *App) Command {
				return NewAddCommand(app).WithCompleted(completed)
			})
		},
	}
	addCmd.Flags().BoolP("completed", "c", false, "Create the task already marked done")

	editCmd := &cobra.Command{
		Use:   "edit ID NAME DESCRIPTION",
		Short: "Replace the name and description of a task",
		Long:  "Replace the name and description of a task. The done flag is kept.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runHandler(cmd, args, func(app *App) Command { return NewEditCommand(app) })
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Long:  "Delete a task. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runHandler(cmd, args, func(app *App) Command { return NewDeleteCommand(app) })
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip the done flag of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runHandler(cmd, args, func(app *App) Command { return NewToggleCommand(app) })
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Import sample tasks into an empty list",
		Long: `Fetch sample tasks from the seed endpoint and store them, but only when the list is empty.
A list that already has tasks is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runHandler(cmd, args, func(app *App) Command { return NewSeedCommand(app) })
		},
	}

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse and edit tasks interactively",
		Long: `Open the interactive list.

Keys: a add, e/enter edit, d delete, space/x toggle, r refresh, ? help, q quit.
Log output goes to --log-file, or is discarded while the list owns the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runUI()
		},
	}

	r.cmd.AddCommand(
		listCmd,
		addCmd,
		editCmd,
		deleteCmd,
		toggleCmd,
		seedCmd,
		uiCmd,
	)
}

// runHandler runs one command handler under the application timeout
func (r *RootCommand) runHandler(cmd *cobra.Command, args []string, build func(*App) Command) error {
	apiInstance, err := r.getAPI()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()

	app := NewAppWithOutput(apiInstance, r.config, cmd.OutOrStdout())
	return build(app).Execute(ctx, args)
}

func (r *RootCommand) runUI() error {
	if r.config.Application.LogFile != "" {
		f, err := tea.LogToFile(r.config.Application.LogFile, "todo")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		r.closers = append(r.closers, f)
	} else {
		logging.SetOutput(io.Discard)
	}

	apiInstance, err := r.getAPI()
	if err != nil {
		return err
	}

	// The list runs until the user quits; each store call gets its own deadline.
	return tui.Run(context.Background(), apiInstance, r.config)
}

// getAPI builds the API on first use
func (r *RootCommand) getAPI() (api.API, error) {
	if r.api != nil {
		return r.api, nil
	}
	if r.factory == nil {
		return nil, fmt.Errorf("no API configured")
	}

	apiInstance, closer, err := r.factory(r.config)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		r.closers = append(r.closers, closer)
	}
	r.api = apiInstance
	return apiInstance, nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// prepare applies flag overrides, validates the result and sets up logging
func (r *RootCommand) prepare(cmd *cobra.Command) error {
	config.ApplyOverrides(r.config, r.overridesFromFlags())
	if err := r.config.Validate(); err != nil {
		return err
	}

	logging.SetVerbose(r.config.Application.Verbose)

	if r.config.Application.LogFile != "" && cmd.Name() != "ui" {
		f, err := logging.OpenFile(r.config.Application.LogFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		r.closers = append(r.closers, f)
	}
	return nil
}

// overridesFromFlags collects the flags the user actually set
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}

	if flags.Changed("seed-url") {
		v, _ := flags.GetString("seed-url")
		overrides.SeedURL = &v
	}
	if flags.Changed("seed-timeout") {
		v, _ := flags.GetDuration("seed-timeout")
		overrides.SeedTimeout = &v
	}
	if flags.Changed("no-seed") {
		noSeed, _ := flags.GetBool("no-seed")
		enabled := !noSeed
		overrides.SeedEnabled = &enabled
	}

	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("log-file") {
		v, _ := flags.GetString("log-file")
		overrides.LogFile = &v
	}

	return overrides
}
