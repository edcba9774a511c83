package cli

import (
	"github.com/spf13/cobra"

	"task-service/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tasksd",
		Short: "A task management HTTP service",
		Long: `tasksd serves a JSON API for creating, listing, updating and
deleting tasks backed by a relational store.

EXAMPLES:
  tasksd serve                             # Serve on the default address
  tasksd serve --addr :9090                # Serve on a custom address
  tasksd serve --db-driver postgres        # Use the postgres store

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Server Configuration:
    TASKS_HTTP_ADDR                        Listen address (default: :8080)
    TASKS_HTTP_READ_TIMEOUT                Read timeout (default: 10s)
    TASKS_HTTP_WRITE_TIMEOUT               Write timeout (default: 10s)
    TASKS_HTTP_REQUEST_TIMEOUT             Per-request timeout (default: 5s)

  Database Configuration:
    TASKS_DB_DRIVER                        Store driver, sqlite or postgres (default: sqlite)
    TASKS_DB_PATH                          SQLite database path (default: tasks.db)
    TASKS_DB_HOST                          Postgres host (default: localhost)
    TASKS_DB_PORT                          Postgres port (default: 5432)
    TASKS_DB_USER                          Postgres user (default: tasks)
    TASKS_DB_PASSWORD                      Postgres password
    TASKS_DB_NAME                          Postgres database name (default: tasks)
    TASKS_DB_SSLMODE                       Postgres sslmode (default: disable)

  Validation Configuration:
    TASKS_VALIDATION_TASK_NAME_MIN         Min task name length (default: 1)
    TASKS_VALIDATION_TASK_NAME_MAX         Max task name length (default: 100)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlagOverrides()
		},
	}

	root.addGlobalFlags()
	root.cmd.AddCommand(newServeCommand(root))

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("addr", "", "Listen address (overrides TASKS_HTTP_ADDR)")
	flags.String("db-driver", "", "Store driver, sqlite or postgres (overrides TASKS_DB_DRIVER)")
	flags.String("db-path", "", "SQLite database path (overrides TASKS_DB_PATH)")
	flags.String("db-host", "", "Postgres host (overrides TASKS_DB_HOST)")
	flags.Int("db-port", 0, "Postgres port (overrides TASKS_DB_PORT)")
	flags.String("db-user", "", "Postgres user (overrides TASKS_DB_USER)")
	flags.String("db-password", "", "Postgres password (overrides TASKS_DB_PASSWORD)")
	flags.String("db-name", "", "Postgres database name (overrides TASKS_DB_NAME)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TASKS_APP_VERBOSE)")
}

// applyFlagOverrides applies configuration overrides from flags
func (r *RootCommand) applyFlagOverrides() error {
	flags := r.cmd.PersistentFlags()

	if addr, _ := flags.GetString("addr"); addr != "" {
		r.config.Server.Addr = addr
	}
	if driver, _ := flags.GetString("db-driver"); driver != "" {
		r.config.Database.Driver = config.Driver(driver)
	}
	if path, _ := flags.GetString("db-path"); path != "" {
		r.config.Database.Path = path
	}
	if host, _ := flags.GetString("db-host"); host != "" {
		r.config.Database.Host = host
	}
	if port, _ := flags.GetInt("db-port"); port != 0 {
		r.config.Database.Port = port
	}
	if user, _ := flags.GetString("db-user"); user != "" {
		r.config.Database.User = user
	}
	if password, _ := flags.GetString("db-password"); password != "" {
		r.config.Database.Password = password
	}
	if name, _ := flags.GetString("db-name"); name != "" {
		r.config.Database.Name = name
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = true
	}

	return r.config.Validate()
}
