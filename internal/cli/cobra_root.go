package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"task-manager/internal/config"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository/database"
	"task-manager/internal/services"
)

// RootCommand is the task manager binary: a single interactive menu with
// flags that override the environment.
type RootCommand struct {
	cmd       *cobra.Command
	config    *config.Config
	overrides config.ConfigOverrides
	envFile   string

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	newRepository func(ctx context.Context, cfg *config.Config) (database.Repository, error)
}

// NewRootCommand creates the root cobra command wired to the process streams
func NewRootCommand() *RootCommand {
	return NewRootCommandWithIO(os.Stdin, os.Stdout, os.Stderr)
}

// NewRootCommandWithIO creates the root command with explicit streams. Logs
// go to errOut so they never interleave with the menu.
func NewRootCommandWithIO(in io.Reader, out, errOut io.Writer) *RootCommand {
	root := &RootCommand{
		in:            in,
		out:           out,
		errOut:        errOut,
		newRepository: config.CreateRepository,
	}

	root.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "An interactive console task manager",
		Long: `Tasks is a menu-driven task manager backed by SQLite or PostgreSQL.

MENU:
  1. Add task             Create a task with a title and description
  2. List tasks           Show tasks that are not done yet
  3. Update task status   Move a task to in-progress or done
  4. Delete task          Remove a task permanently
  5. Exit

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

    DB_DRIVER                              sqlite or postgres (default: sqlite)
    DB_HOST, DB_PORT                       PostgreSQL server (default: localhost:5432)
    DB_USER, DB_PASSWORD                   PostgreSQL credentials
    DB_NAME                                Database name (default: tasks)
    DB_SSLMODE                             PostgreSQL sslmode (default: disable)
    DB_PATH                                SQLite file (default: ~/.tasks/<DB_NAME>.db)
    DB_QUERY_TIMEOUT                       Per-statement timeout (default: 10s)
    DB_CONNECT_TIMEOUT                     Connection timeout (default: 10s)
    LOG_LEVEL                              trace, debug, info, warn, error, disabled (default: error)
    LOG_FILE                               Also write logs to this rotating file`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd.Context())
		},
	}

	root.addGlobalFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs replaces os.Args[1:] for the next execution
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.envFile, "env-file", "", "Load variables from this file instead of ./.env")
	flags.String("db-driver", "", "Database driver, sqlite or postgres (overrides DB_DRIVER)")
	flags.String("db-path", "", "SQLite database file (overrides DB_PATH)")
	flags.String("log-level", "", "Log level (overrides LOG_LEVEL)")
	flags.String("log-file", "", "Rotating log file (overrides LOG_FILE)")
}

// loadConfig resolves the configuration cascade; only flags given on the
// command line override the environment.
func (r *RootCommand) loadConfig() error {
	flags := r.cmd.PersistentFlags()

	stringOverride := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetString(name)
		return &value
	}

	r.overrides = config.ConfigOverrides{
		DBDriver: stringOverride("db-driver"),
		DBPath:   stringOverride("db-path"),
		LogLevel: stringOverride("log-level"),
		LogFile:  stringOverride("log-file"),
	}

	loader := config.NewLoader()
	if r.envFile != "" {
		loader.WithEnvFile(r.envFile)
	}

	cfg, err := loader.LoadWithOverrides(&r.overrides)
	if err != nil {
		return err
	}
	r.config = cfg
	return nil
}

// run connects once, runs the menu and closes the connection on the way out.
func (r *RootCommand) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logCloser := logging.Apply(logOptions(r.config.Log), r.errOut)
	defer logCloser.Close()

	repo, err := r.newRepository(ctx, r.config)
	if err != nil {
		msg := "Database initialization failed"
		if errors.HasKind(err, errors.KindConnection) {
			msg = "Database unreachable"
		}
		log.Error().Err(err).Str("driver", r.config.Database.Driver).Msg(msg)
		return NewErrorHandler().HandleSimple(err)
	}
	defer repo.Close()

	container := services.NewServiceContainer(repo, r.config)
	app := NewApp(container.TaskService, r.config, r.in, r.out)
	return app.Run(ctx)
}

func logOptions(cfg config.LogConfig) logging.Options {
	return logging.Options{
		Level:      cfg.Level,
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}
