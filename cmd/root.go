// Package cmd wires the command tree and owns the session lifecycle
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/project"
	"github.com/thenoetrevino/taskflow/internal/cli/seedcmd"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/cli/task"
	"github.com/thenoetrevino/taskflow/internal/cli/view"
	"github.com/thenoetrevino/taskflow/internal/config"
)

// rootOptions holds the persistent flags and the session they opened
type rootOptions struct {
	configPath string
	seedFile   string
	sqlite     string
	noLatency  bool
	logLevel   string

	// session is set when this command tree opened the session itself
	session *cli.CLI
}

// NewRootCmd builds a fresh command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskflow",
		Short: "TaskFlow - a personal task manager",
		Long: `TaskFlow manages tasks and projects in memory, seeded from fixtures.

Each command starts from the seed data. Use 'taskflow shell' to keep one
session alive across commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.open(cmd)
		},
	}

	bindSessionFlags(root.PersistentFlags(), opts)

	root.AddCommand(task.TaskCmd())
	root.AddCommand(project.ProjectCmd())
	root.AddCommand(view.ViewCmd())
	root.AddCommand(seedcmd.SeedCmd())
	root.AddCommand(shellCmd())

	return root
}

// bindSessionFlags registers the flags that shape a new session
func bindSessionFlags(fs *pflag.FlagSet, opts *rootOptions) {
	fs.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/taskflow/config.yaml)")
	fs.StringVar(&opts.seedFile, "seed", "", "YAML fixture file to start from")
	fs.StringVar(&opts.sqlite, "sqlite", "", "SQLite fixture database to start from")
	fs.BoolVar(&opts.noLatency, "no-latency", false, "Disable the simulated service latency")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// open starts a session for cmd unless its context already carries one,
// as it does for commands run inside the shell
func (o *rootOptions) open(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if cli.HasSession(ctx) {
		return nil
	}

	cfg, err := o.loadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return &cli.ExitError{Code: cli.ExitDataErr, Err: err}
	}
	styles.Init(cfg.ColorScheme)

	session, err := cli.NewCLI(ctx, cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return &cli.ExitError{Code: cli.ExitDataErr, Err: err}
	}
	o.session = session
	cmd.SetContext(cli.WithCLI(ctx, session))
	return nil
}

// loadConfig reads the config file and applies the flags on top of it
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.seedFile != "" {
		cfg.Seed.File = o.seedFile
	}
	if o.sqlite != "" {
		cfg.Seed.SQLite = o.sqlite
	}
	if o.noLatency {
		cfg.DisableLatency()
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

// close releases the session this tree opened, if any
func (o *rootOptions) close() {
	if o.session != nil {
		cli.CloseQuietly(o.session)
		o.session = nil
	}
}

// Execute runs the command tree. Ctrl-C cancels the command in flight.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &rootOptions{}
	defer opts.close()

	root := newRootCmd(opts)
	err := root.ExecuteContext(ctx)
	if err != nil && !reported(err) {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// reported tells whether a command already printed err
func reported(err error) bool {
	var exitErr *cli.ExitError
	return errors.As(err, &exitErr)
}
