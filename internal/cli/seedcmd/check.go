package seedcmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/seed"
)

// CheckCmd returns the seed check subcommand
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a fixture file without starting a session",
		Long: `Load a YAML or SQLite fixture file and report what it holds.
Files ending in .db, .sqlite or .sqlite3 are read as SQLite.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := cli.FormatterFromFlags(jsonOutput, quietMode)
	formatter.Out = cmd.OutOrStdout()
	formatter.Err = cmd.ErrOrStderr()

	summary := Summary{Path: path, Format: formatOf(path)}

	var (
		data *seed.Data
		err  error
	)
	if summary.Format == "sqlite" {
		data, err = database.LoadFile(cmd.Context(), path)
	} else {
		data, err = seed.LoadFile(path, time.Now())
	}
	if err != nil {
		code, _ := cli.Classify(err)
		if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), ""); fmtErr != nil {
			return fmtErr
		}
		return &cli.ExitError{Code: cli.ExitDataErr, Err: err}
	}

	summary.Projects = len(data.Projects)
	summary.Tasks = len(data.Tasks)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(summary)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d project(s), %d task(s) (%s)\n",
		path, summary.Projects, summary.Tasks, summary.Format)
	return nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	default:
		return "yaml"
	}
}
