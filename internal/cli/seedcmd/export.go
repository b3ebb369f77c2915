package seedcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/database"
	"github.com/thenoetrevino/taskflow/internal/seed"
)

// ExportCmd returns the seed export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current session as fixtures",
		Long: `Write the tasks and projects of the current session as fixtures that a
later run can start from (--seed for YAML, --sqlite for SQLite).

Examples:
  taskflow seed export --yaml=tasks.yaml
  taskflow seed export --yaml=-            # print YAML to stdout
  taskflow seed export --sqlite=tasks.db
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().String("yaml", "", "YAML file to write (- for stdout)")
	cmd.Flags().String("sqlite", "", "SQLite database to write; existing fixtures are replaced")
	cmd.MarkFlagsOneRequired("yaml", "sqlite")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	yamlPath, _ := cmd.Flags().GetString("yaml")
	sqlitePath, _ := cmd.Flags().GetString("sqlite")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	data, err := cliInstance.App.Snapshot(ctx)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	written := []Summary{}

	if yamlPath != "" {
		raw, err := seed.Encode(data)
		if err != nil {
			return cli.Fail(formatter, err, "")
		}
		if yamlPath == "-" {
			if _, err := cmd.OutOrStdout().Write(raw); err != nil {
				return err
			}
		} else {
			if err := os.WriteFile(yamlPath, raw, 0o644); err != nil {
				return cli.Fail(formatter, fmt.Errorf("failed to write %s: %w", yamlPath, err), "")
			}
			written = append(written, Summary{Path: yamlPath, Format: "yaml", Projects: len(data.Projects), Tasks: len(data.Tasks)})
		}
	}

	if sqlitePath != "" {
		db, err := database.Open(ctx, sqlitePath)
		if err != nil {
			return cli.Fail(formatter, err, "")
		}
		err = database.WriteFixtures(ctx, db, data)
		if closeErr := db.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return cli.Fail(formatter, err, "")
		}
		written = append(written, Summary{Path: sqlitePath, Format: "sqlite", Projects: len(data.Projects), Tasks: len(data.Tasks)})
	}

	if formatter.Quiet || yamlPath == "-" {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(written)
	}

	for _, s := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d project(s) and %d task(s) to %s\n", s.Projects, s.Tasks, s.Path)
	}
	return nil
}
