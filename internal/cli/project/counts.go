package project

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
)

// SyncCmd returns the project sync subcommand
func SyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Recompute stored task counts",
		Long: `Projects cache how many tasks they hold. The cache is not updated when
tasks change; sync recounts every project from the task table and writes
back the counts that drifted.`,
		Args: cobra.NoArgs,
		RunE: runSync,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	changed, err := cliInstance.App.Views.SyncProjectCounts(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(changed)
	}

	out := cmd.OutOrStdout()
	if len(changed) == 0 {
		fmt.Fprintln(out, "✓ All project counts are up to date")
		return nil
	}
	for _, p := range changed {
		fmt.Fprintf(out, "✓ Project %d '%s' now counts %d task(s)\n", p.ID, p.Name, p.TaskCount)
	}
	return nil
}

// SetCountCmd returns the project set-count subcommand
func SetCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-count <project_id> <count>",
		Short: "Overwrite a project's stored task count",
		Args:  cobra.ExactArgs(2),
		RunE:  runSetCount,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSetCount(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	id, err := cli.ParseID(args[0])
	if err != nil {
		return cli.Usage(formatter, err.Error())
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return cli.Usage(formatter, fmt.Sprintf("invalid count: %s", args[1]))
	}

	project, err := cliInstance.App.ProjectService.UpdateTaskCount(cmd.Context(), id, count)
	if err != nil {
		return cli.Fail(formatter, err, "Use 'taskflow project list' to see available projects")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(project)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Project %d task count set to %d\n", project.ID, project.TaskCount)
	return nil
}
