package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>...",
		Short: "Delete tasks",
		Long: `Delete one or more tasks (requires confirmation unless --force or --quiet).
Several ids run as one batch: missing ids are reported, the rest are deleted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, fmt.Sprintf("Delete task(s) %s?", strings.Join(args, ", "))) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if len(args) > 1 {
		result, err := cliInstance.App.TaskService.BulkDeleteTasks(ctx, args)
		if err != nil {
			return cli.Fail(formatter, err, "")
		}
		adjustCounts(ctx, cliInstance, result.Deleted, nil)
		return printBulkDelete(cmd, formatter, result)
	}

	id, err := cli.ParseID(args[0])
	if err != nil {
		return cli.Usage(formatter, err.Error())
	}

	task, err := cliInstance.App.TaskService.DeleteTask(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err, "Use 'taskflow task list' to see available tasks")
	}
	adjustCounts(ctx, cliInstance, []*models.Task{task}, nil)

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Task %d deleted successfully\n", task.ID)
	return nil
}
