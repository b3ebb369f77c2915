package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// BulkCmd returns the task bulk parent command
func BulkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Run one action over a selection of tasks",
		Long: `Run one action over a selection of task ids.

Ids are read leniently: "12abc" means 12 and non-numeric entries are
dropped. Ids that do not exist are reported while the rest are still
processed. The command fails only when no id is usable or every id fails.

Examples:
  taskflow task bulk complete 1 2 3
  taskflow task bulk priority high 4 5
  taskflow task bulk update 1 2 --due=tomorrow
  taskflow task bulk delete 7 8 --json
`,
	}

	cmd.AddCommand(bulkUpdateCmd())
	cmd.AddCommand(bulkDeleteCmd())
	cmd.AddCommand(bulkCompleteCmd(true))
	cmd.AddCommand(bulkCompleteCmd(false))
	cmd.AddCommand(bulkPriorityCmd())

	return cmd
}

func bulkUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task_id>...",
		Short: "Apply the same changes to several tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliInstance, formatter, err := cli.Setup(cmd)
			if err != nil {
				return err
			}
			defer cli.CloseQuietly(cliInstance)

			patch, err := patchFromFlags(cmd.Context(), cmd, cliInstance)
			if err != nil {
				return cli.Fail(formatter, err, "")
			}
			return runBulkUpdate(cmd, cliInstance, formatter, args, patch, "updated")
		},
	}

	addPatchFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func bulkCompleteCmd(done bool) *cobra.Command {
	use, short, verb := "complete", "Mark several tasks completed", "completed"
	if !done {
		use, short, verb = "reopen", "Mark several tasks not completed", "reopened"
	}

	cmd := &cobra.Command{
		Use:   use + " <task_id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliInstance, formatter, err := cli.Setup(cmd)
			if err != nil {
				return err
			}
			defer cli.CloseQuietly(cliInstance)

			return runBulkUpdate(cmd, cliInstance, formatter, args, taskservice.Complete(done), verb)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func bulkPriorityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority <low|medium|high> <task_id>...",
		Short: "Set the priority of several tasks",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliInstance, formatter, err := cli.Setup(cmd)
			if err != nil {
				return err
			}
			defer cli.CloseQuietly(cliInstance)

			p, err := cli.ParsePriority(args[0])
			if err != nil {
				return cli.Fail(formatter, err, "Valid priorities are: low, medium, high")
			}
			return runBulkUpdate(cmd, cliInstance, formatter, args[1:], taskservice.SetPriority(p), "set to "+string(p))
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func bulkDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>...",
		Short: "Delete several tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			cliInstance, formatter, err := cli.Setup(cmd)
			if err != nil {
				return err
			}
			defer cli.CloseQuietly(cliInstance)

			if !force && !formatter.Quiet && !formatter.JSON {
				if !cli.Confirm(cmd, fmt.Sprintf("Delete %d selected task(s)?", len(args))) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			result, err := cliInstance.App.TaskService.BulkDeleteTasks(cmd.Context(), args)
			if err != nil {
				return cli.Fail(formatter, err, "")
			}
			adjustCounts(cmd.Context(), cliInstance, result.Deleted, nil)
			return printBulkDelete(cmd, formatter, result)
		},
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runBulkUpdate(cmd *cobra.Command, c *cli.CLI, formatter *cli.OutputFormatter, ids []string, patch taskservice.TaskPatch, verb string) error {
	ctx := cmd.Context()

	var all []*models.Task
	if patch.MovesProject() {
		var err error
		if all, err = c.App.TaskService.GetAllTasks(ctx); err != nil {
			return cli.Fail(formatter, err, "")
		}
	}

	result, err := c.App.TaskService.BulkUpdateTasks(ctx, ids, patch)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}
	if patch.MovesProject() {
		adjustCounts(ctx, c, priorStates(all, result.Updated), result.Updated)
	}
	return printBulkUpdate(cmd, formatter, result, verb)
}

func printBulkUpdate(cmd *cobra.Command, formatter *cli.OutputFormatter, result *taskservice.BulkUpdateResult, verb string) error {
	if formatter.Quiet {
		return formatter.Success(result.Updated)
	}
	if formatter.JSON {
		return formatter.Success(result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %d task(s) %s\n", len(result.Updated), verb)
	printBatchErrors(cmd, result.Errors)
	return nil
}

func printBulkDelete(cmd *cobra.Command, formatter *cli.OutputFormatter, result *taskservice.BulkDeleteResult) error {
	if formatter.Quiet {
		return formatter.Success(result.Deleted)
	}
	if formatter.JSON {
		return formatter.Success(result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %d task(s) deleted\n", len(result.Deleted))
	printBatchErrors(cmd, result.Errors)
	return nil
}

func printBatchErrors(cmd *cobra.Command, messages []string) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.WarningStyle.Render(
		fmt.Sprintf("! %d skipped: %s", len(messages), strings.Join(messages, ", "))))
}
