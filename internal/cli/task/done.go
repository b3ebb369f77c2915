package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>...",
		Short: "Mark tasks completed",
		Long: `Mark one or more tasks completed. Several ids run as one batch:
ids that do not exist are reported and the rest are still completed.

Examples:
  taskflow task done 3
  taskflow task done 3 5 8
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetCompleted(cmd, args, true)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// ReopenCmd returns the task reopen subcommand
func ReopenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reopen <task_id>...",
		Aliases: []string{"undo"},
		Short:   "Mark tasks not completed",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetCompleted(cmd, args, false)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSetCompleted(cmd *cobra.Command, args []string, done bool) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	verb := "completed"
	if !done {
		verb = "reopened"
	}

	if len(args) > 1 {
		result, err := cliInstance.App.TaskService.BulkUpdateTasks(ctx, args, taskservice.Complete(done))
		if err != nil {
			return cli.Fail(formatter, err, "")
		}
		return printBulkUpdate(cmd, formatter, result, verb)
	}

	id, err := cli.ParseID(args[0])
	if err != nil {
		return cli.Usage(formatter, err.Error())
	}

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, id, taskservice.Complete(done))
	if err != nil {
		return cli.Fail(formatter, err, "Use 'taskflow task list' to see available tasks")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Task %d %s: %s\n", task.ID, verb, task.Title)
	return nil
}
