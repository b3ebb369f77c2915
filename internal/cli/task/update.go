package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task_id>",
		Short: "Update a task",
		Long: `Update the fields of a task. Only the flags you pass are changed.

Examples:
  taskflow task update 4 --title="New title" --priority=high
  taskflow task update 4 --due=today+2
  taskflow task update 4 --clear-due --clear-project
  taskflow task update 4 --completed
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	addPatchFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	id, err := cli.ParseID(args[0])
	if err != nil {
		return cli.Usage(formatter, err.Error())
	}

	patch, err := patchFromFlags(ctx, cmd, cliInstance)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	var before *models.Task
	if patch.MovesProject() {
		before, err = cliInstance.App.TaskService.GetTaskByID(ctx, id)
		if err != nil {
			return cli.Fail(formatter, err, "Use 'taskflow task list' to see available tasks")
		}
	}

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, id, patch)
	if err != nil {
		return cli.Fail(formatter, err, "Use 'taskflow task list' to see available tasks")
	}
	if before != nil {
		adjustCounts(ctx, cliInstance, []*models.Task{before}, []*models.Task{task})
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	if patch.IsEmpty() {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing to update for task %d\n", task.ID)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Task %d updated successfully\n", task.ID)
	return printCard(cmd.OutOrStdout(), task, projectName(ctx, cliInstance, task), models.DateOf(cliInstance.App.Now()))
}
