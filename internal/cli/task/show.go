package task

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	task, err := cliInstance.App.TaskService.GetTaskByID(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err, "Use 'taskflow task list' to see available tasks")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	today := models.DateOf(cliInstance.App.Now())
	return printCard(cmd.OutOrStdout(), task, projectName(ctx, cliInstance, task), today)
}
