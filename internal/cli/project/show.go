package project

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project_id>",
		Short: "Show a project",
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

	project, err := cliInstance.App.ProjectService.GetProjectByID(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err, "Use 'taskflow project list' to see available projects")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(project)
	}

	tasks, err := cliInstance.App.TaskService.GetTasksByProject(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}
	active := 0
	for _, t := range tasks {
		if !t.Completed {
			active++
		}
	}
	return printProject(cmd.OutOrStdout(), project, len(tasks), active)
}
