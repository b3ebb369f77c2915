package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	projectservice "github.com/thenoetrevino/taskflow/internal/services/project"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <project_id>",
		Short: "Delete a project",
		Long: `Delete a project by ID (requires confirmation unless --force or --quiet).

A project that still has tasks, by its stored count or by the task table,
is refused unless --force is given. Its tasks are kept either way and keep
pointing at the removed project id.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation and delete even with tasks")

	// Agent-friendly flags
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

	id, err := cli.ParseID(args[0])
	if err != nil {
		return cli.Usage(formatter, err.Error())
	}

	project, err := cliInstance.App.ProjectService.GetProjectByID(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err, "Use 'taskflow project list' to see available projects")
	}

	if !force {
		tasks, err := cliInstance.App.TaskService.GetTasksByProject(ctx, id)
		if err != nil {
			return cli.Fail(formatter, err, "")
		}
		if project.TaskCount > 0 || len(tasks) > 0 {
			return cli.Fail(formatter,
				fmt.Errorf("project %d has %d task(s): %w", id, max(project.TaskCount, len(tasks)), projectservice.ErrProjectHasTasks),
				"Move or delete its tasks first, or use --force")
		}
	}

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, fmt.Sprintf("Delete project #%d: '%s'?", id, project.Name)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	deleted, err := cliInstance.App.ProjectService.DeleteProject(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(deleted)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Project %d deleted successfully\n", deleted.ID)
	return nil
}
