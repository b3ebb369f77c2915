package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
	taskservice "github.com/thenoetrevino/taskflow/internal/services/task"
)

// addPatchFlags registers the flags shared by update and bulk update
func addPatchFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")
	cmd.Flags().String("due", "", "New due date: YYYY-MM-DD, today, tomorrow or today+N")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().Int("project", 0, "Move to project ID")
	cmd.Flags().Bool("clear-project", false, "Remove from its project")
	cmd.Flags().Bool("completed", false, "Mark completed (--completed=false reopens)")
}

// patchFromFlags builds a patch from the flags the user actually set.
// Unset flags leave the field untouched.
func patchFromFlags(ctx context.Context, cmd *cobra.Command, c *cli.CLI) (taskservice.TaskPatch, error) {
	var patch taskservice.TaskPatch
	flags := cmd.Flags()

	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		patch.Title = &title
	}
	if flags.Changed("priority") {
		raw, _ := flags.GetString("priority")
		p, err := cli.ParsePriority(raw)
		if err != nil {
			return patch, err
		}
		patch.Priority = &p
	}
	if flags.Changed("due") {
		raw, _ := flags.GetString("due")
		d, err := cli.ParseDate(raw, c.App.Now())
		if err != nil {
			return patch, err
		}
		patch.DueDate = &d
	}
	if flags.Changed("clear-due") {
		patch.ClearDueDate, _ = flags.GetBool("clear-due")
	}
	if flags.Changed("project") {
		id, _ := flags.GetInt("project")
		if _, err := c.App.ProjectService.GetProjectByID(ctx, id); err != nil {
			return patch, err
		}
		patch.ProjectID = models.IntPtr(id)
	}
	if flags.Changed("clear-project") {
		patch.ClearProject, _ = flags.GetBool("clear-project")
	}
	if flags.Changed("completed") {
		done, _ := flags.GetBool("completed")
		patch.Completed = &done
	}
	return patch, nil
}
