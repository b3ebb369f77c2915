package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(ReopenCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(BulkCmd())

	return cmd
}

// projectName looks up the name of the project a task is filed under.
// Missing projects render as no project.
func projectName(ctx context.Context, c *cli.CLI, t *models.Task) string {
	if t.ProjectID == nil {
		return ""
	}
	p, err := c.App.ProjectService.GetProjectByID(ctx, *t.ProjectID)
	if err != nil {
		return ""
	}
	return p.Name
}

// adjustCounts keeps the stored task count of each affected project in step
// with a task change. Failures are logged; 'taskflow project sync' repairs
// any drift.
func adjustCounts(ctx context.Context, c *cli.CLI, before, after []*models.Task) {
	if _, err := c.App.Views.AdjustProjectCounts(ctx, before, after); err != nil {
		c.App.Logger().Warn("failed to adjust project task counts", "error", err)
	}
}

// priorStates returns the stored version of each updated task, in order
func priorStates(all, updated []*models.Task) []*models.Task {
	byID := make(map[int]*models.Task, len(all))
	for _, t := range all {
		byID[t.ID] = t
	}
	out := make([]*models.Task, 0, len(updated))
	for _, t := range updated {
		if prior, ok := byID[t.ID]; ok {
			out = append(out, prior)
		}
	}
	return out
}

// printCard writes the detailed view of a task
func printCard(w io.Writer, t *models.Task, project string, today models.Date) error {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", t.ID, t.Title)))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	status := "open"
	if t.Completed {
		status = styles.SuccessStyle.Render("completed")
	} else if t.IsOverdue(today) {
		status = styles.OverdueStyle.Render("overdue")
	}
	field("Status:  ", status)
	field("Priority:", styles.Priority(t.Priority))

	due := styles.SubtitleStyle.Render("none")
	if t.DueDate != nil {
		due = styles.ValueStyle.Render(t.DueDate.String())
	}
	field("Due:     ", due)

	if project == "" {
		project = styles.SubtitleStyle.Render("none")
	}
	field("Project: ", project)
	field("Created: ", styles.ValueStyle.Render(t.CreatedAt.Format("2006-01-02 15:04")))
	if t.CompletedAt != nil {
		field("Done:    ", styles.ValueStyle.Render(t.CompletedAt.Format("2006-01-02 15:04")))
	}

	_, err := fmt.Fprintln(w, styles.CardStyle.Render(strings.TrimRight(b.String(), "\n")))
	return err
}
