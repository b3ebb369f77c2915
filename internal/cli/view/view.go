// Package view holds the read-only screens: today, upcoming, archive and
// search. Human output is built as Markdown and rendered for the terminal.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/views"
)

// longDate formats headings such as "Tuesday, January 2, 2024"
const longDate = "Monday, " + views.ArchiveLabelLayout

// ViewCmd returns the view parent command
func ViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show tasks by due date or completion",
	}

	cmd.AddCommand(TodayCmd())
	cmd.AddCommand(UpcomingCmd())
	cmd.AddCommand(ArchiveCmd())
	cmd.AddCommand(SearchCmd())

	return cmd
}

// addViewFlags registers the flags every screen shares
func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Only tasks whose title, priority or project matches")
	cmd.Flags().Bool("plain", false, "Print the Markdown source instead of rendering it")
	cli.AddOutputFlags(cmd)
}

// render writes md to cmd's output, honouring --plain
func render(cmd *cobra.Command, md string) error {
	plain, _ := cmd.Flags().GetBool("plain")
	return cli.WriteMarkdown(cmd.OutOrStdout(), md, plain)
}

// dateHeading formats d for section headings
func dateHeading(d models.Date) string {
	return d.In(time.UTC).Format(longDate)
}

// writeItems appends one Markdown list item per task, or empty when there
// are none
func writeItems(b *strings.Builder, items []views.Item, empty string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "_%s_\n", empty)
		return
	}
	for _, item := range items {
		b.WriteString(cli.TaskMarkdown(item.Task, item.ProjectName()))
	}
}

// itemIDs lists the tasks of items for quiet output
func itemIDs(items []views.Item) []*models.Task {
	tasks := make([]*models.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, item.Task)
	}
	return tasks
}
