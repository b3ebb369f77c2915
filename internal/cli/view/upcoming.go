package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/views"
)

// UpcomingCmd returns the view upcoming subcommand
func UpcomingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Open tasks due after today, with this week's calendar",
		Args:  cobra.NoArgs,
		RunE:  runUpcoming,
	}

	addViewFlags(cmd)
	cmd.Flags().Bool("week", false, "Only show the week calendar")

	return cmd
}

func runUpcoming(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	weekOnly, _ := cmd.Flags().GetBool("week")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	view, err := cliInstance.App.Views.Upcoming(cmd.Context(), search)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if formatter.Quiet {
		return formatter.Success(itemIDs(view.Tasks))
	}
	if formatter.JSON {
		return formatter.Success(view)
	}
	return render(cmd, upcomingMarkdown(view, weekOnly))
}

func upcomingMarkdown(view *views.UpcomingView, weekOnly bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Upcoming\n\n## Week of %s\n\n",
		view.WeekStart.In(time.UTC).Format(views.ArchiveLabelLayout))
	for _, day := range view.Week {
		heading := day.Date.In(time.UTC).Format("Mon 2")
		if day.IsToday {
			heading += " (today)"
		}
		fmt.Fprintf(&b, "### %s\n\n", heading)
		writeItems(&b, day.Tasks, "No tasks")
		b.WriteString("\n")
	}

	if weekOnly {
		return b.String()
	}

	fmt.Fprintf(&b, "## All upcoming (%d)\n\n", len(view.Tasks))
	writeItems(&b, view.Tasks, "Nothing scheduled")
	return b.String()
}
