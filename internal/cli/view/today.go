package view

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/views"
)

// TodayCmd returns the view today subcommand
func TodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Open tasks due today or overdue",
		Args:  cobra.NoArgs,
		RunE:  runToday,
	}

	addViewFlags(cmd)

	return cmd
}

func runToday(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	view, err := cliInstance.App.Views.Today(cmd.Context(), search)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if formatter.Quiet {
		return formatter.Success(itemIDs(append(view.Overdue, view.DueToday...)))
	}
	if formatter.JSON {
		return formatter.Success(view)
	}
	return render(cmd, todayMarkdown(view))
}

func todayMarkdown(view *views.TodayView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Today\n\n%s · %d task(s)\n\n", dateHeading(view.Date), view.Total())
	if view.Total() == 0 {
		b.WriteString("_Nothing due. Enjoy your day._\n")
		return b.String()
	}

	if len(view.Overdue) > 0 {
		fmt.Fprintf(&b, "## Overdue (%d)\n\n", len(view.Overdue))
		writeItems(&b, view.Overdue, "")
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "## Due today (%d)\n\n", len(view.DueToday))
	writeItems(&b, view.DueToday, "Nothing else due today")
	return b.String()
}
