package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long: `List projects in display order with task counts computed from the
task table. Projects whose stored count has drifted are flagged.

Examples:
  taskflow project list
  taskflow project list --search=work --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Only projects whose name matches")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	search, _ := cmd.Flags().GetString("search")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	view, err := cliInstance.App.Views.Projects(ctx, search)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if formatter.Quiet {
		projects := make([]*models.Project, 0, len(view.Projects))
		for _, summary := range view.Projects {
			projects = append(projects, summary.Project)
		}
		return formatter.Success(projects)
	}
	if formatter.JSON {
		return formatter.Success(view)
	}

	out := cmd.OutOrStdout()
	if len(view.Projects) == 0 {
		fmt.Fprintln(out, styles.SubtitleStyle.Render("No projects found"))
		return nil
	}

	fmt.Fprintln(out, styles.SectionStyle.Render(fmt.Sprintf("Projects (%d)", len(view.Projects))))
	for _, summary := range view.Projects {
		p := summary.Project
		line := fmt.Sprintf("%s %s %s  %s",
			swatch(p),
			styles.SubtitleStyle.Render(fmt.Sprintf("#%d", p.ID)),
			styles.ValueStyle.Render(p.Name),
			styles.SubtitleStyle.Render(fmt.Sprintf("%d tasks, %d active", summary.TaskCount, summary.ActiveTasks)),
		)
		if summary.Stale() {
			line += "  " + styles.WarningStyle.Render(fmt.Sprintf("(stored count %d)", p.TaskCount))
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
