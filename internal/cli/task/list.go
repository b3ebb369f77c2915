package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/views"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in stored order.

Examples:
  # Every task
  taskflow task list

  # Tasks in project 2 that mention "report"
  taskflow task list --project=2 --search=report

  # Only open tasks, as JSON
  taskflow task list --status=open --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().Int("project", 0, "Only tasks in this project")
	cmd.Flags().String("search", "", "Match title, priority or project name")
	cmd.Flags().String("status", "all", "Filter by status: all, open, completed")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectID, _ := cmd.Flags().GetInt("project")
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	keep, ok := statusFilters[status]
	if !ok {
		return cli.Usage(formatter, fmt.Sprintf("invalid status '%s' (must be: all, open, completed)", status))
	}

	items, err := cliInstance.App.Views.Search(ctx, search)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if cmd.Flags().Changed("project") {
		if _, err := cliInstance.App.ProjectService.GetProjectByID(ctx, projectID); err != nil {
			return cli.Fail(formatter, err, "Use 'taskflow project list' to see available projects")
		}
	}

	filtered := make([]views.Item, 0, len(items))
	tasks := make([]*models.Task, 0, len(items))
	for _, item := range items {
		if cmd.Flags().Changed("project") && !item.Task.InProject(projectID) {
			continue
		}
		if !keep(item.Task) {
			continue
		}
		filtered = append(filtered, item)
		tasks = append(tasks, item.Task)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(tasks)
	}

	out := cmd.OutOrStdout()
	if len(filtered) == 0 {
		fmt.Fprintln(out, styles.SubtitleStyle.Render("No tasks found"))
		return nil
	}

	today := models.DateOf(cliInstance.App.Now())
	fmt.Fprintln(out, styles.SectionStyle.Render(fmt.Sprintf("Tasks (%d)", len(filtered))))
	for _, item := range filtered {
		fmt.Fprintln(out, cli.TaskLine(item.Task, item.ProjectName(), today))
	}
	return nil
}

var statusFilters = map[string]func(*models.Task) bool{
	"all":       func(*models.Task) bool { return true },
	"open":      func(t *models.Task) bool { return !t.Completed },
	"completed": func(t *models.Task) bool { return t.Completed },
}
