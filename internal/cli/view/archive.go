package view

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/views"
)

// ArchiveCmd returns the view archive subcommand
func ArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Completed tasks grouped by completion day",
		Long: `Completed tasks grouped by the day they were completed, newest first.

Examples:
  taskflow view archive
  taskflow view archive --search=report
  taskflow view archive --restore-all     # reopen every completed task
  taskflow view archive --clear-all -f    # delete every completed task
`,
		Args: cobra.NoArgs,
		RunE: runArchive,
	}

	addViewFlags(cmd)
	cmd.Flags().Bool("restore-all", false, "Reopen every completed task")
	cmd.Flags().Bool("clear-all", false, "Delete every completed task")
	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")
	cmd.MarkFlagsMutuallyExclusive("restore-all", "clear-all")

	return cmd
}

func runArchive(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	restoreAll, _ := cmd.Flags().GetBool("restore-all")
	clearAll, _ := cmd.Flags().GetBool("clear-all")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	switch {
	case restoreAll:
		return runRestoreAll(cmd, cliInstance, formatter)
	case clearAll:
		return runClearAll(cmd, cliInstance, formatter)
	}

	view, err := cliInstance.App.Views.Archive(cmd.Context(), search)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if formatter.Quiet {
		var items []views.Item
		for _, g := range view.Groups {
			items = append(items, g.Tasks...)
		}
		return formatter.Success(itemIDs(items))
	}
	if formatter.JSON {
		return formatter.Success(view)
	}
	return render(cmd, archiveMarkdown(view))
}

func runRestoreAll(cmd *cobra.Command, c *cli.CLI, formatter *cli.OutputFormatter) error {
	if !confirmed(cmd, formatter, "Reopen every completed task?") {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	}

	result, err := c.App.Views.RestoreArchive(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if formatter.Quiet {
		return formatter.Success(result.Updated)
	}
	if formatter.JSON {
		return formatter.Success(result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %d task(s) restored\n", len(result.Updated))
	return nil
}

func runClearAll(cmd *cobra.Command, c *cli.CLI, formatter *cli.OutputFormatter) error {
	if !confirmed(cmd, formatter, "Delete every completed task?") {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	}

	result, err := c.App.Views.ClearArchive(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if formatter.Quiet {
		return formatter.Success(result.Deleted)
	}
	if formatter.JSON {
		return formatter.Success(result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %d task(s) deleted\n", len(result.Deleted))
	return nil
}

// confirmed asks before a destructive archive action unless --force, quiet
// or JSON mode
func confirmed(cmd *cobra.Command, formatter *cli.OutputFormatter, prompt string) bool {
	force, _ := cmd.Flags().GetBool("force")
	if force || formatter.Quiet || formatter.JSON {
		return true
	}
	return cli.Confirm(cmd, prompt)
}

func archiveMarkdown(view *views.ArchiveView) string {
	var b strings.Builder

	b.WriteString("# Archive\n\n")
	fmt.Fprintf(&b, "**%d** completed · **%d** high priority · **%d** day(s)\n\n",
		view.Stats.Total, view.Stats.HighPriority, view.Stats.Days)

	if len(view.Groups) == 0 {
		b.WriteString("_No completed tasks._\n")
		return b.String()
	}
	for _, g := range view.Groups {
		fmt.Fprintf(&b, "## %s\n\n", g.Label)
		writeItems(&b, g.Tasks, "")
		b.WriteString("\n")
	}
	return b.String()
}
