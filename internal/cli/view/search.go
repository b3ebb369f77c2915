package view

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/views"
)

// SearchCmd returns the view search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find tasks by title, priority or project name",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}

	cmd.Flags().Bool("plain", false, "Print the Markdown source instead of rendering it")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	items, err := cliInstance.App.Views.Search(cmd.Context(), query)
	if err != nil {
		return cli.Fail(formatter, err, "")
	}

	if formatter.Quiet {
		return formatter.Success(itemIDs(items))
	}
	if formatter.JSON {
		return formatter.Success(items)
	}
	return render(cmd, searchMarkdown(query, items))
}

func searchMarkdown(query string, items []views.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Search: %s\n\n%d match(es)\n\n", query, len(items))
	writeItems(&b, items, "No tasks match")
	return b.String()
}
