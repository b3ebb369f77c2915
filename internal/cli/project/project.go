// Package project holds all cli commands related to projects
//
// e.g., taskflow project ...
package project

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(SyncCmd())
	cmd.AddCommand(SetCountCmd())

	return cmd
}

// swatch renders a small block in the project's own color
func swatch(p *models.Project) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("■")
}

// printProject writes the detailed view of a project. live is the number of
// tasks currently filed under it, active the open ones among them.
func printProject(w io.Writer, p *models.Project, live, active int) error {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s #%d %s", swatch(p), p.ID, p.Name)))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(styles.ValueStyle.Render(value))
		b.WriteString("\n")
	}
	field("Color:  ", p.Color)
	field("Icon:   ", p.Icon)
	field("Order:  ", fmt.Sprint(p.Order))
	field("Tasks:  ", fmt.Sprintf("%d (%d active)", live, active))

	count := fmt.Sprint(p.TaskCount)
	if p.TaskCount != live {
		count = styles.WarningStyle.Render(count + " (out of date, run 'taskflow project sync')")
	}
	b.WriteString(styles.LabelStyle.Render("Stored: "))
	b.WriteString(" ")
	b.WriteString(count)

	_, err := fmt.Fprintln(w, styles.CardStyle.Render(b.String()))
	return err
}
