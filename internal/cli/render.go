package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// markdownWidth is the word-wrap width of rendered views
const markdownWidth = 100

// RenderMarkdown renders md for the terminal. With plain set, or when
// rendering fails, the Markdown source is returned unchanged.
func RenderMarkdown(md string, plain bool) string {
	if plain {
		return md
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		slog.Warn("markdown renderer unavailable", "error", err)
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		slog.Warn("failed to render markdown", "error", err)
		return md
	}
	return out
}

// WriteMarkdown renders md to w
func WriteMarkdown(w io.Writer, md string, plain bool) error {
	_, err := io.WriteString(w, RenderMarkdown(md, plain))
	return err
}

// TaskLine renders a task as a single styled line:
// "[ ] #3 Title  high  due 2024-01-02  (Work)"
func TaskLine(t *models.Task, projectName string, today models.Date) string {
	var b strings.Builder

	b.WriteString(styles.Checkbox(t.Completed))
	b.WriteString(" ")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("#%d", t.ID)))
	b.WriteString(" ")
	if t.Completed {
		b.WriteString(styles.CompletedStyle.Render(t.Title))
	} else {
		b.WriteString(styles.ValueStyle.Render(t.Title))
	}
	b.WriteString("  ")
	b.WriteString(styles.Priority(t.Priority))

	if t.DueDate != nil {
		due := "due " + t.DueDate.String()
		b.WriteString("  ")
		if t.IsOverdue(today) {
			b.WriteString(styles.OverdueStyle.Render(due))
		} else {
			b.WriteString(styles.SubtitleStyle.Render(due))
		}
	}
	if projectName != "" {
		b.WriteString("  ")
		b.WriteString(styles.SubtitleStyle.Render("(" + projectName + ")"))
	}
	return b.String()
}

// TaskMarkdown renders a task as a Markdown list item
func TaskMarkdown(t *models.Task, projectName string) string {
	box := "[ ]"
	title := t.Title
	if t.Completed {
		box = "[x]"
		title = "~~" + title + "~~"
	}

	parts := []string{fmt.Sprintf("- %s **#%d** %s `%s`", box, t.ID, title, t.Priority)}
	if t.DueDate != nil {
		parts = append(parts, "due "+t.DueDate.String())
	}
	if projectName != "" {
		parts = append(parts, "_"+projectName+"_")
	}
	return strings.Join(parts, " · ") + "\n"
}
