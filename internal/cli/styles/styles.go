package styles

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:", "Due:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Overdue"

	// Status styles
	CompletedStyle lipgloss.Style
	OverdueStyle   lipgloss.Style
	SuccessStyle   lipgloss.Style
	ErrorStyle     lipgloss.Style
	WarningStyle   lipgloss.Style

	priorityStyles map[models.Priority]lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true)

	CompletedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Completed)).
		Strikethrough(true)

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Overdue))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Warning))

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.PriorityHigh)),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PriorityMedium)),
		models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PriorityLow)),
	}
}

// Priority renders a priority badge in its color
func Priority(p models.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		return string(p)
	}
	return style.Render(string(p))
}

// Checkbox renders the completion marker of a task
func Checkbox(done bool) string {
	if done {
		return SuccessStyle.Render("[x]")
	}
	return SubtitleStyle.Render("[ ]")
}
