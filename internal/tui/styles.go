package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/taskcard/internal/config"
)

// styles for the picker, derived from the configured color scheme
type styles struct {
	Title     lipgloss.Style
	Cursor    lipgloss.Style
	Item      lipgloss.Style
	Disabled  lipgloss.Style
	Separator lipgloss.Style
	Option    lipgloss.Style
	Status    lipgloss.Style
}

func newStyles(colors config.ColorScheme) styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)).
			MarginBottom(1),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		Option: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Accent)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.WarningFg)).
			MarginTop(1),
	}
}
