package tui

import (
	"strings"

	"github.com/thenoetrevino/taskcard/internal/menu"
)

const separatorWidth = 24

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n")
	}

	for i, entry := range m.entries {
		b.WriteString(m.renderEntry(i, entry))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderEntry(i int, entry menu.Entry) string {
	if entry.Kind() == menu.KindSeparator {
		return "  " + m.styles.Separator.Render(strings.Repeat("─", separatorWidth))
	}

	prefix := "  "
	if i == m.cursor {
		prefix = m.styles.Cursor.Render("> ")
	}

	line := entryLabel(entry)
	if ctrl, ok := entry.(menu.Control); ok {
		line += ": " + m.styles.Option.Render("< "+m.optionLabel(i, ctrl)+" >")
	}

	style := m.styles.Item
	if entry.Disabled() {
		style = m.styles.Disabled
	}
	return prefix + style.Render(line)
}

func (m Model) optionLabel(i int, ctrl menu.Control) string {
	idx, ok := m.chosen[i]
	if !ok || idx == placeholder || idx >= len(ctrl.Options) {
		return ctrl.Placeholder
	}
	return ctrl.Options[idx].Label
}

func entryLabel(entry menu.Entry) string {
	switch e := entry.(type) {
	case menu.Action:
		return e.Label
	case menu.Control:
		return e.Label
	default:
		return ""
	}
}
