package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/taskcard/internal/menu"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.cursor < 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.next(m.cursor, -1)
		m.status = ""
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.next(m.cursor, 1)
		m.status = ""
	case key.Matches(msg, m.keys.Left):
		m.cycleOption(-1)
	case key.Matches(msg, m.keys.Right):
		m.cycleOption(1)
	case key.Matches(msg, m.keys.Select):
		return m.activate()
	}
	return m, nil
}

// cycleOption moves the highlighted control through placeholder and options
func (m *Model) cycleOption(dir int) {
	ctrl, ok := m.entries[m.cursor].(menu.Control)
	if !ok {
		return
	}

	// placeholder plus every option
	n := len(ctrl.Options) + 1
	pos := m.chosen[m.cursor] + 1
	pos = ((pos+dir)%n + n) % n
	m.chosen[m.cursor] = pos - 1
	m.status = ""
}

// activate runs the highlighted entry. The picker closes once something ran.
func (m Model) activate() (tea.Model, tea.Cmd) {
	switch entry := m.entries[m.cursor].(type) {
	case menu.Action:
		entry.Click()
		m.fired = true
		m.quitting = true
		return m, tea.Quit
	case menu.Control:
		value := 0
		if idx := m.chosen[m.cursor]; idx != placeholder {
			value = entry.Options[idx].Value
		}
		if !entry.Click(menu.TargetControl, value) {
			m.status = "Choose an option with ←/→ first"
			return m, nil
		}
		m.fired = true
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}
