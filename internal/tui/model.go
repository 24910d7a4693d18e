// Package tui is an interactive terminal picker for a task's context menu
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/taskcard/internal/config"
	"github.com/thenoetrevino/taskcard/internal/menu"
)

// placeholder is the option index of a control's "Select ..." entry
const placeholder = -1

// Model is the bubbletea model of the menu picker
type Model struct {
	title   string
	entries []menu.Entry
	cursor  int

	// chosen option index per control entry, placeholder when unset
	chosen map[int]int

	keys   keyMap
	help   help.Model
	styles styles

	status   string
	fired    bool
	quitting bool
}

// New creates a picker over entries. The cursor starts on the first
// selectable entry.
func New(title string, entries []menu.Entry, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		title:   title,
		entries: entries,
		chosen:  make(map[int]int),
		keys:    newKeyMap(cfg.KeyMappings),
		help:    help.New(),
		styles:  newStyles(cfg.ColorScheme),
	}
	for i, e := range entries {
		if e.Kind() == menu.KindControl {
			m.chosen[i] = placeholder
		}
	}
	m.cursor = m.next(-1, 1)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Fired reports whether an entry ran before the picker closed
func (m Model) Fired() bool {
	return m.fired
}

// Cursor returns the index of the highlighted entry, or -1 when nothing
// can be selected
func (m Model) Cursor() int {
	return m.cursor
}

// next returns the first selectable index after from in direction dir,
// wrapping around. Separators and disabled entries are skipped.
func (m Model) next(from, dir int) int {
	n := len(m.entries)
	for step := 1; step <= n; step++ {
		i := ((from+dir*step)%n + n) % n
		if selectable(m.entries[i]) {
			return i
		}
	}
	return -1
}

func selectable(e menu.Entry) bool {
	return e.Kind() != menu.KindSeparator && !e.Disabled()
}
