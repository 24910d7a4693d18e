package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/taskcard/internal/config"
)

// keyMap holds the picker bindings
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// newKeyMap builds bindings from the configured mappings. Arrow keys always
// work alongside them.
func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", km.PrevEntry),
			key.WithHelp("↑/"+km.PrevEntry, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", km.NextEntry),
			key.WithHelp("↓/"+km.NextEntry, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", km.PrevOption),
			key.WithHelp("←/"+km.PrevOption, "prev option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", km.NextOption),
			key.WithHelp("→/"+km.NextOption, "next option"),
		),
		Select: key.NewBinding(
			key.WithKeys(km.Select),
			key.WithHelp(km.Select, "select"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "esc", "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Left, k.Right},
		{k.Select, k.Help, k.Quit},
	}
}
