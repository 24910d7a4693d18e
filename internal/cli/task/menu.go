package task

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/menu"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/notify"
	"github.com/thenoetrevino/taskcard/internal/taskview"
	"github.com/thenoetrevino/taskcard/internal/tui"
)

// MenuEntry is the JSON form of one context-menu row
type MenuEntry struct {
	Kind     string        `json:"kind"`
	Label    string        `json:"label,omitempty"`
	Markup   string        `json:"markup"`
	Disabled bool          `json:"disabled"`
	SelectID string        `json:"select_id,omitempty"`
	Options  []menu.Option `json:"options,omitempty"`
}

// MenuCmd returns the task menu subcommand
func MenuCmd() *cobra.Command {
	cmd := taskCommand("menu [id]", "List or pick from a task's context menu", 0, runMenu)
	cmd.Flags().BoolP("interactive", "i", false, "Pick an entry in a terminal menu")
	return cmd
}

func runMenu(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	notes := notify.NewStore()

	s, err := openCard(cmd, args, formatter, notes)
	if err != nil {
		return err
	}
	defer s.close()

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		return runPicker(cmd, s, notes)
	}

	entries := s.card.Menu(cmd.Context())
	out := menuEntries(entries)
	return formatter.Success(out, func(w io.Writer) error {
		return writeMenu(w, entries)
	})
}

func menuEntries(entries []menu.Entry) []MenuEntry {
	out := make([]MenuEntry, 0, len(entries))
	for _, entry := range entries {
		e := MenuEntry{
			Kind:     entry.Kind().String(),
			Markup:   entry.Markup(),
			Disabled: entry.Disabled(),
		}
		switch v := entry.(type) {
		case menu.Action:
			e.Label = v.Label
		case menu.Control:
			e.Label = v.Label
			e.SelectID = v.SelectID
			e.Options = v.Options
		}
		out = append(out, e)
	}
	return out
}

func writeMenu(w io.Writer, entries []menu.Entry) error {
	for _, entry := range entries {
		var line string
		switch v := entry.(type) {
		case menu.Action:
			line = "  " + v.Label
		case menu.Separator:
			line = "  " + strings.Repeat("─", 24)
		case menu.Control:
			labels := make([]string, 0, len(v.Options))
			for _, opt := range v.Options {
				labels = append(labels, fmt.Sprintf("%d=%s", opt.Value, opt.Label))
			}
			line = fmt.Sprintf("  %s: [%s]", v.Label, strings.Join(labels, ", "))
			if v.Disabled() {
				line += " (disabled)"
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// runPicker shows the menu in a bubbletea picker and runs the chosen entry.
// Host actions other than View are not available outside the board view.
func runPicker(cmd *cobra.Command, s *session, notes *notify.Store) error {
	var view bool
	unavailable := func(name string) func() {
		return func() {
			notes.Add(models.NewNotification(models.NoteInfo,
				name+" is only available from the board view"))
		}
	}
	s.card.SetHostHooks(taskview.HostHooks{
		View:   func() { view = true },
		Edit:   unavailable("Edit"),
		Remove: unavailable("Remove"),
		Add:    unavailable("Add"),
	})

	model := tui.New(s.card.Task().Title, s.card.Menu(cmd.Context()), s.cli.Config)
	program := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return cli.Exit(cli.ExitError, fmt.Errorf("menu: %w", err))
	}

	out := cmd.OutOrStdout()
	if view {
		fmt.Fprintln(out, renderCard(showOutput(s.card, time.Now()), s.cli.App.Strings))
	}
	return writeNotes(out, notes.Drain())
}
