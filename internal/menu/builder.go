package menu

import (
	"slices"
	"strconv"
	"strings"

	"github.com/thenoetrevino/taskcard/internal/lang"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// Hooks are the callbacks wired into the menu. View, Edit, Remove and Add
// belong to the host; the others receive the value chosen in a control.
type Hooks struct {
	View   func()
	Edit   func()
	Remove func()
	Add    func()

	ChangeColumn func(types.ColumnID)
	CopyToBoard  func(types.BoardID)
	MoveToBoard  func(types.BoardID)
}

// Input is everything the menu depends on. ActiveBoard and Task must be
// non-nil.
type Input struct {
	Task        *models.Task
	ActiveBoard *models.Board
	Boards      []*models.Board
	Strings     lang.Table
	Hooks       Hooks
}

// Build returns the menu entries in display order:
//
//	View, Edit, Remove, ---, Move to column, ---, Add
//
// When more than one board exists, a separator and the copy/move to board
// controls are inserted right after Remove.
func Build(in Input) []Entry {
	s := in.Strings
	h := in.Hooks

	entries := []Entry{
		Action{Label: s.Get(lang.ViewTask), Handler: h.View},
		Action{Label: s.Get(lang.EditTask), Handler: h.Edit},
		Action{Label: s.Get(lang.RemoveTask), Handler: h.Remove},
		Separator{},
		columnControl(in),
		Separator{},
		Action{Label: s.Get(lang.AddTask), Handler: h.Add},
	}

	if len(in.Boards) > 1 {
		entries = slices.Insert(entries, 3,
			Entry(Separator{}),
			Entry(boardControl(in, s.Get(lang.CopyTaskTo), h.CopyToBoard)),
			Entry(boardControl(in, s.Get(lang.MoveTaskTo), h.MoveToBoard)),
		)
	}

	return entries
}

func columnControl(in Input) Control {
	options := make([]Option, 0, len(in.ActiveBoard.Columns))
	for _, col := range in.ActiveBoard.Columns {
		options = append(options, Option{Value: col.ID.ToInt(), Label: col.Name})
	}

	var onSelect func(int)
	if in.Hooks.ChangeColumn != nil {
		onSelect = func(v int) { in.Hooks.ChangeColumn(types.ColumnID(v)) }
	}

	return Control{
		Label:       in.Strings.Get(lang.MoveTask),
		SelectID:    "columnsList" + strconv.Itoa(in.Task.ID.ToInt()),
		Placeholder: in.Strings.Get(lang.SelectColumn),
		Options:     options,
		OnSelect:    onSelect,
	}
}

// boardControl lists every board except the active one, matched by name
func boardControl(in Input, label string, hook func(types.BoardID)) Control {
	options := make([]Option, 0, len(in.Boards))
	for _, board := range in.Boards {
		if board == nil || board.Name == in.ActiveBoard.Name {
			continue
		}
		options = append(options, Option{Value: board.ID.ToInt(), Label: board.Name})
	}

	var onSelect func(int)
	if hook != nil {
		onSelect = func(v int) { hook(types.BoardID(v)) }
	}

	return Control{
		Label:       label,
		Help:        in.Strings.Get(lang.CopyMoveHelp),
		SelectID:    "boardsList" + strconv.Itoa(in.Task.ID.ToInt()) + firstWord(label),
		Placeholder: in.Strings.Get(lang.SelectBoard),
		Options:     options,
		OnSelect:    onSelect,
	}
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
