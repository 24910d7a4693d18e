package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskcard/internal/lang"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/types"
)

func testBoards() (*models.Board, []*models.Board) {
	active := &models.Board{
		ID:   1,
		Name: "Work",
		Columns: []*models.Column{
			{ID: 10, BoardID: 1, Name: "Todo"},
			{ID: 11, BoardID: 1, Name: "Done"},
		},
	}
	other := &models.Board{
		ID:      2,
		Name:    "Home",
		Columns: []*models.Column{{ID: 20, BoardID: 2, Name: "Backlog"}},
	}
	third := &models.Board{ID: 3, Name: "Side <Project>"}
	return active, []*models.Board{active, other, third}
}

func kinds(entries []Entry) []Kind {
	out := make([]Kind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind()
	}
	return out
}

func TestBuild_SingleBoard(t *testing.T) {
	active, _ := testBoards()

	entries := Build(Input{
		Task:        &models.Task{ID: 5},
		ActiveBoard: active,
		Boards:      []*models.Board{active},
		Strings:     lang.Default(),
	})

	require.Len(t, entries, 7)
	assert.Equal(t, []Kind{
		KindAction, KindAction, KindAction,
		KindSeparator, KindControl, KindSeparator, KindAction,
	}, kinds(entries))
	assert.Equal(t, "View Task", entries[0].Markup())
	assert.Equal(t, "Edit Task", entries[1].Markup())
	assert.Equal(t, "Remove Task", entries[2].Markup())
	assert.Equal(t, "Add Task", entries[6].Markup())

	for _, e := range entries {
		assert.NotContains(t, e.Markup(), "Copy To Board")
		assert.NotContains(t, e.Markup(), "Move To Board")
	}
}

func TestBuild_MultipleBoards(t *testing.T) {
	active, boards := testBoards()

	entries := Build(Input{
		Task:        &models.Task{ID: 5},
		ActiveBoard: active,
		Boards:      boards,
		Strings:     lang.Default(),
	})

	require.Len(t, entries, 10)
	assert.Equal(t, []Kind{
		KindAction, KindAction, KindAction,
		KindSeparator, KindControl, KindControl,
		KindSeparator, KindControl, KindSeparator, KindAction,
	}, kinds(entries))

	copyCtl := entries[4].(Control)
	moveCtl := entries[5].(Control)
	assert.Equal(t, "Copy To Board", copyCtl.Label)
	assert.Equal(t, "Move To Board", moveCtl.Label)
	assert.Equal(t, "boardsList5Copy", copyCtl.SelectID)
	assert.Equal(t, "boardsList5Move", moveCtl.SelectID)

	want := []Option{{Value: 2, Label: "Home"}, {Value: 3, Label: "Side <Project>"}}
	assert.Equal(t, want, copyCtl.Options)
	assert.Equal(t, want, moveCtl.Options)
}

func TestBuild_ColumnControl(t *testing.T) {
	active, _ := testBoards()

	entries := Build(Input{
		Task:        &models.Task{ID: 9},
		ActiveBoard: active,
		Boards:      []*models.Board{active},
		Strings:     lang.Default(),
	})

	ctl := entries[4].(Control)
	assert.False(t, ctl.Disabled())
	assert.Equal(t, "columnsList9", ctl.SelectID)
	assert.Equal(t,
		`Move to Column: <select id="columnsList9"><option value="0">Select Column</option>`+
			`<option value="10">Todo</option><option value="11">Done</option></select>`,
		ctl.Markup())
}

func TestBuild_ColumnControlDisabledWithoutColumns(t *testing.T) {
	empty := &models.Board{ID: 1, Name: "Empty"}

	entries := Build(Input{
		Task:        &models.Task{ID: 1},
		ActiveBoard: empty,
		Boards:      []*models.Board{empty},
		Strings:     lang.Default(),
	})

	ctl := entries[4].(Control)
	assert.True(t, ctl.Disabled())
	assert.Contains(t, ctl.Markup(), "disabled")
}

func TestBuild_BoardControlMarkupEscapesNames(t *testing.T) {
	active, boards := testBoards()

	entries := Build(Input{
		Task:        &models.Task{ID: 5},
		ActiveBoard: active,
		Boards:      boards,
		Strings:     lang.Default(),
	})

	markup := entries[4].Markup()
	assert.Contains(t, markup, `data-help="The task will be placed in the first column of the selected board."`)
	assert.Contains(t, markup, `<option value="3">Side &lt;Project&gt;</option>`)
	assert.NotContains(t, markup, `>Work<`)
}

func TestBuild_HooksFireOnlyFromControl(t *testing.T) {
	active, boards := testBoards()

	var (
		viewed   int
		column   types.ColumnID
		copiedTo types.BoardID
		movedTo  types.BoardID
	)

	entries := Build(Input{
		Task:        &models.Task{ID: 5},
		ActiveBoard: active,
		Boards:      boards,
		Strings:     lang.Default(),
		Hooks: Hooks{
			View:         func() { viewed++ },
			ChangeColumn: func(id types.ColumnID) { column = id },
			CopyToBoard:  func(id types.BoardID) { copiedTo = id },
			MoveToBoard:  func(id types.BoardID) { movedTo = id },
		},
	})

	entries[0].(Action).Click()
	assert.Equal(t, 1, viewed)

	copyCtl := entries[4].(Control)
	assert.False(t, copyCtl.Click(TargetRow, 2), "row clicks are ignored")
	assert.False(t, copyCtl.Click(TargetControl, 0), "placeholder is ignored")
	assert.Zero(t, copiedTo)
	assert.True(t, copyCtl.Click(TargetControl, 2))
	assert.Equal(t, types.BoardID(2), copiedTo)

	assert.True(t, entries[5].(Control).Click(TargetControl, 3))
	assert.Equal(t, types.BoardID(3), movedTo)

	assert.True(t, entries[7].(Control).Click(TargetControl, 11))
	assert.Equal(t, types.ColumnID(11), column)
}

func TestControl_ClickIgnoresUnknownValues(t *testing.T) {
	active, boards := testBoards()

	var copiedTo []types.BoardID
	entries := Build(Input{
		Task:        &models.Task{ID: 5},
		ActiveBoard: active,
		Boards:      boards,
		Strings:     lang.Default(),
		Hooks: Hooks{
			CopyToBoard: func(id types.BoardID) { copiedTo = append(copiedTo, id) },
		},
	})

	copyCtl := entries[4].(Control)
	assert.False(t, copyCtl.Click(TargetControl, int(active.ID)), "active board is not an option")
	assert.False(t, copyCtl.Click(TargetControl, 99))
	assert.Empty(t, copiedTo)

	assert.True(t, copyCtl.Click(TargetControl, 3))
	assert.Equal(t, []types.BoardID{3}, copiedTo)
}

func TestAction_ClickWithoutHandler(t *testing.T) {
	assert.NotPanics(t, func() { Action{Label: "x"}.Click() })
}

func TestSeparator(t *testing.T) {
	var e Entry = Separator{}
	assert.Equal(t, KindSeparator, e.Kind())
	assert.Empty(t, e.Markup())
	assert.True(t, e.Disabled())
}
