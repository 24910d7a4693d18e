package task

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskcard/internal/app"
	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/database"
	"github.com/thenoetrevino/taskcard/internal/lang"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/taskview"
	"github.com/thenoetrevino/taskcard/internal/testutil"
)

type fixture struct {
	app  *app.App
	repo *database.Repository
	main *models.Board
	ops  *models.Board
}

func setup(t *testing.T) *fixture {
	t.Helper()
	a, repo := testutil.SetupTestApp(t)
	demo := testutil.SeedDemo(t, repo)
	return &fixture{app: a, repo: repo, main: demo.Main, ops: demo.Ops}
}

func (f *fixture) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return testutil.ExecuteCLICommand(t, f.app, TaskCmd(), args...)
}

func decode(t *testing.T, out string, v any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, v))
}

func TestRender_JSON(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "render", "1", "--json")
	require.NoError(t, err)

	var got RenderOutput
	decode(t, out, &got)
	assert.EqualValues(t, 1, got.TaskID)
	assert.Equal(t, 2, got.Counts.Total)
	assert.Equal(t, 1, got.Counts.Checked)
	assert.Contains(t, got.HTML, `href="https://bugs.example.com/7"`)
}

func TestRender_IDFlag(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "render", "--id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "BUG-7")
}

func TestRender_Quiet(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "render", "1", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestRender_InvalidID(t *testing.T) {
	f := setup(t)

	_, stderr, err := f.run(t, "render", "abc")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, stderr, "positive integer")
}

func TestRender_NotFound(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "render", "99", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Contains(t, out, "TASK_NOT_FOUND")
}

func TestProgress(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "progress", "1")
	require.NoError(t, err)
	assert.Equal(t, "Task 50% Complete (1/2)\n", out)

	out, _, err = f.run(t, "progress", "1", "--json")
	require.NoError(t, err)

	var got ProgressOutput
	decode(t, out, &got)
	assert.InDelta(t, 0.5, got.Fraction, 1e-9)
	assert.Contains(t, got.Style, "width: 50%;")
}

func TestShow_JSON(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "show", "1", "--json")
	require.NoError(t, err)

	var got ShowOutput
	decode(t, out, &got)
	assert.Equal(t, "Write docs", got.Task.Title)
	assert.Equal(t, "Todo", got.Column)
	assert.Equal(t, "Main board", got.Board.Name)
	assert.Equal(t, "#333333", got.TextColor)
	assert.False(t, got.Due.Overdue)
}

func TestShow_Human(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Write docs")
	assert.Contains(t, out, "Main board")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "#1")
}

func TestMenu_JSON(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "menu", "1", "--json")
	require.NoError(t, err)

	var entries []MenuEntry
	decode(t, out, &entries)
	require.Len(t, entries, 10)
	assert.Equal(t, "action", entries[0].Kind)
	assert.Equal(t, "separator", entries[3].Kind)
	assert.Equal(t, "control", entries[4].Kind)

	// the active board is never a copy target
	for _, opt := range entries[4].Options {
		assert.NotEqual(t, int(f.main.ID), opt.Value)
	}
}

func TestMenu_Human(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "menu", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Todo")
	assert.Contains(t, out, "Ops")
	assert.Contains(t, out, "─")
}

func TestColumn_Moves(t *testing.T) {
	f := setup(t)
	doing := f.main.Columns[1]

	out, _, err := f.run(t, "column", "1", strconv.Itoa(int(doing.ID)), "--json")
	require.NoError(t, err)

	var got ActionOutput
	decode(t, out, &got)
	assert.Equal(t, doing.ID, got.Task.ColumnID)
	assert.Equal(t, f.main.ID, got.ActiveBoardID)
	require.Len(t, got.Notifications, 1)
	assert.Equal(t, models.NoteSuccess, got.Notifications[0].Type)

	stored, err := f.repo.GetTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, doing.ID, stored.ColumnID)
}

func TestColumn_InvalidTarget(t *testing.T) {
	f := setup(t)

	_, _, err := f.run(t, "column", "1", "zero")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestCopy_CreatesTaskOnTarget(t *testing.T) {
	f := setup(t)

	out, _, err := f.run(t, "copy", "1", strconv.Itoa(int(f.ops.ID)), "--json")
	require.NoError(t, err)

	var got ActionOutput
	decode(t, out, &got)
	require.Len(t, got.Notifications, 1)
	assert.Equal(t, models.NoteSuccess, got.Notifications[0].Type)
	assert.Equal(t, "Task Write docs copied to Ops", got.Notifications[0].Text)

	// the copied-from task stays where it was
	assert.Equal(t, f.main.Columns[0].ID, got.Task.ColumnID)

	copied, err := f.repo.GetTask(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, f.ops.Columns[0].ID, copied.ColumnID)
	assert.Equal(t, "Write docs", copied.Title)
}

func TestMove_ChangesBoard(t *testing.T) {
	f := setup(t)

	_, _, err := f.run(t, "move", "--id", "1", strconv.Itoa(int(f.ops.ID)))
	require.NoError(t, err)

	stored, err := f.repo.GetTask(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, f.ops.Columns[0].ID, stored.ColumnID)
}

func TestMove_UnknownBoard(t *testing.T) {
	f := setup(t)

	_, _, err := f.run(t, "move", "1", "404")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestRenderCard_Badges(t *testing.T) {
	strs := lang.Default()
	out := ShowOutput{
		Task:      &models.Task{Title: "Ship", Color: "#000000", DueDate: "2020-01-01"},
		Board:     &models.Board{Name: "Main"},
		TextColor: "#efefef",
		Due:       taskview.DueState{Overdue: true},
	}

	card := renderCard(out, strs)
	assert.Contains(t, card, "Overdue")
	assert.Contains(t, card, "No description")

	out.Due = taskview.DueState{NearlyDue: true}
	assert.Contains(t, renderCard(out, strs), "Due soon")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░", progressBar(0, 4))
	assert.Equal(t, "██░░", progressBar(0.5, 4))
	assert.Equal(t, "████", progressBar(1.5, 4))
}
