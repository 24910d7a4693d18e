package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskcard/internal/database"
	"github.com/thenoetrevino/taskcard/internal/models"
)

func setupRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

func TestApplyFixtureFile(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	f, err := LoadFile("testdata/boards.yaml")
	require.NoError(t, err)

	sum, err := Apply(ctx, repo, f)
	require.NoError(t, err)
	assert.Equal(t, Summary{Boards: 2, Columns: 5, Trackers: 1, Tasks: 3}, sum)

	boards, err := repo.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	mainBoard := boards[0]
	assert.Equal(t, "Main", mainBoard.Name)
	require.Len(t, mainBoard.IssueTrackers, 1)
	assert.Equal(t, `BUG-(\d+)`, mainBoard.IssueTrackers[0].Regex)

	notes, err := repo.GetTask(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Write release notes", notes.Title)
	assert.Equal(t, mainBoard.Columns[1].ID, notes.ColumnID)
	assert.Equal(t, "2026-11-01", notes.DueDate)
	assert.Contains(t, notes.Description, "- [x] collect changes")

	triage, err := repo.GetTask(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, mainBoard.Columns[0].ID, triage.ColumnID, "no column means the first one")
	assert.Equal(t, "#ffffe0", triage.Color)
}

func TestApply_UnknownColumn(t *testing.T) {
	repo := setupRepo(t)

	f, err := Parse(strings.NewReader(`
boards:
  - name: Main
    columns: [Todo]
    tasks:
      - title: Lost
        column: Nowhere
`))
	require.NoError(t, err)

	sum, err := Apply(context.Background(), repo, f)
	assert.ErrorIs(t, err, models.ErrColumnNotFound)
	assert.Equal(t, 1, sum.Boards)
	assert.Zero(t, sum.Tasks)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("boards:\n  - name: Main\n    colour: red\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Boards)
}
