package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/types"
)

func TestInitDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "taskcard.db")

	db, err := InitDB(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	// Migrations are idempotent
	require.NoError(t, runMigrations(context.Background(), db))
	assert.FileExists(t, path)
}

func TestGetBoard_OrdersColumnsAndTrackers(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	board, err := repo.CreateBoard(ctx, "Main")
	require.NoError(t, err)

	_, err = repo.CreateColumn(ctx, board.ID, "Done", 2)
	require.NoError(t, err)
	_, err = repo.CreateColumn(ctx, board.ID, "Todo", 0)
	require.NoError(t, err)
	_, err = repo.CreateColumn(ctx, board.ID, "Doing", 1)
	require.NoError(t, err)

	_, err = repo.CreateIssueTracker(ctx, board.ID, `#(\d+)`, "https://bugs.example.com/%BUGID%")
	require.NoError(t, err)
	_, err = repo.CreateIssueTracker(ctx, board.ID, `GH-(\d+)`, "https://github.com/x/y/issues/%BUGID%")
	require.NoError(t, err)

	got, err := repo.GetBoard(ctx, board.ID)
	require.NoError(t, err)

	require.Len(t, got.Columns, 3)
	assert.Equal(t, "Todo", got.Columns[0].Name)
	assert.Equal(t, "Doing", got.Columns[1].Name)
	assert.Equal(t, "Done", got.Columns[2].Name)
	assert.Equal(t, "Todo", got.FirstColumn().Name)

	require.Len(t, got.IssueTrackers, 2)
	assert.Equal(t, `#(\d+)`, got.IssueTrackers[0].Regex)
	assert.Equal(t, `GH-(\d+)`, got.IssueTrackers[1].Regex)
}

func TestGetBoard_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetBoard(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrBoardNotFound)
}

func TestCreateBoard_DuplicateName(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateBoard(ctx, "Main")
	require.NoError(t, err)

	_, err = repo.CreateBoard(ctx, "Main")
	assert.Error(t, err)
}

func TestGetBoardByColumn(t *testing.T) {
	repo := setupTestRepo(t)
	createTestBoard(t, repo, "First", "A")
	second := createTestBoard(t, repo, "Second", "B", "C")

	got, err := repo.GetBoardByColumn(context.Background(), second.Columns[1].ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Len(t, got.Columns, 2)

	_, err = repo.GetBoardByColumn(context.Background(), 999)
	assert.ErrorIs(t, err, models.ErrColumnNotFound)
}

func TestListBoards(t *testing.T) {
	repo := setupTestRepo(t)
	createTestBoard(t, repo, "One", "Todo")
	createTestBoard(t, repo, "Two", "Todo", "Done")

	boards, err := repo.ListBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "One", boards[0].Name)
	assert.Equal(t, "Two", boards[1].Name)
	assert.Len(t, boards[1].Columns, 2)
}

func TestListBoards_Empty(t *testing.T) {
	repo := setupTestRepo(t)

	boards, err := repo.ListBoards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestCreateColumn_UnknownBoard(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.CreateColumn(context.Background(), types.BoardID(7), "Todo", 0)
	assert.Error(t, err, "foreign key should reject columns for missing boards")
}

func TestTaskLifecycle(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	board := createTestBoard(t, repo, "Main", "Todo", "Done")

	created, err := repo.CreateTask(ctx, &models.Task{
		Title:       "Write docs",
		Description: "- [ ] intro",
		ColumnID:    board.Columns[0].ID,
		DueDate:     "2026-01-02",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "#ffffe0", created.Color, "empty color takes the default")

	created.ColumnID = board.Columns[1].ID
	created.Color = "#000000"
	updated, err := repo.UpdateTask(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, board.Columns[1].ID, updated.ColumnID)
	assert.Equal(t, "#000000", updated.Color)
	assert.Equal(t, "2026-01-02", updated.DueDate)

	fetched, err := repo.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}

func TestGetTask_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetTask(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	board := createTestBoard(t, repo, "Main", "Todo")

	_, err := repo.UpdateTask(context.Background(), &models.Task{
		ID:       99,
		Title:    "ghost",
		ColumnID: board.Columns[0].ID,
	})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}
