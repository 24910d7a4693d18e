package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskcard/internal/models"
)

// setupTestRepo opens a migrated in-memory database and wraps it in a Repository
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := InitDB(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db)
}

// createTestBoard creates a board with the given column names in order
func createTestBoard(t *testing.T, repo *Repository, name string, columns ...string) *models.Board {
	t.Helper()
	ctx := context.Background()

	board, err := repo.CreateBoard(ctx, name)
	require.NoError(t, err)

	for i, col := range columns {
		_, err := repo.CreateColumn(ctx, board.ID, col, i)
		require.NoError(t, err)
	}

	board, err = repo.GetBoard(ctx, board.ID)
	require.NoError(t, err)
	return board
}
