package database

import (
	"context"

	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// BoardRepository covers boards and the columns and trackers they own
type BoardRepository interface {
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)
	GetBoardByColumn(ctx context.Context, columnID types.ColumnID) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
	CreateColumn(ctx context.Context, boardID types.BoardID, name string, position int) (*models.Column, error)
	CreateIssueTracker(ctx context.Context, boardID types.BoardID, regex, url string) (*models.IssueTracker, error)
}

// TaskRepository covers task rows
type TaskRepository interface {
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	GetTask(ctx context.Context, id types.TaskID) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)
}

// DataStore is everything the board service needs. Consumers can depend on
// the smaller interfaces instead.
type DataStore interface {
	BoardRepository
	TaskRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
