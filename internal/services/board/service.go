// Package board is the board service: the task update and create calls
// whose outcomes the task card inspects, plus the board lookups it needs.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/taskcard/internal/database"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/types"
)

const maxTitleLength = 255

// Service defines the board operations used by task cards and the surfaces
type Service interface {
	// Read operations
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetTask(ctx context.Context, id types.TaskID) (*models.Task, error)

	// Write operations. Rejected input yields a failed Outcome with alerts;
	// the error return is reserved for storage failures.
	UpdateTask(ctx context.Context, task *models.Task) (models.Outcome, error)
	AddTask(ctx context.Context, task *models.Task) (models.Outcome, error)
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new board service
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

func (s *service) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	board, err := s.repo.GetBoard(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get board %d: %w", id, err)
	}
	return board, nil
}

func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	boards, err := s.repo.ListBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

func (s *service) GetTask(ctx context.Context, id types.TaskID) (*models.Task, error) {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// UpdateTask stores task and returns it together with the board that now
// holds it
func (s *service) UpdateTask(ctx context.Context, task *models.Task) (models.Outcome, error) {
	if task == nil || task.ID <= 0 {
		return models.Failure(ErrInvalidTaskID.Error()), nil
	}
	if err := validateTask(task); err != nil {
		return models.Failure(err.Error()), nil
	}

	board, outcome, err := s.boardForColumn(ctx, task.ColumnID)
	if board == nil {
		return outcome, err
	}

	updated, err := s.repo.UpdateTask(ctx, task)
	if errors.Is(err, models.ErrTaskNotFound) {
		return models.Failure(err.Error()), nil
	}
	if err != nil {
		return models.Outcome{}, fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}

	s.logger.Debug("task updated", "task", updated.ID, "column", updated.ColumnID, "board", board.ID)
	return success(updated, board, "Task "+updated.Title+" updated"), nil
}

// AddTask creates a new task from task, ignoring its ID
func (s *service) AddTask(ctx context.Context, task *models.Task) (models.Outcome, error) {
	if task == nil {
		return models.Failure(ErrEmptyTitle.Error()), nil
	}
	if err := validateTask(task); err != nil {
		return models.Failure(err.Error()), nil
	}

	board, outcome, err := s.boardForColumn(ctx, task.ColumnID)
	if board == nil {
		return outcome, err
	}

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("failed to add task: %w", err)
	}

	s.logger.Debug("task added", "task", created.ID, "column", created.ColumnID, "board", board.ID)
	return success(created, board, "Task "+created.Title+" added"), nil
}

// boardForColumn resolves the board owning columnID. A nil board means the
// caller should return outcome and err as they are.
func (s *service) boardForColumn(ctx context.Context, columnID types.ColumnID) (*models.Board, models.Outcome, error) {
	if columnID <= 0 {
		return nil, models.Failure(ErrInvalidColumnID.Error()), nil
	}

	board, err := s.repo.GetBoardByColumn(ctx, columnID)
	if errors.Is(err, models.ErrColumnNotFound) {
		return nil, models.Failure(err.Error()), nil
	}
	if err != nil {
		return nil, models.Outcome{}, fmt.Errorf("failed to resolve column %d: %w", columnID, err)
	}
	return board, models.Outcome{}, nil
}

func validateTask(task *models.Task) error {
	if task.Title == "" {
		return ErrEmptyTitle
	}
	if len(task.Title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if task.Position < 0 {
		return ErrInvalidPosition
	}
	return nil
}

// success carries a single success alert, as the board API does for writes
func success(task *models.Task, board *models.Board, text string) models.Outcome {
	return models.Outcome{
		Status: models.StatusSuccess,
		Data:   &models.OutcomeData{Task: task, Board: board},
		Alerts: []models.Notification{models.NewNotification(models.NoteSuccess, text)},
	}
}
