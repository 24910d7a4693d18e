package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// TaskRepo handles task rows
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = `id, title, description, color, column_id, position, due_date`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.Color,
		&task.ColumnID, &task.Position, &task.DueDate,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// CreateTask inserts task and returns the stored row. task.ID is ignored.
func (r *TaskRepo) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	color := task.Color
	if color == "" {
		color = "#ffffe0"
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, color, column_id, position, due_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		task.Title, task.Description, color, task.ColumnID, task.Position, task.DueDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetTask(ctx, types.TaskID(id))
}

// GetTask loads one task
func (r *TaskRepo) GetTask(ctx context.Context, id types.TaskID) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask overwrites every editable field of the task row
func (r *TaskRepo) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, color = ?, column_id = ?, position = ?,
		     due_date = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		task.Title, task.Description, task.Color, task.ColumnID, task.Position,
		task.DueDate, task.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, models.ErrTaskNotFound
	}

	return r.GetTask(ctx, task.ID)
}
