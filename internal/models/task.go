package models

import "github.com/thenoetrevino/taskcard/internal/types"

// Task represents a single card on a board
type Task struct {
	ID          types.TaskID   `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Color       string         `json:"color" yaml:"color"`
	ColumnID    types.ColumnID `json:"column_id" yaml:"column_id"`
	Position    int            `json:"position" yaml:"position"`

	// DueDate is free text as entered by the user; "" means unset
	DueDate string `json:"due_date" yaml:"due_date"`
}

// Clone returns a shallow copy that can be mutated without touching t
func (t *Task) Clone() *Task {
	c := *t
	return &c
}
