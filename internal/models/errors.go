package models

import "errors"

// Domain-specific errors for board lookups and task placement
var (
	// ErrBoardNotFound indicates the requested board does not exist
	ErrBoardNotFound = errors.New("board not found")

	// ErrTaskNotFound indicates the requested task does not exist
	ErrTaskNotFound = errors.New("task not found")

	// ErrColumnNotFound indicates the requested column does not exist
	ErrColumnNotFound = errors.New("column not found")

	// ErrBoardHasNoColumns indicates a task cannot be placed on a board without columns
	ErrBoardHasNoColumns = errors.New("board has no columns")
)
