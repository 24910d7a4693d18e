package board

import "errors"

// Validation errors. These are reported to callers as error alerts on a
// failed Outcome, not as Go errors.
var (
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrInvalidPosition = errors.New("invalid position: must be >= 0")
)
