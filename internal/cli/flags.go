package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// ErrInvalidTaskID is returned when no positive task ID was given
var ErrInvalidTaskID = errors.New("task ID must be a positive integer")

// AddOutputFlags registers the --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// TaskID reads the task ID from the first positional argument or the --id
// flag
func TaskID(cmd *cobra.Command, args []string) (types.TaskID, error) {
	var id int
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTaskID, args[0])
		}
		id = n
	} else {
		id, _ = cmd.Flags().GetInt("id")
	}

	if id <= 0 {
		return 0, ErrInvalidTaskID
	}
	return types.TaskID(id), nil
}

// PositiveInt parses a positive integer argument
func PositiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, value)
	}
	return n, nil
}

// LookupExitCode picks the exit code for a domain error
func LookupExitCode(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrTaskNotFound):
		return ExitNotFound, "TASK_NOT_FOUND"
	case errors.Is(err, models.ErrBoardNotFound):
		return ExitNotFound, "BOARD_NOT_FOUND"
	case errors.Is(err, models.ErrColumnNotFound):
		return ExitNotFound, "COLUMN_NOT_FOUND"
	case errors.Is(err, models.ErrBoardHasNoColumns):
		return ExitValidation, "BOARD_HAS_NO_COLUMNS"
	default:
		return ExitError, "INTERNAL_ERROR"
	}
}
