package task

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/cli/styles"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/notify"
	"github.com/thenoetrevino/taskcard/internal/taskview"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// ActionOutput is the JSON form of a column or board action
type ActionOutput struct {
	Task          *models.Task          `json:"task"`
	ActiveBoardID types.BoardID         `json:"active_board_id"`
	Notifications []models.Notification `json:"notifications"`
}

// GetID implements the quiet output contract
func (a ActionOutput) GetID() int { return int(a.Task.ID) }

// errRejected is returned when the board service refused the action
var errRejected = errors.New("action rejected")

// ColumnCmd returns the task column subcommand
func ColumnCmd() *cobra.Command {
	return taskCommand("column [id] <column-id>", "Move a task to another column of its board", 1,
		actionRunner("column-id", func(ctx context.Context, card *taskview.Card, target int) error {
			return card.ChangeColumn(ctx, types.ColumnID(target))
		}))
}

// CopyCmd returns the task copy subcommand
func CopyCmd() *cobra.Command {
	return taskCommand("copy [id] <board-id>", "Copy a task to the first column of another board", 1,
		actionRunner("board-id", func(ctx context.Context, card *taskview.Card, target int) error {
			return card.CopyToBoard(ctx, types.BoardID(target))
		}))
}

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	return taskCommand("move [id] <board-id>", "Move a task to the first column of another board", 1,
		actionRunner("board-id", func(ctx context.Context, card *taskview.Card, target int) error {
			return card.MoveToBoard(ctx, types.BoardID(target))
		}))
}

// actionRunner builds the RunE of a card action. The last positional
// argument is the target; the task ID comes before it or from --id.
func actionRunner(targetName string, act func(context.Context, *taskview.Card, int) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		formatter := cli.NewFormatter(cmd)

		target, err := cli.PositiveInt(targetName, args[len(args)-1])
		if err != nil {
			if fmtErr := formatter.Error("INVALID_ARGUMENT", err.Error()); fmtErr != nil {
				return fmtErr
			}
			return cli.Exit(cli.ExitUsage, err)
		}

		notes := notify.NewStore()
		s, err := openCard(cmd, args[:len(args)-1], formatter, notes)
		if err != nil {
			return err
		}
		defer s.close()

		if err := act(cmd.Context(), s.card, target); err != nil {
			code, name := cli.LookupExitCode(err)
			return formatter.Fail(code, name, err)
		}

		out := ActionOutput{
			Task:          s.card.Task(),
			ActiveBoardID: s.card.ActiveBoard().ID,
			Notifications: notes.Drain(),
		}
		if err := formatter.Success(out, func(w io.Writer) error {
			return writeNotes(w, out.Notifications)
		}); err != nil {
			return err
		}

		for _, note := range out.Notifications {
			if note.Type == models.NoteError {
				return cli.Exit(cli.ExitValidation, fmt.Errorf("%w: %s", errRejected, note.Text))
			}
		}
		return nil
	}
}

func writeNotes(w io.Writer, notes []models.Notification) error {
	for _, note := range notes {
		if _, err := fmt.Fprintf(w, "%s %s\n", styles.ForNote(note.Type).Render(note.Type), note.Text); err != nil {
			return err
		}
	}
	return nil
}
