package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/markup"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// ProgressOutput is the JSON form of a task's checklist progress
type ProgressOutput struct {
	TaskID   types.TaskID  `json:"task_id"`
	Fraction float64       `json:"fraction"`
	Style    string        `json:"style"`
	Title    string        `json:"title"`
	Counts   markup.Counts `json:"counts"`
}

// GetID implements the quiet output contract
func (p ProgressOutput) GetID() int { return int(p.TaskID) }

// ProgressCmd returns the task progress subcommand
func ProgressCmd() *cobra.Command {
	return taskCommand("progress [id]", "Show checklist progress of a task", 0, runProgress)
}

func runProgress(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	s, err := openCard(cmd, args, formatter, nil)
	if err != nil {
		return err
	}
	defer s.close()

	counts := s.card.Description().Counts
	out := ProgressOutput{
		TaskID:   s.card.Task().ID,
		Fraction: s.card.PercentComplete(),
		Style:    s.card.PercentStyle(),
		Title:    s.card.PercentTitle(),
		Counts:   counts,
	}

	return formatter.Success(out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s (%d/%d)\n", out.Title, counts.Checked, counts.Total)
		return err
	})
}
