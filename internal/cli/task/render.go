package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/markup"
	"github.com/thenoetrevino/taskcard/internal/types"
)

// RenderOutput is the JSON form of a rendered description
type RenderOutput struct {
	TaskID types.TaskID  `json:"task_id"`
	HTML   string        `json:"html"`
	Counts markup.Counts `json:"counts"`
}

// GetID implements the quiet output contract
func (r RenderOutput) GetID() int { return int(r.TaskID) }

// RenderCmd returns the task render subcommand
func RenderCmd() *cobra.Command {
	return taskCommand("render [id]", "Render a task description to HTML", 0, runRender)
}

func runRender(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	s, err := openCard(cmd, args, formatter, nil)
	if err != nil {
		return err
	}
	defer s.close()

	result := s.card.Description()
	out := RenderOutput{
		TaskID: s.card.Task().ID,
		HTML:   result.HTML,
		Counts: result.Counts,
	}

	return formatter.Success(out, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, out.HTML)
		return err
	})
}
