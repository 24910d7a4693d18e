package task

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskcard/internal/cli"
	"github.com/thenoetrevino/taskcard/internal/cli/styles"
	"github.com/thenoetrevino/taskcard/internal/lang"
	"github.com/thenoetrevino/taskcard/internal/markup"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/taskview"
)

// ShowOutput is the JSON form of a task card
type ShowOutput struct {
	Task      *models.Task      `json:"task"`
	Board     *models.Board     `json:"board"`
	Column    string            `json:"column"`
	Counts    markup.Counts     `json:"counts"`
	Fraction  float64           `json:"fraction"`
	TextColor string            `json:"text_color"`
	Due       taskview.DueState `json:"due"`
}

// GetID implements the quiet output contract
func (s ShowOutput) GetID() int { return int(s.Task.ID) }

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	return taskCommand("show [id]", "Show a task card", 0, runShow)
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	s, err := openCard(cmd, args, formatter, nil)
	if err != nil {
		return err
	}
	defer s.close()

	out := showOutput(s.card, time.Now())
	return formatter.Success(out, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, renderCard(out, s.cli.App.Strings))
		return err
	})
}

func showOutput(card *taskview.Card, now time.Time) ShowOutput {
	result := card.Description()
	task := card.Task()
	board := card.ActiveBoard()

	column := ""
	for _, col := range board.Columns {
		if col.ID == task.ColumnID {
			column = col.Name
			break
		}
	}

	return ShowOutput{
		Task:      task,
		Board:     board,
		Column:    column,
		Counts:    result.Counts,
		Fraction:  card.PercentComplete(),
		TextColor: card.TextColor(),
		Due:       card.DueState(now),
	}
}

func renderCard(out ShowOutput, strs lang.Table) string {
	var content strings.Builder

	header := styles.TitleStyle.
		Foreground(lipgloss.Color(out.TextColor)).
		Background(lipgloss.Color(out.Task.Color)).
		Padding(0, 1).
		Render(out.Task.Title)
	content.WriteString(header)
	content.WriteString("  ")
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("#%d", out.Task.ID)))
	content.WriteString("\n\n")

	switch {
	case out.Due.Overdue:
		content.WriteString(styles.OverdueStyle.Render(strs.Get(lang.TaskOverdue)))
		content.WriteString("\n\n")
	case out.Due.NearlyDue:
		content.WriteString(styles.WarningStyle.Render(strs.Get(lang.TaskNearlyDue)))
		content.WriteString("\n\n")
	}

	fmt.Fprintf(&content, "%s %s  %s %s\n",
		styles.LabelStyle.Render("Board:"),
		styles.ValueStyle.Render(out.Board.Name),
		styles.LabelStyle.Render("Column:"),
		styles.ValueStyle.Render(out.Column),
	)

	if out.Task.DueDate != "" {
		fmt.Fprintf(&content, "%s %s\n",
			styles.LabelStyle.Render("Due:"),
			styles.ValueStyle.Render(out.Task.DueDate),
		)
	}

	if out.Counts.Total > 0 {
		fmt.Fprintf(&content, "%s %s\n",
			styles.LabelStyle.Render("Progress:"),
			styles.ValueStyle.Render(progressBar(out.Fraction, 20)+
				fmt.Sprintf(" %d/%d", out.Counts.Checked, out.Counts.Total)),
		)
	}

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(cli.PreviewMarkdown(out.Task.Description, strs.Get(lang.NoDescription), styles.CardWidth-6))

	return styles.CardStyle.Render(content.String())
}

func progressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
