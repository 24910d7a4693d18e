package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thenoetrevino/taskcard/internal/markup"
	"github.com/thenoetrevino/taskcard/internal/menu"
	"github.com/thenoetrevino/taskcard/internal/models"
	"github.com/thenoetrevino/taskcard/internal/notify"
	"github.com/thenoetrevino/taskcard/internal/taskview"
	"github.com/thenoetrevino/taskcard/internal/types"
)

type descriptionResponse struct {
	TaskID    types.TaskID      `json:"task_id"`
	HTML      string            `json:"html"`
	Counts    markup.Counts     `json:"counts"`
	TextColor string            `json:"text_color"`
	Due       taskview.DueState `json:"due"`
}

type progressResponse struct {
	TaskID   types.TaskID  `json:"task_id"`
	Fraction float64       `json:"fraction"`
	Style    string        `json:"style"`
	Title    string        `json:"title"`
	Counts   markup.Counts `json:"counts"`
}

type entryResponse struct {
	Kind     string        `json:"kind"`
	Markup   string        `json:"markup"`
	Disabled bool          `json:"disabled"`
	SelectID string        `json:"select_id,omitempty"`
	Options  []menu.Option `json:"options,omitempty"`
}

type actionResponse struct {
	Task          *models.Task          `json:"task"`
	ActiveBoardID types.BoardID         `json:"active_board_id"`
	Notifications []models.Notification `json:"notifications"`
}

type columnRequest struct {
	ColumnID types.ColumnID `json:"column_id"`
}

type boardRequest struct {
	BoardID types.BoardID `json:"board_id"`
}

// cardFor loads the card named by the :id path parameter. Notifications of
// the request are collected in notes.
func (s *Server) cardFor(c echo.Context, notes notify.Sink) (*taskview.Card, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "task id must be a positive integer")
	}

	card, err := s.app.CardWithSink(c.Request().Context(), types.TaskID(id), notes)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return card, nil
}

func (s *Server) getDescription(c echo.Context) error {
	card, err := s.cardFor(c, nil)
	if err != nil {
		return err
	}

	result := card.Description()
	s.metrics.Renders.Add(1)

	if c.QueryParam("format") == "html" {
		return c.HTML(http.StatusOK, result.HTML)
	}

	return c.JSON(http.StatusOK, descriptionResponse{
		TaskID:    card.Task().ID,
		HTML:      result.HTML,
		Counts:    result.Counts,
		TextColor: card.TextColor(),
		Due:       card.DueState(time.Now()),
	})
}

func (s *Server) getProgress(c echo.Context) error {
	card, err := s.cardFor(c, nil)
	if err != nil {
		return err
	}

	counts, _ := s.app.Ledger.Get(card.Task().ID)

	return c.JSON(http.StatusOK, progressResponse{
		TaskID:   card.Task().ID,
		Fraction: card.PercentComplete(),
		Style:    card.PercentStyle(),
		Title:    card.PercentTitle(),
		Counts:   counts,
	})
}

func (s *Server) getMenu(c echo.Context) error {
	card, err := s.cardFor(c, nil)
	if err != nil {
		return err
	}

	entries := card.Menu(c.Request().Context())
	out := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		resp := entryResponse{
			Kind:     entry.Kind().String(),
			Markup:   entry.Markup(),
			Disabled: entry.Disabled(),
		}
		if ctrl, ok := entry.(menu.Control); ok {
			resp.SelectID = ctrl.SelectID
			resp.Options = ctrl.Options
		}
		out = append(out, resp)
	}

	return c.JSON(http.StatusOK, out)
}

func (s *Server) postColumn(c echo.Context) error {
	var req columnRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return s.runAction(c, func(card *taskview.Card) error {
		return card.ChangeColumn(c.Request().Context(), req.ColumnID)
	})
}

func (s *Server) postCopy(c echo.Context) error {
	var req boardRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return s.runAction(c, func(card *taskview.Card) error {
		return card.CopyToBoard(c.Request().Context(), req.BoardID)
	})
}

func (s *Server) postMove(c echo.Context) error {
	var req boardRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return s.runAction(c, func(card *taskview.Card) error {
		return card.MoveToBoard(c.Request().Context(), req.BoardID)
	})
}

// runAction runs fn on the request's card and answers with the resulting
// task and the notifications it produced. A rejected action still answers
// 200; its error notifications say why.
func (s *Server) runAction(c echo.Context, fn func(*taskview.Card) error) error {
	notes := notify.NewStore()

	card, err := s.cardFor(c, notes)
	if err != nil {
		return err
	}

	s.metrics.Actions.Add(1)
	if err := fn(card); err != nil {
		s.metrics.ActionFailures.Add(1)
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, actionResponse{
		Task:          card.Task(),
		ActiveBoardID: card.ActiveBoard().ID,
		Notifications: notes.Drain(),
	})
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, models.ErrTaskNotFound),
		errors.Is(err, models.ErrBoardNotFound),
		errors.Is(err, models.ErrColumnNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrBoardHasNoColumns):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
}
