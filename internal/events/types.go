package events

import (
	"time"

	"github.com/thenoetrevino/taskcard/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventBoardsUpdated tells listeners to reload their boards after a
	// task was copied or moved to another board. It carries no payload.
	EventBoardsUpdated EventType = "boards_updated"
	// EventActiveBoardChanged is sent when a column change returned a
	// refreshed copy of the active board.
	EventActiveBoardChanged EventType = "active_board_changed"
)

// Event is a change notification
type Event struct {
	Type       EventType
	BoardID    types.BoardID // 0 when the event concerns every board
	Timestamp  time.Time
	SequenceID int64 // Monotonically increasing per bus
}
