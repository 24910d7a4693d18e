// Package notify collects user-facing notifications produced by board
// operations.
package notify

import (
	"sync"

	"github.com/thenoetrevino/taskcard/internal/models"
)

// Sink receives notifications
type Sink interface {
	Add(note models.Notification)
}

// Store is an in-memory Sink. It keeps notifications in arrival order until
// they are cleared.
type Store struct {
	mu    sync.Mutex
	notes []models.Notification
}

// NewStore creates a Store with no notifications.
func NewStore() *Store {
	return &Store{notes: []models.Notification{}}
}

// Add appends a notification.
func (s *Store) Add(note models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, note)
}

// Clear removes all notifications.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = []models.Notification{}
}

// ClearType removes all notifications of a specific type.
func (s *Store) ClearType(noteType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := []models.Notification{}
	for _, n := range s.notes {
		if n.Type != noteType {
			filtered = append(filtered, n)
		}
	}
	s.notes = filtered
}

// All returns a copy of the current notifications.
func (s *Store) All() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, len(s.notes))
	copy(out, s.notes)
	return out
}

// Drain returns the current notifications and clears the store.
func (s *Store) Drain() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.notes
	s.notes = []models.Notification{}
	return out
}

// HasAny returns true if there are any notifications.
func (s *Store) HasAny() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes) > 0
}

// Forward adds every alert to sink, in order. A nil sink drops them.
func Forward(sink Sink, alerts []models.Notification) {
	if sink == nil {
		return
	}
	for _, note := range alerts {
		sink.Add(note)
	}
}
