package events

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrBusClosed is returned when publishing on a closed bus
var ErrBusClosed = errors.New("event bus closed")

// subscriberBuffer is the per-subscriber channel capacity. Events for a
// subscriber whose buffer is full are dropped rather than blocking the
// publisher.
const subscriberBuffer = 16

// Bus is an in-process fan-out of events to subscribers
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	seq    int64
	closed bool
	now    func() time.Time
}

// NewBus creates an open bus
func NewBus() *Bus {
	return &Bus{
		subs: make(map[int]chan Event),
		now:  time.Now,
	}
}

// Publish stamps the event and delivers it to every subscriber
func (b *Bus) Publish(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.seq++
	event.SequenceID = b.seq
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			slog.Warn("dropping event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}

	return nil
}

// Subscribe registers a new listener
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

// Close closes every subscriber channel. Later publishes fail with ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	return nil
}
