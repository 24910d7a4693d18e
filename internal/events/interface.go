package events

// Publisher sends events to whoever is listening.
// Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(event Event) error
}

// Subscriber hands out event streams
type Subscriber interface {
	// Subscribe returns a channel of events and a function that cancels
	// the subscription and closes the channel.
	Subscribe() (<-chan Event, func())
}

// Compile-time verification that *Bus implements both sides
var (
	_ Publisher  = (*Bus)(nil)
	_ Subscriber = (*Bus)(nil)
)
