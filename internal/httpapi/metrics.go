package httpapi

import (
	"sync/atomic"
	"time"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	Renders        atomic.Int64
	Actions        atomic.Int64
	ActionFailures atomic.Int64
	EventsObserved atomic.Int64
	StartTime      time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// MetricsSnapshot is a point-in-time copy of Metrics
type MetricsSnapshot struct {
	Renders        int64     `json:"renders"`
	Actions        int64     `json:"actions"`
	ActionFailures int64     `json:"action_failures"`
	EventsObserved int64     `json:"events_observed"`
	StartTime      time.Time `json:"start_time"`
	Uptime         string    `json:"uptime"`
}

// Snapshot returns the current values
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Renders:        m.Renders.Load(),
		Actions:        m.Actions.Load(),
		ActionFailures: m.ActionFailures.Load(),
		EventsObserved: m.EventsObserved.Load(),
		StartTime:      m.StartTime,
		Uptime:         time.Since(m.StartTime).Round(time.Second).String(),
	}
}
