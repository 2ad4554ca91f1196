package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks broker statistics using atomic operations for thread-safety
type Metrics struct {
	EventsReceived atomic.Int64
	EventsSent     atomic.Int64
	EventsDropped  atomic.Int64
	Subscribers    atomic.Int32
	StartTime      time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncEventsReceived increments the events received counter
func (m *Metrics) IncEventsReceived() {
	m.EventsReceived.Add(1)
}

// IncEventsSent increments the events sent counter
func (m *Metrics) IncEventsSent() {
	m.EventsSent.Add(1)
}

// IncEventsDropped increments the dropped events counter
func (m *Metrics) IncEventsDropped() {
	m.EventsDropped.Add(1)
}

// SetSubscribers sets the current subscriber count
func (m *Metrics) SetSubscribers(count int32) {
	m.Subscribers.Store(count)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	EventsReceived int64     `json:"eventsReceived"`
	EventsSent     int64     `json:"eventsSent"`
	EventsDropped  int64     `json:"eventsDropped"`
	Subscribers    int32     `json:"subscribers"`
	StartTime      time.Time `json:"startTime"`
	Uptime         string    `json:"uptime"`
}

// Snapshot returns a snapshot of current metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsReceived: m.EventsReceived.Load(),
		EventsSent:     m.EventsSent.Load(),
		EventsDropped:  m.EventsDropped.Load(),
		Subscribers:    m.Subscribers.Load(),
		StartTime:      m.StartTime,
		Uptime:         time.Since(m.StartTime).Round(time.Second).String(),
	}
}
