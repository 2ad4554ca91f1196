package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ErrBrokerFull is returned when the broadcast queue cannot accept another event
var ErrBrokerFull = errors.New("broadcast channel full")

// ErrBrokerClosed is returned when publishing to a broker that has shut down
var ErrBrokerClosed = errors.New("broker closed")

// Subscription is a live feed of events matching a filter.
// Events arrive on C until the subscription is cancelled or the broker closes.
type Subscription struct {
	C      <-chan Event
	send   chan Event
	filter Filter
	once   sync.Once
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.send) })
}

// Broker fans events out to in-process subscribers.
// Publishing never blocks: a full broadcast queue rejects the event and
// a slow subscriber misses events instead of stalling the others.
type Broker struct {
	broadcast        chan Event
	subs             map[*Subscription]struct{}
	mu               sync.RWMutex
	metrics          *Metrics
	sequenceCounter  atomic.Int64
	clientBufferSize int
	closed           atomic.Bool
	done             chan struct{}
	closeOnce        sync.Once
}

// NewBroker creates a broker with the given queue sizes
func NewBroker(broadcastBuffer, clientBuffer int) *Broker {
	if broadcastBuffer <= 0 {
		broadcastBuffer = 100
	}
	if clientBuffer <= 0 {
		clientBuffer = 10
	}
	return &Broker{
		broadcast:        make(chan Event, broadcastBuffer),
		subs:             make(map[*Subscription]struct{}),
		metrics:          NewMetrics(),
		clientBufferSize: clientBuffer,
		done:             make(chan struct{}),
	}
}

// Metrics returns the broker's counters
func (b *Broker) Metrics() *Metrics {
	return b.metrics
}

// Start runs the broadcast loop until ctx is cancelled or Close is called
func (b *Broker) Start(ctx context.Context) error {
	slog.Debug("event broker starting")
	defer b.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-b.done:
			return nil
		case event := <-b.broadcast:
			b.dispatch(event)
		}
	}
}

// dispatch stamps the event with the next sequence number and delivers it
func (b *Broker) dispatch(event Event) {
	event.SequenceID = b.sequenceCounter.Add(1)

	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		if !sub.filter.Matches(event) {
			continue
		}
		// Non-blocking send - if subscriber is slow, skip
		select {
		case sub.send <- event:
			b.metrics.IncEventsSent()
		default:
			b.metrics.IncEventsDropped()
			slog.Warn("subscriber queue full, event dropped",
				"event_type", event.Type,
				"job_id", event.JobID)
		}
	}
}

// SendEvent queues an event for broadcast (non-blocking)
func (b *Broker) SendEvent(event Event) error {
	if b.closed.Load() {
		return ErrBrokerClosed
	}
	select {
	case b.broadcast <- event:
		b.metrics.IncEventsReceived()
		return nil
	default:
		return ErrBrokerFull
	}
}

// Subscribe registers a new subscriber
func (b *Broker) Subscribe(filter Filter) *Subscription {
	ch := make(chan Event, b.clientBufferSize)
	sub := &Subscription{C: ch, send: ch, filter: filter}

	b.mu.Lock()
	if b.closed.Load() {
		b.mu.Unlock()
		sub.close()
		return sub
	}
	b.subs[sub] = struct{}{}
	count := len(b.subs)
	b.mu.Unlock()

	b.metrics.SetSubscribers(int32(count))
	slog.Debug("subscriber added", "org_id", filter.OrgID, "job_id", filter.JobID, "subscribers", count)
	return sub
}

// Unsubscribe removes a subscriber and closes its channel
func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	count := len(b.subs)
	b.mu.Unlock()

	sub.close()
	b.metrics.SetSubscribers(int32(count))
}

// Close stops the broker and closes every subscription
func (b *Broker) Close() {
	b.closeOnce.Do(func() {
		b.closed.Store(true)
		close(b.done)

		b.mu.Lock()
		for sub := range b.subs {
			sub.close()
		}
		b.subs = make(map[*Subscription]struct{})
		b.mu.Unlock()

		b.metrics.SetSubscribers(0)
		slog.Debug("event broker stopped")
	})
}
