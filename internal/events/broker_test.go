package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startBroker(t *testing.T, broadcastBuffer, clientBuffer int) *Broker {
	t.Helper()
	b := NewBroker(broadcastBuffer, clientBuffer)
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = b.Start(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return b
}

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.C:
		require.True(t, ok, "subscription closed unexpectedly")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestBroker_DeliversWithIncreasingSequence(t *testing.T) {
	b := startBroker(t, 10, 10)
	sub := b.Subscribe(Filter{})

	require.NoError(t, b.SendEvent(Event{Type: EventApplicationCreated, JobID: "j1"}))
	require.NoError(t, b.SendEvent(Event{Type: EventStageChanged, JobID: "j1"}))

	first := receive(t, sub)
	second := receive(t, sub)

	assert.Equal(t, EventApplicationCreated, first.Type)
	assert.Equal(t, EventStageChanged, second.Type)
	assert.Greater(t, second.SequenceID, first.SequenceID)
}

func TestBroker_FiltersByJob(t *testing.T) {
	b := startBroker(t, 10, 10)
	jobA := b.Subscribe(Filter{OrgID: "o1", JobID: "a"})
	everything := b.Subscribe(Filter{})

	require.NoError(t, b.SendEvent(Event{Type: EventStageChanged, OrgID: "o1", JobID: "b"}))
	require.NoError(t, b.SendEvent(Event{Type: EventStageChanged, OrgID: "o1", JobID: "a"}))

	got := receive(t, jobA)
	assert.Equal(t, "a", string(got.JobID))

	assert.Equal(t, "b", string(receive(t, everything).JobID))
	assert.Equal(t, "a", string(receive(t, everything).JobID))

	select {
	case ev := <-jobA.C:
		t.Fatalf("unexpected event for job a subscriber: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		event  Event
		want   bool
	}{
		{"empty filter matches all", Filter{}, Event{OrgID: "o1", JobID: "j1"}, true},
		{"same job", Filter{OrgID: "o1", JobID: "j1"}, Event{OrgID: "o1", JobID: "j1"}, true},
		{"other job", Filter{OrgID: "o1", JobID: "j1"}, Event{OrgID: "o1", JobID: "j2"}, false},
		{"org-wide event reaches job subscriber", Filter{OrgID: "o1", JobID: "j1"}, Event{OrgID: "o1"}, true},
		{"other org", Filter{OrgID: "o1"}, Event{OrgID: "o2", JobID: "j1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.event))
		})
	}
}

func TestBroker_SlowSubscriberDropsEvents(t *testing.T) {
	b := NewBroker(10, 1)
	sub := b.Subscribe(Filter{})

	// Drive dispatch directly so the test controls timing
	b.dispatch(Event{Type: EventStageChanged})
	b.dispatch(Event{Type: EventStageChanged})

	snap := b.Metrics().Snapshot()
	assert.Equal(t, int64(1), snap.EventsSent)
	assert.Equal(t, int64(1), snap.EventsDropped)
	assert.Len(t, sub.C, 1)
}

func TestBroker_SendEventWhenFull(t *testing.T) {
	b := NewBroker(1, 1)

	require.NoError(t, b.SendEvent(Event{Type: EventStageChanged}))
	assert.ErrorIs(t, b.SendEvent(Event{Type: EventStageChanged}), ErrBrokerFull)
}

func TestBroker_CloseEndsSubscriptions(t *testing.T) {
	b := NewBroker(10, 10)
	sub := b.Subscribe(Filter{})
	assert.Equal(t, int32(1), b.Metrics().Snapshot().Subscribers)

	b.Close()
	b.Close() // second close is a no-op

	_, ok := <-sub.C
	assert.False(t, ok)
	assert.ErrorIs(t, b.SendEvent(Event{}), ErrBrokerClosed)
	assert.Equal(t, int32(0), b.Metrics().Snapshot().Subscribers)

	late := b.Subscribe(Filter{})
	_, ok = <-late.C
	assert.False(t, ok)
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := NewBroker(10, 10)
	sub := b.Subscribe(Filter{})
	b.Unsubscribe(sub)
	b.Unsubscribe(sub)

	_, ok := <-sub.C
	assert.False(t, ok)
	assert.Equal(t, int32(0), b.Metrics().Snapshot().Subscribers)
}

func TestMetrics_ConcurrentIncrements(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncEventsReceived()
			m.IncEventsSent()
			m.IncEventsDropped()
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	assert.Equal(t, int64(50), snap.EventsReceived)
	assert.Equal(t, int64(50), snap.EventsSent)
	assert.Equal(t, int64(50), snap.EventsDropped)
	assert.NotEmpty(t, snap.Uptime)
}
