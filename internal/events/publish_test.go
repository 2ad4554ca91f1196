package events

import (
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/etapa/internal/types"
)

// mockRetryPublisher fails a configurable number of sends before succeeding
type mockRetryPublisher struct {
	sendAttempts int
	failUntil    int // Fail until this attempt number (0-indexed)
	failWith     error
	lastEvent    Event
}

func (m *mockRetryPublisher) SendEvent(event Event) error {
	m.lastEvent = event
	currentAttempt := m.sendAttempts
	m.sendAttempts++

	if currentAttempt < m.failUntil {
		if m.failWith != nil {
			return m.failWith
		}
		return errors.New("simulated send failure")
	}
	return nil
}

func TestPublishWithRetry_Success(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 0}
	event := Event{
		Type:  EventStageChanged,
		JobID: types.JobID("job-1"),
	}

	err := PublishWithRetry(mock, event, 3)
	if err != nil {
		t.Errorf("Expected success, got error: %v", err)
	}

	if mock.sendAttempts != 1 {
		t.Errorf("Expected 1 attempt, got %d", mock.sendAttempts)
	}

	if mock.lastEvent.JobID != "job-1" {
		t.Errorf("Expected event job ID job-1, got %s", mock.lastEvent.JobID)
	}
	if mock.lastEvent.Timestamp.IsZero() {
		t.Error("Expected timestamp to be filled in")
	}
}

func TestPublishWithRetry_SuccessAfterRetries(t *testing.T) {
	// Fail first 2 attempts, succeed on 3rd
	mock := &mockRetryPublisher{failUntil: 2}
	event := Event{Type: EventApplicationCreated, JobID: "job-2"}

	err := PublishWithRetry(mock, event, 3)
	if err != nil {
		t.Errorf("Expected success after retries, got error: %v", err)
	}

	if mock.sendAttempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", mock.sendAttempts)
	}
}

func TestPublishWithRetry_FailureAfterAllRetries(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 999}
	event := Event{Type: EventApplicationCreated, JobID: "job-3"}

	err := PublishWithRetry(mock, event, 3)
	if err == nil {
		t.Fatal("Expected error after all retries failed, got nil")
	}

	if mock.sendAttempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", mock.sendAttempts)
	}

	expectedErr := "simulated send failure"
	if err.Error() != expectedErr {
		t.Errorf("Expected error '%s', got '%s'", expectedErr, err.Error())
	}
}

func TestPublishWithRetry_ClosedBrokerStopsEarly(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 999, failWith: ErrBrokerClosed}

	err := PublishWithRetry(mock, Event{Type: EventJobPublished}, 3)
	if !errors.Is(err, ErrBrokerClosed) {
		t.Fatalf("Expected ErrBrokerClosed, got %v", err)
	}
	if mock.sendAttempts != 1 {
		t.Errorf("Expected 1 attempt against a closed broker, got %d", mock.sendAttempts)
	}
}

func TestPublishWithRetry_NilClient(t *testing.T) {
	err := PublishWithRetry(nil, Event{Type: EventStageChanged}, 3)
	if err != nil {
		t.Errorf("Expected nil error for nil client, got: %v", err)
	}
}

func TestPublishWithRetry_ExponentialBackoff(t *testing.T) {
	// Fail first 2 attempts to trigger backoff
	mock := &mockRetryPublisher{failUntil: 2}

	start := time.Now()
	err := PublishWithRetry(mock, Event{Type: EventStageChanged}, 3)
	duration := time.Since(start)

	if err != nil {
		t.Errorf("Expected success after retries, got error: %v", err)
	}

	// First retry: 50ms, Second retry: 100ms = 150ms minimum
	minDuration := 150 * time.Millisecond
	maxDuration := 500 * time.Millisecond

	if duration < minDuration {
		t.Errorf("Expected at least %v delay for retries, got %v", minDuration, duration)
	}
	if duration > maxDuration {
		t.Errorf("Expected delay under %v, got %v", maxDuration, duration)
	}
}

func TestPublishWithRetry_ZeroRetries(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 999}

	err := PublishWithRetry(mock, Event{Type: EventStageChanged}, 0)
	if err != nil {
		t.Errorf("Expected nil error with 0 retries (no attempts), got: %v", err)
	}
	if mock.sendAttempts != 0 {
		t.Errorf("Expected 0 attempts with maxRetries=0, got %d", mock.sendAttempts)
	}
}
