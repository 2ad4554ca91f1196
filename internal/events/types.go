package events

import (
	"time"

	"github.com/thenoetrevino/etapa/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventPipelineMaterialized EventType = "pipeline_materialized"
	EventApplicationCreated   EventType = "application_created"
	EventStageChanged         EventType = "stage_changed"
	EventJobPublished         EventType = "job_published"
	EventJobClosed            EventType = "job_closed"
	EventPing                 EventType = "ping"
)

// Event is a change notification for one job's pipeline
type Event struct {
	Type       EventType   `json:"type"`
	OrgID      types.OrgID `json:"orgId"`
	JobID      types.JobID `json:"jobId,omitempty"` // empty for organization-wide changes
	EntityID   string      `json:"entityId,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	SequenceID int64       `json:"sequenceId"` // assigned by the broker, monotonically increasing
}

// Filter selects which events a subscriber receives.
// Zero-valued fields match everything.
type Filter struct {
	OrgID types.OrgID
	JobID types.JobID
}

// Matches reports whether the event passes the filter.
// Organization-wide events (no job) reach every subscriber of that organization.
func (f Filter) Matches(e Event) bool {
	if f.OrgID != "" && e.OrgID != f.OrgID {
		return false
	}
	return f.JobID == "" || e.JobID == "" || e.JobID == f.JobID
}
