package models

import (
	"time"

	"github.com/thenoetrevino/etapa/internal/types"
)

// PipelineColumn is one named, ordered stage of a hiring pipeline (e.g. "Applied", "Interview").
// Columns belong to a PipelineScope and are ordered by Position, which is dense and
// gapless within the scope starting at the configured base index.
type PipelineColumn struct {
	ID        types.ColumnID `json:"id"`
	OrgID     types.OrgID    `json:"orgId"`
	JobID     *types.JobID   `json:"jobId"` // nil for the legacy organization-wide pipeline
	Title     string         `json:"title"`
	Position  int            `json:"position"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// PipelineScope identifies who owns a set of pipeline columns.
// A scope with a JobID is a per-job pipeline; without one it is the
// organization-wide pipeline that older jobs were placed into.
type PipelineScope struct {
	OrgID types.OrgID
	JobID *types.JobID
}

// JobScope returns the scope of a per-job pipeline
func JobScope(orgID types.OrgID, jobID types.JobID) PipelineScope {
	return PipelineScope{OrgID: orgID, JobID: &jobID}
}

// OrgScope returns the scope of the organization-wide pipeline
func OrgScope(orgID types.OrgID) PipelineScope {
	return PipelineScope{OrgID: orgID}
}

// IsJobScoped reports whether the scope belongs to a single job
func (s PipelineScope) IsJobScoped() bool {
	return s.JobID != nil
}

// JobIDString returns the job ID or "" for the organization-wide scope
func (s PipelineScope) JobIDString() string {
	if s.JobID == nil {
		return ""
	}
	return string(*s.JobID)
}

// Contains reports whether the column belongs to this scope
func (s PipelineScope) Contains(c *PipelineColumn) bool {
	if c == nil || c.OrgID != s.OrgID {
		return false
	}
	if s.JobID == nil || c.JobID == nil {
		return s.JobID == nil && c.JobID == nil
	}
	return *s.JobID == *c.JobID
}

// GetID returns the column ID as a string
func (c *PipelineColumn) GetID() string { return string(c.ID) }
