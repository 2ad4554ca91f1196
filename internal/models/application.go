package models

import (
	"time"

	"github.com/thenoetrevino/etapa/internal/types"
)

// JobCandidate is the membership of one candidate in one job's pipeline.
// ColumnID is the canonical stage; Stage carries the column title as of the
// last write so listings don't need a join to render a label.
type JobCandidate struct {
	ID          types.ApplicationID `json:"id"`
	JobID       types.JobID         `json:"jobId"`
	CandidateID types.CandidateID   `json:"candidateId"`
	OrgID       types.OrgID         `json:"orgId"`
	ColumnID    types.ColumnID      `json:"columnId"`
	Stage       string              `json:"stage"`
	Notes       string              `json:"notes"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ApplicationSummary is a membership joined with the candidate's display fields,
// used when rendering a job's board
type ApplicationSummary struct {
	JobCandidate
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	Position       int    `json:"-"`
}

// GetID returns the membership ID as a string
func (jc *JobCandidate) GetID() string { return string(jc.ID) }
