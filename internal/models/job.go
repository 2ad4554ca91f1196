package models

import (
	"time"

	"github.com/thenoetrevino/etapa/internal/types"
)

// JobStatus is the publication state of a job posting
type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
)

// Valid reports whether s is a known job status
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusPublished, JobStatusClosed:
		return true
	}
	return false
}

// Job represents a job posting owned by an organization
type Job struct {
	ID          types.JobID `json:"id"`
	OrgID       types.OrgID `json:"orgId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Status      JobStatus   `json:"status"`
	PublishedAt *time.Time  `json:"publishedAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// IsPublic reports whether the job is visible on the careers page
func (j *Job) IsPublic() bool {
	return j.Status == JobStatusPublished
}

// AcceptsApplications reports whether new applications may be submitted
func (j *Job) AcceptsApplications() bool {
	return j.Status != JobStatusClosed
}

// GetID returns the job ID as a string
func (j *Job) GetID() string { return string(j.ID) }
