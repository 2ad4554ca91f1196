package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID types give each opaque identifier its own name so a job ID can't be passed
// where an organization ID is expected. All of them are UUID strings on the wire.

// OrgID identifies the organization (tenant) that owns jobs, candidates and pipelines
type OrgID string

// JobID identifies a job posting
type JobID string

// CandidateID identifies a candidate within an organization
type CandidateID string

// ColumnID identifies a pipeline column (stage)
type ColumnID string

// ApplicationID identifies a job-candidate membership record
type ApplicationID string

// NewOrgID generates a fresh organization ID
func NewOrgID() OrgID { return OrgID(uuid.NewString()) }

// NewJobID generates a fresh job ID
func NewJobID() JobID { return JobID(uuid.NewString()) }

// NewCandidateID generates a fresh candidate ID
func NewCandidateID() CandidateID { return CandidateID(uuid.NewString()) }

// NewColumnID generates a fresh column ID
func NewColumnID() ColumnID { return ColumnID(uuid.NewString()) }

// NewApplicationID generates a fresh application ID
func NewApplicationID() ApplicationID { return ApplicationID(uuid.NewString()) }

// IsBlank reports whether an identifier is empty after trimming whitespace.
// Identifiers arrive as opaque strings from the calling layer, so blank is the
// only shape that is rejected outright.
func IsBlank[T ~string](id T) bool {
	return strings.TrimSpace(string(id)) == ""
}

// ParseUUID validates that s is a UUID and returns it in canonical form
func ParseUUID(s string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid id %q: %w", s, err)
	}
	return u.String(), nil
}

func (id OrgID) String() string         { return string(id) }
func (id JobID) String() string         { return string(id) }
func (id CandidateID) String() string   { return string(id) }
func (id ColumnID) String() string      { return string(id) }
func (id ApplicationID) String() string { return string(id) }
