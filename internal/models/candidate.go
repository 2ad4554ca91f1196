package models

import (
	"time"

	"github.com/thenoetrevino/etapa/internal/types"
)

// Candidate is a person known to an organization. Email is unique per organization
// and stored lower-cased.
type Candidate struct {
	ID        types.CandidateID `json:"id"`
	OrgID     types.OrgID       `json:"orgId"`
	Email     string            `json:"email"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Phone     string            `json:"phone,omitempty"`
	ResumeURL string            `json:"resumeUrl,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// FullName returns "First Last", falling back to the email address
func (c *Candidate) FullName() string {
	switch {
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	case c.LastName != "":
		return c.LastName
	}
	return c.Email
}
