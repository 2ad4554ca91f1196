package models

import "errors"

// Domain-wide errors shared by the repository and service layers
var (
	// ErrNotFound indicates the requested row does not exist (or is not visible to the organization)
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a write violated a uniqueness constraint
	ErrConflict = errors.New("conflict")
)
