package application

import "errors"

// Application-related errors
var (
	// Validation errors
	ErrInvalidApplication   = errors.New("invalid application")
	ErrInvalidApplicationID = errors.New("invalid application ID")
	ErrInvalidJobID         = errors.New("invalid job ID")
	ErrInvalidOrgID         = errors.New("invalid organization ID")
	ErrInvalidMove          = errors.New("move requires exactly one of columnId or stage")

	// Business logic errors
	ErrJobNotFound         = errors.New("job not found")
	ErrJobClosed           = errors.New("job is not accepting applications")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("candidate has already applied to this job")
)
