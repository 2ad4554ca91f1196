package pipeline

import "errors"

// Pipeline-related errors
var (
	// Validation errors
	ErrInvalidJobID = errors.New("invalid job ID")
	ErrInvalidOrgID = errors.New("invalid organization ID")

	// Business logic errors
	ErrNoColumns    = errors.New("pipeline has no columns")
	ErrUnknownStage = errors.New("stage does not exist in this pipeline")
)
