package job

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/etapa/internal/models"
)

// Job-related errors
var (
	// Validation errors
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = fmt.Errorf("title cannot exceed %d characters", models.MaxJobTitleLength)
	ErrInvalidJobID = errors.New("invalid job ID")
	ErrInvalidOrgID = errors.New("invalid organization ID")

	// Business logic errors
	ErrJobNotFound = errors.New("job not found")
	ErrJobClosed   = errors.New("job is closed")
)
