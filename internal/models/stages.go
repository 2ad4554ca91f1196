package models

import (
	"errors"
	"fmt"
	"strings"
)

// Stage configuration errors
var (
	ErrNoStages            = errors.New("pipeline must have at least one stage")
	ErrEmptyStageTitle     = errors.New("stage title cannot be empty")
	ErrStageTitleTooLong   = fmt.Errorf("stage title cannot exceed %d characters", MaxStageTitleLength)
	ErrDuplicateStage      = errors.New("stage titles must be unique")
	ErrInvalidPositionBase = errors.New("position base must be 0 or 1")
)

// ValidateStages checks an ordered stage list and position base before it is
// used to materialize pipelines. Titles are compared case-insensitively,
// matching the uniqueness rule the store enforces.
func ValidateStages(stages []string, base int) error {
	if len(stages) == 0 {
		return ErrNoStages
	}
	if base != 0 && base != 1 {
		return ErrInvalidPositionBase
	}

	seen := make(map[string]struct{}, len(stages))
	for _, title := range stages {
		trimmed := strings.TrimSpace(title)
		if trimmed == "" {
			return ErrEmptyStageTitle
		}
		if len(trimmed) > MaxStageTitleLength {
			return fmt.Errorf("%w: %q", ErrStageTitleTooLong, trimmed)
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateStage, trimmed)
		}
		seen[key] = struct{}{}
	}
	return nil
}
