package pipeline

import (
	"slices"

	"github.com/thenoetrevino/etapa/internal/models"
)

// Config controls how new pipelines are materialized
type Config struct {
	// Stages are the column titles, in order, created for a pipeline that has none
	Stages []string
	// PositionBase is the position of the first column (0 or 1)
	PositionBase int
}

// DefaultConfig returns the five-stage default pipeline starting at position 0
func DefaultConfig() Config {
	return Config{
		Stages:       slices.Clone(models.DefaultStages),
		PositionBase: 0,
	}
}

// Validate checks the stage list and position base
func (c Config) Validate() error {
	return models.ValidateStages(c.Stages, c.PositionBase)
}
