package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/etapa/internal/app"
	"github.com/thenoetrevino/etapa/internal/config"
	"github.com/thenoetrevino/etapa/internal/database"
	"github.com/thenoetrevino/etapa/internal/services/pipeline"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	owned  bool // App was opened here and must be closed here
}

// NewCLI opens the configured database and builds the service container.
// Commands run without an event broker; live updates only exist under `etapa serve`.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithPipelineConfig(PipelineConfig(cfg)))

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// PipelineConfig converts the pipeline section of the config file
func PipelineConfig(cfg *config.Config) pipeline.Config {
	return pipeline.Config{
		Stages:       cfg.Pipeline.DefaultStages,
		PositionBase: cfg.Pipeline.PositionBase,
	}
}
