package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/etapa/internal/events"
	applicationservice "github.com/thenoetrevino/etapa/internal/services/application"
	jobservice "github.com/thenoetrevino/etapa/internal/services/job"
	pipelineservice "github.com/thenoetrevino/etapa/internal/services/pipeline"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db          *sql.DB
	eventClient events.EventPublisher
	logger      *slog.Logger

	// Service layer (business logic)
	PipelineService    pipelineservice.Service
	JobService         jobservice.Service
	ApplicationService applicationservice.Service
}

// New creates a new App with all services initialized.
// Without WithPipelineConfig the default five-stage pipeline is used.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		logger:   slog.Default(),
		pipeline: pipelineservice.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	pipelines := pipelineservice.NewService(db, cfg.eventClient, cfg.pipeline)
	return &App{
		db:                 db,
		eventClient:        cfg.eventClient,
		logger:             cfg.logger,
		PipelineService:    pipelines,
		JobService:         jobservice.NewService(db, pipelines, cfg.eventClient),
		ApplicationService: applicationservice.NewService(db, pipelines, cfg.eventClient),
	}
}

// DB returns the underlying database handle
func (a *App) DB() *sql.DB {
	return a.db
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
