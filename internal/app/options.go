package app

import (
	"log/slog"

	"github.com/thenoetrevino/etapa/internal/events"
	"github.com/thenoetrevino/etapa/internal/services/pipeline"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	pipeline    pipeline.Config
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithPipelineConfig sets the stages new pipelines are created with
func WithPipelineConfig(pc pipeline.Config) Option {
	return func(cfg *appConfig) {
		cfg.pipeline = pc
	}
}
