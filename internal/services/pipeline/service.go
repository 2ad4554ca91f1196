package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/etapa/internal/converters"
	"github.com/thenoetrevino/etapa/internal/database"
	"github.com/thenoetrevino/etapa/internal/database/generated"
	"github.com/thenoetrevino/etapa/internal/events"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/types"
)

// publishRetries bounds how often a pipeline event is retried against a full broker
const publishRetries = 3

// Service defines the pipeline lifecycle operations.
// Every pipeline belongs to a models.PipelineScope; the job-scoped methods are
// shorthands for the per-job scope.
type Service interface {
	// Materialization
	EnsureDefaultPipeline(ctx context.Context, jobID types.JobID, orgID types.OrgID) ([]*models.PipelineColumn, error)
	EnsureScopePipeline(ctx context.Context, scope models.PipelineScope) ([]*models.PipelineColumn, error)

	// Read operations
	GetFirstColumnID(ctx context.Context, jobID types.JobID, orgID types.OrgID) (types.ColumnID, error)
	GetFirstColumn(ctx context.Context, scope models.PipelineScope) (*models.PipelineColumn, error)
	GetColumns(ctx context.Context, jobID types.JobID, orgID types.OrgID) ([]*models.PipelineColumn, error)
	ResolveColumn(ctx context.Context, scope models.PipelineScope, ref string) (*models.PipelineColumn, error)

	// Config returns the stage configuration new pipelines are built from
	Config() Config
}

// service implements Service interface using SQLC directly
type service struct {
	db          *sql.DB
	queries     generated.Querier
	eventClient events.EventPublisher
	cfg         Config
}

// NewService creates a new pipeline service.
// The config is copied so later changes by the caller have no effect.
func NewService(db *sql.DB, eventClient events.EventPublisher, cfg Config) Service {
	cfg.Stages = slices.Clone(cfg.Stages)
	return &service{
		db:          db,
		queries:     generated.New(db),
		eventClient: eventClient,
		cfg:         cfg,
	}
}

func (s *service) Config() Config {
	return Config{Stages: slices.Clone(s.cfg.Stages), PositionBase: s.cfg.PositionBase}
}

// EnsureDefaultPipeline guarantees the job's pipeline exists and returns it ordered by position
func (s *service) EnsureDefaultPipeline(ctx context.Context, jobID types.JobID, orgID types.OrgID) ([]*models.PipelineColumn, error) {
	if err := validateIDs(jobID, orgID); err != nil {
		return nil, err
	}
	return s.EnsureScopePipeline(ctx, models.JobScope(orgID, jobID))
}

// EnsureScopePipeline returns the scope's columns, creating the configured
// stages first when the scope has none. Existing columns are never changed.
//
// Two callers may both see an empty scope. Both try to insert, the store's
// unique indexes let exactly one transaction commit, and the loser re-reads
// the winner's columns.
func (s *service) EnsureScopePipeline(ctx context.Context, scope models.PipelineScope) ([]*models.PipelineColumn, error) {
	if types.IsBlank(scope.OrgID) {
		return nil, ErrInvalidOrgID
	}
	if scope.JobID != nil && types.IsBlank(*scope.JobID) {
		return nil, ErrInvalidJobID
	}

	columns, err := s.listColumns(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		return columns, nil
	}

	if err := s.materialize(ctx, scope); err != nil {
		if !errors.Is(err, models.ErrConflict) {
			slog.Error("failed to materialize pipeline",
				"org_id", scope.OrgID,
				"job_id", scope.JobIDString(),
				"error", err)
			return nil, err
		}
		slog.Debug("pipeline materialized concurrently, re-reading",
			"org_id", scope.OrgID,
			"job_id", scope.JobIDString())
	} else {
		slog.Debug("pipeline materialized",
			"org_id", scope.OrgID,
			"job_id", scope.JobIDString(),
			"stages", len(s.cfg.Stages))
		s.publishPipelineEvent(scope)
	}

	columns, err = s.listColumns(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	return columns, nil
}

// GetFirstColumnID returns the lowest-position column of the job's pipeline,
// materializing the pipeline if needed
func (s *service) GetFirstColumnID(ctx context.Context, jobID types.JobID, orgID types.OrgID) (types.ColumnID, error) {
	if err := validateIDs(jobID, orgID); err != nil {
		return "", err
	}
	column, err := s.GetFirstColumn(ctx, models.JobScope(orgID, jobID))
	if err != nil {
		return "", err
	}
	return column.ID, nil
}

// GetFirstColumn returns the lowest-position column of any scope, materializing it if needed
func (s *service) GetFirstColumn(ctx context.Context, scope models.PipelineScope) (*models.PipelineColumn, error) {
	if _, err := s.EnsureScopePipeline(ctx, scope); err != nil {
		return nil, err
	}

	row, err := s.queries.GetFirstPipelineColumn(ctx, generated.GetFirstPipelineColumnParams{
		OrgID: string(scope.OrgID),
		JobID: converters.ScopeJobParam(scope),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoColumns
		}
		return nil, fmt.Errorf("failed to get first column: %w", err)
	}
	return converters.ColumnToModel(row), nil
}

// GetColumns returns the job's columns ordered by position, materializing them if needed
func (s *service) GetColumns(ctx context.Context, jobID types.JobID, orgID types.OrgID) ([]*models.PipelineColumn, error) {
	return s.EnsureDefaultPipeline(ctx, jobID, orgID)
}

// ResolveColumn finds a column of the scope by ID or by case-insensitive title.
// Anything that is not a column of this scope is ErrUnknownStage.
func (s *service) ResolveColumn(ctx context.Context, scope models.PipelineScope, ref string) (*models.PipelineColumn, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrUnknownStage
	}
	if _, err := s.EnsureScopePipeline(ctx, scope); err != nil {
		return nil, err
	}

	row, err := s.queries.GetPipelineColumnByID(ctx, ref)
	switch {
	case err == nil:
		column := converters.ColumnToModel(row)
		if scope.Contains(column) {
			return column, nil
		}
		return nil, ErrUnknownStage
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("failed to get column %s: %w", ref, err)
	}

	row, err = s.queries.GetPipelineColumnByTitle(ctx, generated.GetPipelineColumnByTitleParams{
		OrgID: string(scope.OrgID),
		JobID: converters.ScopeJobParam(scope),
		Title: ref,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownStage
		}
		return nil, fmt.Errorf("failed to get column %q: %w", ref, err)
	}
	return converters.ColumnToModel(row), nil
}

// listColumns reads a scope's columns ordered by position
func (s *service) listColumns(ctx context.Context, scope models.PipelineScope) ([]*models.PipelineColumn, error) {
	rows, err := s.queries.ListPipelineColumns(ctx, generated.ListPipelineColumnsParams{
		OrgID: string(scope.OrgID),
		JobID: converters.ScopeJobParam(scope),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	return converters.ColumnsToModels(rows), nil
}

// materialize inserts every configured stage in one transaction.
// A uniqueness violation is reported as models.ErrConflict.
func (s *service) materialize(ctx context.Context, scope models.PipelineScope) error {
	now := time.Now().UTC()
	jobParam := converters.ScopeJobParam(scope)

	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := generated.New(tx)
		for i, title := range s.cfg.Stages {
			err := qtx.CreatePipelineColumn(ctx, generated.CreatePipelineColumnParams{
				ID:        string(types.NewColumnID()),
				OrgID:     string(scope.OrgID),
				JobID:     jobParam,
				Title:     strings.TrimSpace(title),
				Position:  int64(s.cfg.PositionBase + i),
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return database.Wrap(err, "failed to create column %q", title)
			}
		}
		return nil
	})
}

// publishPipelineEvent announces a newly materialized pipeline
func (s *service) publishPipelineEvent(scope models.PipelineScope) {
	_ = events.PublishWithRetry(s.eventClient, events.Event{
		Type:      events.EventPipelineMaterialized,
		OrgID:     scope.OrgID,
		JobID:     types.JobID(scope.JobIDString()),
		Timestamp: time.Now().UTC(),
	}, publishRetries)
}

func validateIDs(jobID types.JobID, orgID types.OrgID) error {
	if types.IsBlank(jobID) {
		return ErrInvalidJobID
	}
	if types.IsBlank(orgID) {
		return ErrInvalidOrgID
	}
	return nil
}
