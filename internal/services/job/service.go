package job

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/etapa/internal/converters"
	"github.com/thenoetrevino/etapa/internal/database/generated"
	"github.com/thenoetrevino/etapa/internal/events"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/services/pipeline"
	"github.com/thenoetrevino/etapa/internal/types"
)

const publishRetries = 3

// Service defines all job-related business operations
type Service interface {
	// Read operations
	GetJob(ctx context.Context, orgID types.OrgID, jobID types.JobID) (*models.Job, error)
	ListJobs(ctx context.Context, orgID types.OrgID) ([]*models.Job, error)

	// Write operations
	CreateJob(ctx context.Context, req CreateJobRequest) (*models.Job, error)
	PublishJob(ctx context.Context, orgID types.OrgID, jobID types.JobID) (*models.Job, error)
	CloseJob(ctx context.Context, orgID types.OrgID, jobID types.JobID) (*models.Job, error)
}

// CreateJobRequest encapsulates data for creating a job.
// The title bound mirrors models.MaxJobTitleLength.
type CreateJobRequest struct {
	OrgID       types.OrgID `json:"-"`
	Title       string      `json:"title" validate:"required,max=200"`
	Description string      `json:"description"` // markdown
	Location    string      `json:"location"`
}

// service implements Service interface using SQLC directly
type service struct {
	db          *sql.DB
	queries     generated.Querier
	pipelines   pipeline.Service
	eventClient events.EventPublisher
}

// NewService creates a new job service
func NewService(db *sql.DB, pipelines pipeline.Service, eventClient events.EventPublisher) Service {
	return &service{
		db:          db,
		queries:     generated.New(db),
		pipelines:   pipelines,
		eventClient: eventClient,
	}
}

// GetJob retrieves a job visible to the organization
func (s *service) GetJob(ctx context.Context, orgID types.OrgID, jobID types.JobID) (*models.Job, error) {
	if err := validateIDs(orgID, jobID); err != nil {
		return nil, err
	}
	row, err := s.queries.GetJobForOrg(ctx, generated.GetJobForOrgParams{
		ID:    string(jobID),
		OrgID: string(orgID),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	return converters.JobToModel(row), nil
}

// ListJobs retrieves the organization's jobs, newest first
func (s *service) ListJobs(ctx context.Context, orgID types.OrgID) ([]*models.Job, error) {
	if types.IsBlank(orgID) {
		return nil, ErrInvalidOrgID
	}
	rows, err := s.queries.ListJobsByOrg(ctx, string(orgID))
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return converters.JobsToModels(rows), nil
}

// CreateJob creates a draft job
func (s *service) CreateJob(ctx context.Context, req CreateJobRequest) (*models.Job, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateCreateJob(req); err != nil {
		return nil, err
	}

	id := types.NewJobID()
	now := time.Now().UTC()
	err := s.queries.CreateJob(ctx, generated.CreateJobParams{
		ID:          string(id),
		OrgID:       string(req.OrgID),
		Title:       req.Title,
		Description: req.Description,
		Location:    strings.TrimSpace(req.Location),
		Status:      string(models.JobStatusDraft),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	slog.Debug("job created", "job_id", id, "org_id", req.OrgID)
	return s.GetJob(ctx, req.OrgID, id)
}

// PublishJob makes a job public. The job's pipeline is materialized first;
// if that fails the job keeps its current status. Publishing an already
// published job is a no-op.
func (s *service) PublishJob(ctx context.Context, orgID types.OrgID, jobID types.JobID) (*models.Job, error) {
	job, err := s.GetJob(ctx, orgID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == models.JobStatusClosed {
		return nil, ErrJobClosed
	}

	if _, err := s.pipelines.EnsureDefaultPipeline(ctx, jobID, orgID); err != nil {
		slog.Warn("publish aborted, pipeline unavailable", "job_id", jobID, "error", err)
		return nil, fmt.Errorf("failed to prepare pipeline: %w", err)
	}

	if job.Status == models.JobStatusPublished {
		return job, nil
	}

	now := time.Now().UTC()
	if err := s.setStatus(ctx, job, models.JobStatusPublished, &now, now); err != nil {
		return nil, err
	}

	s.publishJobEvent(events.EventJobPublished, orgID, jobID)
	return s.GetJob(ctx, orgID, jobID)
}

// CloseJob stops a job from accepting applications. Closing twice is a no-op.
func (s *service) CloseJob(ctx context.Context, orgID types.OrgID, jobID types.JobID) (*models.Job, error) {
	job, err := s.GetJob(ctx, orgID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == models.JobStatusClosed {
		return job, nil
	}

	if err := s.setStatus(ctx, job, models.JobStatusClosed, job.PublishedAt, time.Now().UTC()); err != nil {
		return nil, err
	}

	s.publishJobEvent(events.EventJobClosed, orgID, jobID)
	return s.GetJob(ctx, orgID, jobID)
}

func (s *service) setStatus(ctx context.Context, job *models.Job, status models.JobStatus, publishedAt *time.Time, now time.Time) error {
	n, err := s.queries.UpdateJobStatus(ctx, generated.UpdateJobStatusParams{
		Status:      string(status),
		PublishedAt: converters.PtrToNullTime(publishedAt),
		UpdatedAt:   now,
		ID:          string(job.ID),
		OrgID:       string(job.OrgID),
	})
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if n == 0 {
		return ErrJobNotFound
	}
	slog.Debug("job status changed", "job_id", job.ID, "from", job.Status, "to", status)
	return nil
}

func validateIDs(orgID types.OrgID, jobID types.JobID) error {
	if types.IsBlank(orgID) {
		return ErrInvalidOrgID
	}
	if types.IsBlank(jobID) {
		return ErrInvalidJobID
	}
	return nil
}

// publishJobEvent publishes a job lifecycle event
func (s *service) publishJobEvent(eventType events.EventType, orgID types.OrgID, jobID types.JobID) {
	_ = events.PublishWithRetry(s.eventClient, events.Event{
		Type:      eventType,
		OrgID:     orgID,
		JobID:     jobID,
		EntityID:  string(jobID),
		Timestamp: time.Now().UTC(),
	}, publishRetries)
}
