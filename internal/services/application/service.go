package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/etapa/internal/converters"
	"github.com/thenoetrevino/etapa/internal/database"
	"github.com/thenoetrevino/etapa/internal/database/generated"
	"github.com/thenoetrevino/etapa/internal/events"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/services/pipeline"
	"github.com/thenoetrevino/etapa/internal/types"
)

const publishRetries = 3

// Service defines candidate placement and movement through a job's pipeline
type Service interface {
	// Read operations
	GetApplication(ctx context.Context, id types.ApplicationID) (*models.JobCandidate, error)
	ListByJob(ctx context.Context, orgID types.OrgID, jobID types.JobID) ([]*models.ApplicationSummary, error)
	GetBoard(ctx context.Context, orgID types.OrgID, jobID types.JobID) (*Board, error)

	// Write operations
	Apply(ctx context.Context, jobID types.JobID, req ApplyRequest) (*ApplyResult, error)
	MoveJobCandidate(ctx context.Context, id types.ApplicationID, req MoveRequest) (*models.JobCandidate, error)
}

// ApplyRequest is a public application to a job
type ApplyRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=40"`
	ResumeURL string `json:"resumeUrl" validate:"omitempty,url,max=2048"`
	Notes     string `json:"notes" validate:"max=5000"`
}

// ApplyResult identifies the records an application produced
type ApplyResult struct {
	CandidateID   types.CandidateID   `json:"candidateId"`
	ApplicationID types.ApplicationID `json:"applicationId"`
}

// GetID returns the new membership's ID
func (r *ApplyResult) GetID() string { return string(r.ApplicationID) }

// MoveRequest names the destination stage by column ID or by title.
// OrgID, when set, restricts the move to that organization's applications.
type MoveRequest struct {
	OrgID    types.OrgID    `json:"-"`
	ColumnID types.ColumnID `json:"columnId"`
	Stage    string         `json:"stage"`
}

// Board is a job's pipeline with the applications placed in it
type Board struct {
	Columns      []*models.PipelineColumn     `json:"columns"`
	Applications []*models.ApplicationSummary `json:"applications"`
}

// service implements Service interface using SQLC directly
type service struct {
	db          *sql.DB
	queries     generated.Querier
	pipelines   pipeline.Service
	eventClient events.EventPublisher
}

// NewService creates a new application service
func NewService(db *sql.DB, pipelines pipeline.Service, eventClient events.EventPublisher) Service {
	return &service{
		db:          db,
		queries:     generated.New(db),
		pipelines:   pipelines,
		eventClient: eventClient,
	}
}

// GetApplication retrieves a membership record
func (s *service) GetApplication(ctx context.Context, id types.ApplicationID) (*models.JobCandidate, error) {
	if types.IsBlank(id) {
		return nil, ErrInvalidApplicationID
	}
	row, err := s.queries.GetJobCandidateByID(ctx, string(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application %s: %w", id, err)
	}
	return converters.JobCandidateToModel(row), nil
}

// ListByJob returns a job's applications ordered by stage position, then age
func (s *service) ListByJob(ctx context.Context, orgID types.OrgID, jobID types.JobID) ([]*models.ApplicationSummary, error) {
	if types.IsBlank(orgID) {
		return nil, ErrInvalidOrgID
	}
	if types.IsBlank(jobID) {
		return nil, ErrInvalidJobID
	}
	rows, err := s.queries.ListJobCandidatesByJob(ctx, generated.ListJobCandidatesByJobParams{
		JobID: string(jobID),
		OrgID: string(orgID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return converters.ApplicationRowsToSummaries(rows), nil
}

// GetBoard returns the job's columns (materializing them if needed) and its applications
func (s *service) GetBoard(ctx context.Context, orgID types.OrgID, jobID types.JobID) (*Board, error) {
	if _, err := s.jobForOrg(ctx, orgID, jobID); err != nil {
		return nil, err
	}

	columns, err := s.pipelines.GetColumns(ctx, jobID, orgID)
	if err != nil {
		return nil, err
	}
	applications, err := s.ListByJob(ctx, orgID, jobID)
	if err != nil {
		return nil, err
	}
	return &Board{Columns: columns, Applications: applications}, nil
}

// Apply records a candidate's application to a job and places it in the
// first column of the job's pipeline. The candidate is matched by email
// within the job's organization and created when new.
func (s *service) Apply(ctx context.Context, jobID types.JobID, req ApplyRequest) (*ApplyResult, error) {
	if types.IsBlank(jobID) {
		return nil, ErrInvalidJobID
	}
	req = normalizeApply(req)
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	jobRow, err := s.queries.GetJobByID(ctx, string(jobID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	job := converters.JobToModel(jobRow)
	if !job.AcceptsApplications() {
		return nil, ErrJobClosed
	}

	// Materializes the pipeline on first use; columns never change afterwards,
	// so the column stays valid for the transaction below
	first, err := s.pipelines.GetFirstColumn(ctx, models.JobScope(job.OrgID, job.ID))
	if err != nil {
		slog.Error("application rejected, no first column", "job_id", jobID, "error", err)
		return nil, err
	}

	var result ApplyResult
	err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := generated.New(tx)
		now := time.Now().UTC()

		candidateID, err := upsertCandidate(ctx, qtx, job.OrgID, req, now)
		if err != nil {
			return err
		}

		_, err = qtx.GetJobCandidateByJobAndCandidate(ctx, generated.GetJobCandidateByJobAndCandidateParams{
			JobID:       string(job.ID),
			CandidateID: string(candidateID),
		})
		switch {
		case err == nil:
			return ErrAlreadyApplied
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("failed to check existing application: %w", err)
		}

		applicationID := types.NewApplicationID()
		err = qtx.CreateJobCandidate(ctx, generated.CreateJobCandidateParams{
			ID:          string(applicationID),
			JobID:       string(job.ID),
			CandidateID: string(candidateID),
			OrgID:       string(job.OrgID),
			ColumnID:    string(first.ID),
			Stage:       first.Title,
			Notes:       req.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAlreadyApplied
			}
			return fmt.Errorf("failed to create application: %w", err)
		}

		result = ApplyResult{CandidateID: candidateID, ApplicationID: applicationID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("application created",
		"job_id", job.ID,
		"candidate_id", result.CandidateID,
		"column_id", first.ID)
	s.publishApplicationEvent(events.EventApplicationCreated, job.OrgID, job.ID, result.ApplicationID)

	return &result, nil
}

// upsertCandidate returns the organization's candidate with this email, creating it when absent
func upsertCandidate(ctx context.Context, q generated.Querier, orgID types.OrgID, req ApplyRequest, now time.Time) (types.CandidateID, error) {
	existing, err := q.GetCandidateByEmail(ctx, generated.GetCandidateByEmailParams{
		OrgID: string(orgID),
		Email: req.Email,
	})
	if err == nil {
		return types.CandidateID(existing.ID), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to look up candidate: %w", err)
	}

	id := types.NewCandidateID()
	err = q.CreateCandidate(ctx, generated.CreateCandidateParams{
		ID:        string(id),
		OrgID:     string(orgID),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		ResumeUrl: req.ResumeURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return "", database.Wrap(err, "failed to create candidate")
	}
	return id, nil
}

// MoveJobCandidate moves an application to another column of the pipeline it
// lives in. The destination must be an existing column of that pipeline.
// Concurrent moves of the same application are last-writer-wins.
func (s *service) MoveJobCandidate(ctx context.Context, id types.ApplicationID, req MoveRequest) (*models.JobCandidate, error) {
	ref, err := moveTarget(req)
	if err != nil {
		return nil, err
	}

	current, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.OrgID != "" && current.OrgID != req.OrgID {
		return nil, ErrApplicationNotFound
	}

	scope, err := s.scopeOf(ctx, current)
	if err != nil {
		return nil, err
	}
	target, err := s.pipelines.ResolveColumn(ctx, scope, ref)
	if err != nil {
		return nil, err
	}

	n, err := s.queries.UpdateJobCandidateStage(ctx, generated.UpdateJobCandidateStageParams{
		ColumnID:  string(target.ID),
		Stage:     target.Title,
		UpdatedAt: time.Now().UTC(),
		ID:        string(id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to move application: %w", err)
	}
	if n == 0 {
		return nil, ErrApplicationNotFound
	}

	slog.Debug("application moved",
		"application_id", id,
		"job_id", current.JobID,
		"from", current.Stage,
		"to", target.Title)
	s.publishApplicationEvent(events.EventStageChanged, current.OrgID, current.JobID, id)

	return s.GetApplication(ctx, id)
}

// scopeOf returns the pipeline an application currently sits in.
// Applications placed in the organization-wide pipeline stay in it.
func (s *service) scopeOf(ctx context.Context, jc *models.JobCandidate) (models.PipelineScope, error) {
	row, err := s.queries.GetPipelineColumnByID(ctx, string(jc.ColumnID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JobScope(jc.OrgID, jc.JobID), nil
		}
		return models.PipelineScope{}, fmt.Errorf("failed to get current column: %w", err)
	}
	col := converters.ColumnToModel(row)
	return models.PipelineScope{OrgID: col.OrgID, JobID: col.JobID}, nil
}

func (s *service) jobForOrg(ctx context.Context, orgID types.OrgID, jobID types.JobID) (*models.Job, error) {
	if types.IsBlank(orgID) {
		return nil, ErrInvalidOrgID
	}
	if types.IsBlank(jobID) {
		return nil, ErrInvalidJobID
	}
	row, err := s.queries.GetJobForOrg(ctx, generated.GetJobForOrgParams{ID: string(jobID), OrgID: string(orgID)})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	return converters.JobToModel(row), nil
}

// moveTarget returns the column reference of a move, requiring exactly one form
func moveTarget(req MoveRequest) (string, error) {
	columnID := strings.TrimSpace(string(req.ColumnID))
	stage := strings.TrimSpace(req.Stage)
	switch {
	case columnID != "" && stage != "":
		return "", ErrInvalidMove
	case columnID != "":
		return columnID, nil
	case stage != "":
		return stage, nil
	}
	return "", ErrInvalidMove
}

func normalizeApply(req ApplyRequest) ApplyRequest {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.ResumeURL = strings.TrimSpace(req.ResumeURL)
	return req
}

// publishApplicationEvent publishes an application event for live boards
func (s *service) publishApplicationEvent(eventType events.EventType, orgID types.OrgID, jobID types.JobID, id types.ApplicationID) {
	_ = events.PublishWithRetry(s.eventClient, events.Event{
		Type:      eventType,
		OrgID:     orgID,
		JobID:     jobID,
		EntityID:  string(id),
		Timestamp: time.Now().UTC(),
	}, publishRetries)
}
