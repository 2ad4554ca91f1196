package converters

import (
	"database/sql"
	"time"

	"github.com/thenoetrevino/etapa/internal/database/generated"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/types"
)

// JobToModel converts a generated.Job to models.Job
func JobToModel(j generated.Job) *models.Job {
	return &models.Job{
		ID:          types.JobID(j.ID),
		OrgID:       types.OrgID(j.OrgID),
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		Status:      models.JobStatus(j.Status),
		PublishedAt: NullTimeToPtr(j.PublishedAt),
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// JobsToModels converts a slice of generated.Job
func JobsToModels(rows []generated.Job) []*models.Job {
	result := make([]*models.Job, len(rows))
	for i, r := range rows {
		result[i] = JobToModel(r)
	}
	return result
}

// NullTimeToPtr converts sql.NullTime to *time.Time
func NullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

// PtrToNullTime converts *time.Time to sql.NullTime
func PtrToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
