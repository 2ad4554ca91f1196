package converters

import (
	"github.com/thenoetrevino/etapa/internal/database/generated"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/types"
)

// CandidateToModel converts a generated.Candidate to models.Candidate
func CandidateToModel(c generated.Candidate) *models.Candidate {
	return &models.Candidate{
		ID:        types.CandidateID(c.ID),
		OrgID:     types.OrgID(c.OrgID),
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		ResumeURL: c.ResumeUrl,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// JobCandidateToModel converts a generated.JobCandidate to models.JobCandidate
func JobCandidateToModel(jc generated.JobCandidate) *models.JobCandidate {
	return &models.JobCandidate{
		ID:          types.ApplicationID(jc.ID),
		JobID:       types.JobID(jc.JobID),
		CandidateID: types.CandidateID(jc.CandidateID),
		OrgID:       types.OrgID(jc.OrgID),
		ColumnID:    types.ColumnID(jc.ColumnID),
		Stage:       jc.Stage,
		Notes:       jc.Notes,
		CreatedAt:   jc.CreatedAt,
		UpdatedAt:   jc.UpdatedAt,
	}
}

// ApplicationRowsToSummaries converts board rows, preserving the query's ordering
func ApplicationRowsToSummaries(rows []generated.ListJobCandidatesByJobRow) []*models.ApplicationSummary {
	result := make([]*models.ApplicationSummary, len(rows))
	for i, r := range rows {
		c := models.Candidate{Email: r.Email, FirstName: r.FirstName, LastName: r.LastName}
		result[i] = &models.ApplicationSummary{
			JobCandidate: models.JobCandidate{
				ID:          types.ApplicationID(r.ID),
				JobID:       types.JobID(r.JobID),
				CandidateID: types.CandidateID(r.CandidateID),
				OrgID:       types.OrgID(r.OrgID),
				ColumnID:    types.ColumnID(r.ColumnID),
				Stage:       r.Stage,
				Notes:       r.Notes,
				CreatedAt:   r.CreatedAt,
				UpdatedAt:   r.UpdatedAt,
			},
			CandidateName:  c.FullName(),
			CandidateEmail: r.Email,
			Position:       int(r.Position),
		}
	}
	return result
}
