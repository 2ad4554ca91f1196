package converters

import (
	"database/sql"

	"github.com/thenoetrevino/etapa/internal/database/generated"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/types"
)

// ColumnToModel converts a generated.PipelineColumn to models.PipelineColumn
func ColumnToModel(c generated.PipelineColumn) *models.PipelineColumn {
	return &models.PipelineColumn{
		ID:        types.ColumnID(c.ID),
		OrgID:     types.OrgID(c.OrgID),
		JobID:     NullStringToJobID(c.JobID),
		Title:     c.Title,
		Position:  int(c.Position),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ColumnsToModels converts a slice of generated.PipelineColumn, preserving order
func ColumnsToModels(rows []generated.PipelineColumn) []*models.PipelineColumn {
	result := make([]*models.PipelineColumn, len(rows))
	for i, r := range rows {
		result[i] = ColumnToModel(r)
	}
	return result
}

// NullStringToJobID converts a nullable job_id column to *types.JobID
func NullStringToJobID(ns sql.NullString) *types.JobID {
	if !ns.Valid {
		return nil
	}
	id := types.JobID(ns.String)
	return &id
}

// ScopeJobParam converts a pipeline scope to the nullable job_id query parameter
func ScopeJobParam(scope models.PipelineScope) sql.NullString {
	if scope.JobID == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*scope.JobID), Valid: true}
}
