package converters

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/database/generated"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/types"
)

func TestColumnToModel(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		input     generated.PipelineColumn
		wantJobID *types.JobID
	}{
		{
			name: "job scoped column",
			input: generated.PipelineColumn{
				ID: "c1", OrgID: "o1", JobID: sql.NullString{String: "j1", Valid: true},
				Title: "Applied", Position: 0, CreatedAt: now, UpdatedAt: now,
			},
			wantJobID: func() *types.JobID { id := types.JobID("j1"); return &id }(),
		},
		{
			name: "organization-wide column",
			input: generated.PipelineColumn{
				ID: "c2", OrgID: "o1", Title: "Screen", Position: 1, CreatedAt: now, UpdatedAt: now,
			},
			wantJobID: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnToModel(tt.input)
			assert.Equal(t, types.ColumnID(tt.input.ID), got.ID)
			assert.Equal(t, tt.input.Title, got.Title)
			assert.Equal(t, int(tt.input.Position), got.Position)
			assert.Equal(t, tt.wantJobID, got.JobID)
			assert.Equal(t, now, got.CreatedAt)
		})
	}
}

func TestColumnsToModels_PreservesOrder(t *testing.T) {
	t.Parallel()

	rows := []generated.PipelineColumn{
		{ID: "a", Title: "Applied", Position: 0},
		{ID: "b", Title: "Screen", Position: 1},
		{ID: "c", Title: "Interview", Position: 2},
	}
	got := ColumnsToModels(rows)
	require.Len(t, got, 3)
	assert.Equal(t, "Applied", got[0].Title)
	assert.Equal(t, "Interview", got[2].Title)

	assert.Empty(t, ColumnsToModels(nil))
}

func TestScopeJobParam(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sql.NullString{}, ScopeJobParam(models.OrgScope("o1")))
	assert.Equal(t, sql.NullString{String: "j1", Valid: true}, ScopeJobParam(models.JobScope("o1", "j1")))
}

func TestNullTimeRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NullTimeToPtr(sql.NullTime{}))
	assert.False(t, PtrToNullTime(nil).Valid)

	now := time.Now().UTC()
	nt := PtrToNullTime(&now)
	require.True(t, nt.Valid)
	assert.Equal(t, now, *NullTimeToPtr(nt))
}

func TestApplicationRowsToSummaries(t *testing.T) {
	t.Parallel()

	rows := []generated.ListJobCandidatesByJobRow{
		{ID: "a1", JobID: "j1", CandidateID: "c1", OrgID: "o1", ColumnID: "col1", Stage: "Applied",
			Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Position: 0},
		{ID: "a2", JobID: "j1", CandidateID: "c2", OrgID: "o1", ColumnID: "col2", Stage: "Screen",
			Email: "grace@example.com", Position: 1},
	}

	got := ApplicationRowsToSummaries(rows)
	require.Len(t, got, 2)
	assert.Equal(t, "Ada Lovelace", got[0].CandidateName)
	assert.Equal(t, "grace@example.com", got[1].CandidateName)
	assert.Equal(t, types.ColumnID("col2"), got[1].ColumnID)
	assert.Equal(t, 1, got[1].Position)
}
