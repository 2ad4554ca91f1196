package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/etapa/internal/database"
	"github.com/thenoetrevino/etapa/internal/types"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full migrated schema.
// The pool is capped at one connection so every goroutine in a test sees
// the same in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestJob inserts a job row directly and returns its ID
func CreateTestJob(t *testing.T, db *sql.DB, orgID types.OrgID, title, status string) types.JobID {
	t.Helper()
	id := types.NewJobID()
	now := time.Now().UTC()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO jobs (id, org_id, title, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		string(id), string(orgID), title, status, now, now)
	if err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return id
}

// CreateTestColumn inserts a pipeline column directly, bypassing materialization.
// Pass an empty jobID for the organization-wide pipeline.
func CreateTestColumn(t *testing.T, db *sql.DB, orgID types.OrgID, jobID types.JobID, title string, position int) types.ColumnID {
	t.Helper()
	id := types.NewColumnID()
	now := time.Now().UTC()
	var job any
	if jobID != "" {
		job = string(jobID)
	}
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO pipeline_columns (id, org_id, job_id, title, position, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(id), string(orgID), job, title, position, now, now)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return id
}

// CountColumns returns how many columns exist for a job (or the org-wide pipeline when jobID is empty)
func CountColumns(t *testing.T, db *sql.DB, orgID types.OrgID, jobID types.JobID) int {
	t.Helper()
	var job any
	if jobID != "" {
		job = string(jobID)
	}
	var n int
	err := db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM pipeline_columns WHERE org_id = ? AND job_id IS ?`,
		string(orgID), job).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count columns: %v", err)
	}
	return n
}

// CountApplications returns how many job_candidate rows exist for a job
func CountApplications(t *testing.T, db *sql.DB, jobID types.JobID) int {
	t.Helper()
	var n int
	err := db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM job_candidate WHERE job_id = ?`, string(jobID)).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count applications: %v", err)
	}
	return n
}
