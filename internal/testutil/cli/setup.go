package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/etapa/internal/app"
	"github.com/thenoetrevino/etapa/internal/testutil"
	"github.com/thenoetrevino/etapa/internal/types"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// This lives in its own package so service tests can import testutil
// without pulling in the CLI.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	// EventPublisher is nil - event publishing is tested elsewhere
	return db, app.New(db)
}

// CreateTestJob wraps testutil.CreateTestJob for CLI tests
func CreateTestJob(t *testing.T, db *sql.DB, orgID types.OrgID, title, status string) types.JobID {
	t.Helper()
	return testutil.CreateTestJob(t, db, orgID, title, status)
}
