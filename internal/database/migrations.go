package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// migrations are applied in order; PRAGMA user_version records how many have run.
// Append only, never edit a shipped entry.
var migrations = []string{
	// 1: jobs and candidates
	`
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'published', 'closed')),
		published_at DATETIME,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_jobs_org ON jobs(org_id, created_at);

	CREATE TABLE IF NOT EXISTS candidates (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		email TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		resume_url TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE (org_id, email)
	);
	`,

	// 2: pipeline columns. job_id NULL is the organization-wide pipeline.
	// The unique indexes make concurrent materialization of the same scope
	// fail loudly instead of producing duplicate stages.
	`
	CREATE TABLE IF NOT EXISTS pipeline_columns (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		job_id TEXT REFERENCES jobs(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		position INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_pipeline_columns_scope_position
	ON pipeline_columns(org_id, IFNULL(job_id, ''), position);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_pipeline_columns_scope_title
	ON pipeline_columns(org_id, IFNULL(job_id, ''), title COLLATE NOCASE);
	`,

	// 3: job/candidate membership
	`
	CREATE TABLE IF NOT EXISTS job_candidate (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		candidate_id TEXT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		org_id TEXT NOT NULL,
		column_id TEXT NOT NULL REFERENCES pipeline_columns(id),
		stage TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE (job_id, candidate_id)
	);

	CREATE INDEX IF NOT EXISTS idx_job_candidate_column ON job_candidate(column_id);
	`,
}

// RunMigrations brings the schema up to date
func RunMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		err := WithTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
				return err
			}
			// PRAGMA does not accept bound parameters
			_, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1))
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		slog.Debug("applied migration", "version", i+1)
	}

	return nil
}

// SchemaVersion reports the number of applied migrations
func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version)
	return version, err
}
