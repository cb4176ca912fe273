// Package store persists batch-run history to PostgreSQL. The store is
// optional: the processing pipeline works without it, and recording a run is
// best-effort.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/andresmejia3/matte/internal/errors"
	"github.com/andresmejia3/matte/internal/types"
)

// Store manages the PostgreSQL connection for run history.
type Store struct {
	conn *pgx.Conn
}

// New establishes a connection to the database and ensures the schema is initialized.
func New(ctx context.Context, connString string) (*Store, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Initialize schema (Auto-Migration)
	if err := initSchema(ctx, conn); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

// initSchema creates the history tables if they don't exist (Auto-Migration).
func initSchema(ctx context.Context, conn *pgx.Conn) error {
	query := `
		CREATE TABLE IF NOT EXISTS runs (
			id BIGSERIAL PRIMARY KEY,
			input_dir TEXT NOT NULL,
			started_at TIMESTAMPTZ NOT NULL,
			wall_seconds DOUBLE PRECISION NOT NULL,
			succeeded INT NOT NULL,
			failed INT NOT NULL,
			avg_seconds DOUBLE PRECISION,
			fastest_name TEXT,
			fastest_seconds DOUBLE PRECISION,
			slowest_name TEXT,
			slowest_seconds DOUBLE PRECISION
		);
		CREATE TABLE IF NOT EXISTS run_outcomes (
			id BIGSERIAL PRIMARY KEY,
			run_id BIGINT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			filename TEXT NOT NULL,
			ok BOOLEAN NOT NULL,
			seconds DOUBLE PRECISION NOT NULL,
			error_kind TEXT,
			error TEXT
		);
		CREATE INDEX IF NOT EXISTS run_outcomes_run_id_idx ON run_outcomes (run_id);
	`
	_, err := conn.Exec(ctx, query)
	return err
}

// Close terminates the database connection.
func (s *Store) Close(ctx context.Context) {
	s.conn.Close(ctx)
}

// RecordRun persists one finished run and its per-file outcomes in a single
// transaction, returning the new run's ID.
func (s *Store) RecordRun(ctx context.Context, rec types.RunRecord, outcomes []types.Outcome) (int64, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var avg *float64
	var fastestName, slowestName *string
	var fastestSec, slowestSec *float64
	if rec.HasAverage {
		a := rec.Average.Seconds()
		avg = &a
		fn, fs := rec.Fastest.Filename, rec.Fastest.Duration.Seconds()
		sn, ss := rec.Slowest.Filename, rec.Slowest.Duration.Seconds()
		fastestName, fastestSec = &fn, &fs
		slowestName, slowestSec = &sn, &ss
	}

	var runID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO runs (input_dir, started_at, wall_seconds, succeeded, failed,
			avg_seconds, fastest_name, fastest_seconds, slowest_name, slowest_seconds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, rec.InputDir, rec.StartedAt, rec.Wall.Seconds(), rec.Succeeded, rec.Failed,
		avg, fastestName, fastestSec, slowestName, slowestSec).Scan(&runID)
	if err != nil {
		return 0, err
	}

	for _, o := range outcomes {
		var errKind, errText *string
		if o.Err != nil {
			k := string(apperrors.KindOf(o.Err))
			t := o.Err.Error()
			errKind, errText = &k, &t
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO run_outcomes (run_id, filename, ok, seconds, error_kind, error)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, runID, o.Filename, o.OK(), o.Duration.Seconds(), errKind, errText)
		if err != nil {
			return 0, err
		}
	}

	return runID, tx.Commit(ctx)
}

// RunRow is one row of the run-history listing.
type RunRow struct {
	ID          int64
	InputDir    string
	StartedAt   time.Time
	WallSeconds float64
	Succeeded   int
	Failed      int
}

// ListRuns returns the recorded runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunRow, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, input_dir, started_at, wall_seconds, succeeded, failed
		FROM runs ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRow
	for rows.Next() {
		var r RunRow
		if err := rows.Scan(&r.ID, &r.InputDir, &r.StartedAt, &r.WallSeconds, &r.Succeeded, &r.Failed); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Reset drops the history tables to clear the database state.
// This is useful for development to force a schema refresh without migrations.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, `
		DROP TABLE IF EXISTS run_outcomes CASCADE;
		DROP TABLE IF EXISTS runs CASCADE;
	`)
	return err
}
