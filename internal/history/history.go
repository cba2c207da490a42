// Package history provides PostgreSQL storage for past analysis runs.
// The analyzers themselves are stateless; the store is caller-owned and
// only the CLI layer reads or writes it.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/export"
	"github.com/jonathan/resume-analyzer/internal/report"
)

// DefaultRecentLimit is how many past runs are surfaced by default.
const DefaultRecentLimit = 3

// Run is one saved analysis.
type Run struct {
	ID         uuid.UUID      `json:"id"`
	ResumeName string         `json:"resume_name"`
	Record     export.Record  `json:"record"`
	Report     *report.Report `json:"report,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// schemaDDL provisions the single table the store uses. Runs are
// append-only; JSONB keeps the record and report queryable in place.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS analysis_runs (
    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    resume_name TEXT NOT NULL,
    record      JSONB NOT NULL,
    report      JSONB,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the runs table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveRun stores one analysis run. The flat record and the full report
// are both kept; the record feeds tabular views, the report detail pages.
func (s *Store) SaveRun(ctx context.Context, resumeName string, rec export.Record, rep *report.Report) (uuid.UUID, error) {
	recordJSON, reportJSON, err := encodeRun(rec, rep)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO analysis_runs (resume_name, record, report)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		resumeName, recordJSON, reportJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save run: %w", err)
	}
	return id, nil
}

// RecentRuns returns the most recent runs, newest first. A limit of 0 or
// less falls back to DefaultRecentLimit.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, resume_name, record, report, created_at
		 FROM analysis_runs
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			recordJSON []byte
			reportJSON []byte
		)
		if err := rows.Scan(&run.ID, &run.ResumeName, &recordJSON, &reportJSON, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := decodeRun(recordJSON, reportJSON, &run); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}

// encodeRun marshals the stored JSON columns. A nil report is stored as
// SQL NULL.
func encodeRun(rec export.Record, rep *report.Report) ([]byte, []byte, error) {
	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	var reportJSON []byte
	if rep != nil {
		reportJSON, err = json.Marshal(rep)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal report: %w", err)
		}
	}

	return recordJSON, reportJSON, nil
}

// decodeRun unmarshals the stored JSON columns into the run.
func decodeRun(recordJSON, reportJSON []byte, run *Run) error {
	if err := json.Unmarshal(recordJSON, &run.Record); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if len(reportJSON) > 0 {
		run.Report = &report.Report{}
		if err := json.Unmarshal(reportJSON, run.Report); err != nil {
			return fmt.Errorf("failed to unmarshal report: %w", err)
		}
	}
	return nil
}
