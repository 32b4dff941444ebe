// Package results records solver run summaries in SQLite so that
// convergence statistics can be compared across invocations.
package results

import (
	"context"
	"database/sql"
	_ "embed"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/timpalpant/matrixcfr"
)

//go:embed schema.sql
var schema string

// RunRecord summarizes one invocation: a single solve (Runs = 1) or a batch.
type RunRecord struct {
	ID             int64
	Algorithm      string
	Size           int
	Epsilon        float64
	Runs           int
	Seed           int64
	MinIterations  int
	MaxIterations  int
	MeanIterations float64
	ElapsedSeconds float64
	CreatedAt      time.Time
}

// NewRunRecord builds a record from solver parameters and their summary.
func NewRunRecord(params matrixcfr.Params, seed int64, summary matrixcfr.Summary) RunRecord {
	return RunRecord{
		Algorithm:      params.Algorithm.String(),
		Size:           params.Size,
		Epsilon:        params.Epsilon,
		Runs:           summary.Runs,
		Seed:           seed,
		MinIterations:  summary.Min,
		MaxIterations:  summary.Max,
		MeanIterations: summary.Mean,
		ElapsedSeconds: summary.Elapsed.Seconds(),
		CreatedAt:      time.Now(),
	}
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("results database path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "error opening results database")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "error connecting to results database")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "error applying results schema")
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun inserts r and returns its id.
func (s *Store) RecordRun(ctx context.Context, r RunRecord) (int64, error) {
	if r.Runs < 1 {
		return 0, errors.Errorf("run record must cover at least one run, got %d", r.Runs)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (algorithm, size, epsilon, runs, seed,
			min_iterations, max_iterations, mean_iterations, elapsed_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Algorithm, r.Size, r.Epsilon, r.Runs, r.Seed,
		r.MinIterations, r.MaxIterations, r.MeanIterations, r.ElapsedSeconds,
		r.CreatedAt.UTC().UnixMilli())
	if err != nil {
		return 0, errors.Wrap(err, "error inserting run")
	}

	return res.LastInsertId()
}

// ListRuns returns up to limit records, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, algorithm, size, epsilon, runs, seed,
			min_iterations, max_iterations, mean_iterations, elapsed_seconds, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "error querying runs")
	}
	defer rows.Close()

	var result []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Algorithm, &r.Size, &r.Epsilon, &r.Runs, &r.Seed,
			&r.MinIterations, &r.MaxIterations, &r.MeanIterations, &r.ElapsedSeconds,
			&createdAt); err != nil {
			return nil, errors.Wrap(err, "error scanning run")
		}
		r.CreatedAt = time.UnixMilli(createdAt).UTC()
		result = append(result, r)
	}

	return result, rows.Err()
}
