// Package store persists analysis history in PostgreSQL. Persistence is
// optional: runs work without a database, and the store is only wired in
// when a connection URL is configured.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-tailor/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
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

// Close releases the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the history tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS match_runs (
			id UUID PRIMARY KEY,
			cv_path TEXT NOT NULL,
			job_title TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			overall_score DOUBLE PRECISION NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS gap_analyses (
			id UUID PRIMARY KEY,
			model TEXT NOT NULL DEFAULT '',
			confidence TEXT NOT NULL DEFAULT '',
			analysis JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create history tables: %w", err)
	}
	return nil
}

// SaveMatch records one scored match run.
func (s *Store) SaveMatch(ctx context.Context, runID uuid.UUID, cvPath string, req *types.JobRequirements, result *types.MatchResult) error {
	content, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO match_runs (id, cv_path, job_title, company, overall_score, result)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		runID, cvPath, req.JobTitle, req.Company, result.OverallScore, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save match run: %w", err)
	}
	return nil
}

// MatchRecord is one row of match history.
type MatchRecord struct {
	ID           uuid.UUID
	CVPath       string
	JobTitle     string
	Company      string
	OverallScore float64
	CreatedAt    time.Time
}

// ListMatches returns the most recent match runs, newest first.
func (s *Store) ListMatches(ctx context.Context, limit int) ([]MatchRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, cv_path, job_title, company, overall_score, created_at
		 FROM match_runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list match runs: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		if err := rows.Scan(&r.ID, &r.CVPath, &r.JobTitle, &r.Company, &r.OverallScore, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match run: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetMatch returns the full stored result for one run, or nil when absent.
func (s *Store) GetMatch(ctx context.Context, runID uuid.UUID) (*types.MatchResult, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT result FROM match_runs WHERE id = $1`, runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match run: %w", err)
	}
	var result types.MatchResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored match result: %w", err)
	}
	return &result, nil
}

// RecordGapAnalysis opens a short-lived connection, ensures the history
// tables exist and saves one analysis. Intended for one-shot callers that
// treat persistence as best-effort; the returned ID identifies the row.
func RecordGapAnalysis(ctx context.Context, databaseURL, model, confidence string, analysis any) (uuid.UUID, error) {
	history, err := Connect(ctx, databaseURL)
	if err != nil {
		return uuid.Nil, err
	}
	defer history.Close()

	if err := history.Migrate(ctx); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	if err := history.SaveGapAnalysis(ctx, id, model, confidence, analysis); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// SaveGapAnalysis records one gap analysis.
func (s *Store) SaveGapAnalysis(ctx context.Context, id uuid.UUID, model, confidence string, analysis any) error {
	content, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal gap analysis: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO gap_analyses (id, model, confidence, analysis) VALUES ($1, $2, $3, $4)`,
		id, model, confidence, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save gap analysis: %w", err)
	}
	return nil
}
