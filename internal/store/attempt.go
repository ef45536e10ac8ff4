package store

import (
	"context"
	"fmt"
	"time"
)

// Attempt is one finished test, as recorded in the attempt log.
type Attempt struct {
	ID           string
	Owner        string
	Score        int
	Grade        string
	StartedAt    time.Time
	FinishedAt   time.Time
	DurationSecs int
}

// OwnerTotals aggregates a single user's attempts.
type OwnerTotals struct {
	Owner    string
	Attempts int
	Best     int
	Average  float64
}

// AppendAttempt records a finished test.
func (s *Store) AppendAttempt(ctx context.Context, a Attempt) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts (id, owner, score, grade, started_at, finished_at, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Owner, a.Score, a.Grade, a.StartedAt, a.FinishedAt, a.DurationSecs)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// RecentAttempts returns the newest attempts, most recent first.
// limit <= 0 means no limit.
func (s *Store) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	q := `
		SELECT id, owner, score, grade, started_at, finished_at, duration_secs
		FROM attempts ORDER BY finished_at DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.Owner, &a.Score, &a.Grade, &a.StartedAt, &a.FinishedAt, &a.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

// TotalsByOwner aggregates attempts per user, best score first.
func (s *Store) TotalsByOwner(ctx context.Context) ([]OwnerTotals, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT owner, COUNT(*), MAX(score), AVG(score)
		FROM attempts GROUP BY owner ORDER BY MAX(score) DESC, owner`)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	var out []OwnerTotals
	for rows.Next() {
		var t OwnerTotals
		if err := rows.Scan(&t.Owner, &t.Attempts, &t.Best, &t.Average); err != nil {
			return nil, fmt.Errorf("scan totals: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate totals: %w", err)
	}
	return out, nil
}
