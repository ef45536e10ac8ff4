package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/problem"
)

// Result is the immutable outcome of a finished session, handed to the
// record store, the leaderboard, and the summary screen.
type Result struct {
	SessionID  string
	Owner      string
	Score      int
	Grade      string
	StartedAt  time.Time
	FinishedAt time.Time
	Problems   []problem.Problem
}

// DurationSeconds returns the elapsed test time in whole seconds.
func (r *Result) DurationSeconds() int {
	return int(r.FinishedAt.Sub(r.StartedAt) / time.Second)
}

// CorrectCount returns the number of correctly answered problems.
func (r *Result) CorrectCount() int {
	n := 0
	for _, p := range r.Problems {
		if p.Correct() {
			n++
		}
	}
	return n
}

// Grade maps a score to its evaluation band.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "SMART"
	case score >= 80:
		return "GOOD"
	case score >= 70:
		return "OK"
	case score >= 60:
		return "PASS"
	default:
		return "TRY AGAIN"
	}
}
