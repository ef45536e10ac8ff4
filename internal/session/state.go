package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/problem"
)

// State is the lifecycle state of a test session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in-progress"
	case StateFinished:
		return "finished"
	default:
		return "not-started"
	}
}

// PointsPerProblem is the score value of one correct answer.
const PointsPerProblem = 10

// Session is one complete attempt at the fixed-length test. It is owned
// exclusively by the controller for its lifetime.
type Session struct {
	// ID uniquely identifies this attempt.
	ID string

	// Owner is the authenticated username the attempt belongs to.
	Owner string

	// Problems is the ordered question sequence.
	Problems []problem.Problem

	// Index is the current position, always in [0, len(Problems)).
	Index int

	// Score is 10 x the number of correctly answered problems. It is
	// recomputed from scratch on every submission, never drifted.
	Score int

	// StartedAt is when the session began.
	StartedAt time.Time

	// FinishedAt is when the session finished. Zero while in progress.
	FinishedAt time.Time
}

// recompute recalculates Score from the answer state of every problem.
func (s *Session) recompute() {
	score := 0
	for _, p := range s.Problems {
		if p.Correct() {
			score += PointsPerProblem
		}
	}
	s.Score = score
}
