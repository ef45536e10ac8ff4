package session

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/problem"
)

var (
	// ErrNotInProgress is returned by operations that require an active session.
	ErrNotInProgress = errors.New("no test in progress")

	// ErrNotFinished is returned when the result of an unfinished session is requested.
	ErrNotFinished = errors.New("test not finished")

	// ErrAnswerRequired is returned when the current problem must be
	// answered before the attempted operation.
	ErrAnswerRequired = errors.New("answer the current question first")

	// ErrAnswerNotNumeric is returned for a submission that is not an integer.
	ErrAnswerNotNumeric = errors.New("answer must be a whole number")

	// ErrAtFirstProblem is returned by Prev on the first problem.
	ErrAtFirstProblem = errors.New("already at the first question")
)

// Source produces the problem sequence for a new session.
type Source interface {
	Problems() []problem.Problem
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() []problem.Problem

func (f SourceFunc) Problems() []problem.Problem { return f() }

// Sink receives the result of a finished session. Sink failures are
// best-effort: they never roll back the finished session.
type Sink interface {
	Record(res *Result) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(res *Result) error

func (f SinkFunc) Record(res *Result) error { return f(res) }

// Controller owns the active session and walks the test-taker through it.
// Exactly one session is active at a time and every operation runs to
// completion before the next; the Controller is not safe for concurrent use.
type Controller struct {
	src   Source
	sinks []Sink
	log   *zap.Logger

	state State
	sess  *Session
}

// NewController creates a Controller drawing problems from src and
// delivering finished results to sinks, in order.
func NewController(src Source, log *zap.Logger, sinks ...Sink) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		src:   src,
		sinks: sinks,
		log:   log,
	}
}

// State returns the controller's lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Start begins a new session for owner. A session already in progress is
// discarded and a fresh problem set generated.
func (c *Controller) Start(owner string) {
	if c.state == StateInProgress {
		c.log.Info("discarding unfinished session",
			zap.String("session_id", c.sess.ID),
			zap.String("owner", c.sess.Owner))
	}

	c.sess = &Session{
		ID:        uuid.NewString(),
		Owner:     owner,
		Problems:  c.src.Problems(),
		StartedAt: time.Now(),
	}
	c.state = StateInProgress

	c.log.Info("session started",
		zap.String("session_id", c.sess.ID),
		zap.String("owner", owner),
		zap.Int("questions", len(c.sess.Problems)))
}

// Current returns the problem at the current position.
func (c *Controller) Current() (problem.Problem, error) {
	if c.state != StateInProgress {
		return problem.Problem{}, ErrNotInProgress
	}
	return c.sess.Problems[c.sess.Index], nil
}

// Progress returns the 1-based position and the total question count.
func (c *Controller) Progress() (current, total int) {
	if c.state != StateInProgress {
		return 0, 0
	}
	return c.sess.Index + 1, len(c.sess.Problems)
}

// Score returns the running score.
func (c *Controller) Score() int {
	if c.sess == nil {
		return 0
	}
	return c.sess.Score
}

// Submit records raw as the answer to the current problem. An empty
// submission is rejected with ErrAnswerRequired; a non-integer one with
// ErrAnswerNotNumeric. Re-submitting overwrites the stored answer and the
// score is recomputed from scratch, so re-answering is always safe.
func (c *Controller) Submit(raw string) error {
	if c.state != StateInProgress {
		return ErrNotInProgress
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrAnswerRequired
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return ErrAnswerNotNumeric
	}

	p := &c.sess.Problems[c.sess.Index]
	p.Given = value
	p.Answered = true
	c.sess.recompute()
	return nil
}

// Next advances to the following problem. The current problem must have
// been answered. On the last problem, Next finishes the session instead.
func (c *Controller) Next() error {
	if c.state != StateInProgress {
		return ErrNotInProgress
	}
	if !c.sess.Problems[c.sess.Index].Answered {
		return ErrAnswerRequired
	}

	if c.sess.Index == len(c.sess.Problems)-1 {
		return c.Finish()
	}
	c.sess.Index++
	return nil
}

// Prev moves back one problem. No answer is required to move backward.
func (c *Controller) Prev() error {
	if c.state != StateInProgress {
		return ErrNotInProgress
	}
	if c.sess.Index == 0 {
		return ErrAtFirstProblem
	}
	c.sess.Index--
	return nil
}

// Finish ends the session, stamps the end time, and delivers the result
// to every sink. Sink errors do not undo the finished session or stop
// later sinks; the first failure is returned once all sinks have run.
func (c *Controller) Finish() error {
	if c.state != StateInProgress {
		return ErrNotInProgress
	}

	c.sess.FinishedAt = time.Now()
	c.sess.recompute()
	c.state = StateFinished

	res := c.buildResult()
	c.log.Info("session finished",
		zap.String("session_id", res.SessionID),
		zap.String("owner", res.Owner),
		zap.Int("score", res.Score),
		zap.String("grade", res.Grade))

	var firstErr error
	for _, sink := range c.sinks {
		if err := sink.Record(res); err != nil {
			c.log.Warn("result sink failed",
				zap.String("session_id", res.SessionID),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Result returns the finished session's result.
func (c *Controller) Result() (*Result, error) {
	if c.state != StateFinished {
		return nil, ErrNotFinished
	}
	return c.buildResult(), nil
}

func (c *Controller) buildResult() *Result {
	problems := make([]problem.Problem, len(c.sess.Problems))
	copy(problems, c.sess.Problems)

	return &Result{
		SessionID:  c.sess.ID,
		Owner:      c.sess.Owner,
		Score:      c.sess.Score,
		Grade:      Grade(c.sess.Score),
		StartedAt:  c.sess.StartedAt,
		FinishedAt: c.sess.FinishedAt,
		Problems:   problems,
	}
}
