package session

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/abhisek/mathdrill/internal/problem"
)

// fixedSource returns n deterministic problems: "i + 1 = i+1".
func fixedSource(n int) Source {
	return SourceFunc(func() []problem.Problem {
		probs := make([]problem.Problem, n)
		for i := range probs {
			probs[i] = problem.Problem{A: i, B: 1, Op: problem.OpAdd, Answer: i + 1}
		}
		return probs
	})
}

// recordingSink collects delivered results and optionally fails.
type recordingSink struct {
	results []*Result
	err     error
}

func (s *recordingSink) Record(res *Result) error {
	s.results = append(s.results, res)
	return s.err
}

func answerOf(i int) string {
	return strconv.Itoa(i + 1)
}

func TestControllerInitialState(t *testing.T) {
	c := NewController(fixedSource(10), nil)
	if c.State() != StateNotStarted {
		t.Fatalf("State() = %v, want not-started", c.State())
	}
	if _, err := c.Current(); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("Current() err = %v, want ErrNotInProgress", err)
	}
	if err := c.Submit("5"); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("Submit() err = %v, want ErrNotInProgress", err)
	}
}

func TestStart(t *testing.T) {
	c := NewController(fixedSource(10), nil)
	c.Start("alice")

	if c.State() != StateInProgress {
		t.Fatalf("State() = %v, want in-progress", c.State())
	}
	cur, total := c.Progress()
	if cur != 1 || total != 10 {
		t.Errorf("Progress() = %d/%d, want 1/10", cur, total)
	}
	if c.Score() != 0 {
		t.Errorf("Score() = %d, want 0", c.Score())
	}
}

func TestSubmitValidation(t *testing.T) {
	c := NewController(fixedSource(10), nil)
	c.Start("alice")

	if err := c.Submit(""); !errors.Is(err, ErrAnswerRequired) {
		t.Errorf("Submit(\"\") = %v, want ErrAnswerRequired", err)
	}
	if err := c.Submit("   "); !errors.Is(err, ErrAnswerRequired) {
		t.Errorf("Submit(blank) = %v, want ErrAnswerRequired", err)
	}
	if err := c.Submit("seven"); !errors.Is(err, ErrAnswerNotNumeric) {
		t.Errorf("Submit(non-numeric) = %v, want ErrAnswerNotNumeric", err)
	}

	// A failed submission blocks advancement and leaves the position alone.
	if err := c.Next(); !errors.Is(err, ErrAnswerRequired) {
		t.Errorf("Next() = %v, want ErrAnswerRequired", err)
	}
	if cur, _ := c.Progress(); cur != 1 {
		t.Errorf("position moved to %d after rejected submit", cur)
	}
}

func TestScoreRecomputedNotDrifted(t *testing.T) {
	c := NewController(fixedSource(10), nil)
	c.Start("alice")

	// Correct answer: +10.
	if err := c.Submit("1"); err != nil {
		t.Fatal(err)
	}
	if c.Score() != 10 {
		t.Fatalf("Score() = %d, want 10", c.Score())
	}

	// Re-submitting the same correct answer leaves the score unchanged.
	if err := c.Submit("1"); err != nil {
		t.Fatal(err)
	}
	if c.Score() != 10 {
		t.Errorf("Score() = %d after re-submit, want 10", c.Score())
	}

	// Changing correct to incorrect drops exactly 10.
	if err := c.Submit("2"); err != nil {
		t.Fatal(err)
	}
	if c.Score() != 0 {
		t.Errorf("Score() = %d after wrong re-answer, want 0", c.Score())
	}
}

func TestNavigation(t *testing.T) {
	c := NewController(fixedSource(10), nil)
	c.Start("alice")

	if err := c.Prev(); !errors.Is(err, ErrAtFirstProblem) {
		t.Errorf("Prev() at start = %v, want ErrAtFirstProblem", err)
	}

	if err := c.Submit("1"); err != nil {
		t.Fatal(err)
	}
	if err := c.Next(); err != nil {
		t.Fatal(err)
	}
	if cur, _ := c.Progress(); cur != 2 {
		t.Fatalf("position = %d, want 2", cur)
	}

	// Backward movement needs no answer.
	if err := c.Prev(); err != nil {
		t.Fatal(err)
	}
	cur, _ := c.Progress()
	if cur != 1 {
		t.Fatalf("position = %d after Prev, want 1", cur)
	}

	// Revisiting shows the stored answer.
	p, err := c.Current()
	if err != nil {
		t.Fatal(err)
	}
	if !p.Answered || p.Given != 1 {
		t.Errorf("revisited problem lost its answer: %+v", p)
	}
}

func TestFinishDeliversToSinks(t *testing.T) {
	first := &recordingSink{}
	second := &recordingSink{}
	c := NewController(fixedSource(10), nil, first, second)
	c.Start("alice")

	for i := 0; i < 10; i++ {
		if err := c.Submit(answerOf(i)); err != nil {
			t.Fatal(err)
		}
		if err := c.Next(); err != nil {
			t.Fatal(err)
		}
	}

	if c.State() != StateFinished {
		t.Fatalf("State() = %v, want finished", c.State())
	}
	if len(first.results) != 1 || len(second.results) != 1 {
		t.Fatalf("sink deliveries = %d/%d, want 1/1", len(first.results), len(second.results))
	}

	res := first.results[0]
	if res.Owner != "alice" || res.Score != 100 || res.Grade != "SMART" {
		t.Errorf("result = %+v", res)
	}
	if res.SessionID == "" {
		t.Error("result has no session ID")
	}
	if res.FinishedAt.Before(res.StartedAt) {
		t.Error("finished before started")
	}
	if res.CorrectCount() != 10 {
		t.Errorf("CorrectCount() = %d, want 10", res.CorrectCount())
	}
}

func TestFinishSinkFailureIsBestEffort(t *testing.T) {
	failing := &recordingSink{err: fmt.Errorf("disk full")}
	after := &recordingSink{}
	c := NewController(fixedSource(1), nil, failing, after)
	c.Start("alice")

	if err := c.Submit("1"); err != nil {
		t.Fatal(err)
	}
	err := c.Next()
	if err == nil {
		t.Fatal("expected sink error from finish")
	}

	// The session is finished regardless and later sinks still ran.
	if c.State() != StateFinished {
		t.Errorf("State() = %v, want finished", c.State())
	}
	if len(after.results) != 1 {
		t.Errorf("later sink deliveries = %d, want 1", len(after.results))
	}
	if res, resErr := c.Result(); resErr != nil || res.Score != 10 {
		t.Errorf("Result() = %+v, %v", res, resErr)
	}
}

func TestRestartDiscardsSession(t *testing.T) {
	sink := &recordingSink{}
	c := NewController(fixedSource(10), nil, sink)
	c.Start("alice")
	if err := c.Submit("1"); err != nil {
		t.Fatal(err)
	}

	c.Start("alice")
	if len(sink.results) != 0 {
		t.Error("discarded session delivered a result")
	}
	p, err := c.Current()
	if err != nil {
		t.Fatal(err)
	}
	if p.Answered {
		t.Error("fresh session kept old answer state")
	}
	if c.Score() != 0 {
		t.Errorf("Score() = %d after restart, want 0", c.Score())
	}
}

func TestResultBeforeFinish(t *testing.T) {
	c := NewController(fixedSource(10), nil)
	c.Start("alice")
	if _, err := c.Result(); !errors.Is(err, ErrNotFinished) {
		t.Errorf("Result() err = %v, want ErrNotFinished", err)
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "SMART"}, {90, "SMART"},
		{80, "GOOD"},
		{70, "OK"},
		{60, "PASS"},
		{50, "TRY AGAIN"}, {0, "TRY AGAIN"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
