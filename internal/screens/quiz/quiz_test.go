package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/session"
)

func newTestScreen(n int) *QuizScreen {
	src := session.SourceFunc(func() []problem.Problem {
		probs := make([]problem.Problem, n)
		for i := range probs {
			probs[i] = problem.Problem{A: i, B: 1, Op: problem.OpAdd, Answer: i + 1}
		}
		return probs
	})
	s := New(session.NewController(src, nil), "amy")
	s.Init()
	return s
}

func pressEnter(s *QuizScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestQuizScreen_SubmitAdvances(t *testing.T) {
	s := newTestScreen(3)

	s.input.SetValue("1")
	pressEnter(s)

	cur, total := s.ctrl.Progress()
	if cur != 2 || total != 3 {
		t.Errorf("Progress() = %d/%d, want 2/3", cur, total)
	}
	if s.errMsg != "" {
		t.Errorf("errMsg = %q, want empty", s.errMsg)
	}
}

func TestQuizScreen_EmptyAnswerRejected(t *testing.T) {
	s := newTestScreen(3)

	pressEnter(s)

	if cur, _ := s.ctrl.Progress(); cur != 1 {
		t.Errorf("advanced on empty answer, now at question %d", cur)
	}
	if s.errMsg == "" {
		t.Error("expected a validation message for an empty answer")
	}
}

func TestQuizScreen_OutOfRangeRejected(t *testing.T) {
	s := newTestScreen(3)

	s.input.SetValue("101")
	pressEnter(s)

	if cur, _ := s.ctrl.Progress(); cur != 1 {
		t.Errorf("advanced on out-of-range answer, now at question %d", cur)
	}
	if !strings.Contains(s.errMsg, "between 0 and 100") {
		t.Errorf("errMsg = %q, want range message", s.errMsg)
	}
}

func TestQuizScreen_PrevRestoresAnswer(t *testing.T) {
	s := newTestScreen(3)

	s.input.SetValue("1")
	pressEnter(s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})

	if cur, _ := s.ctrl.Progress(); cur != 1 {
		t.Fatalf("Progress() = %d, want 1 after left", cur)
	}
	if got := s.input.Value(); got != "1" {
		t.Errorf("input = %q, want stored answer %q", got, "1")
	}
}

func TestQuizScreen_FinishReplacesWithSummary(t *testing.T) {
	s := newTestScreen(2)

	s.input.SetValue("1")
	pressEnter(s)
	s.input.SetValue("7") // wrong on purpose
	cmd := pressEnter(s)

	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ReplaceScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement screen is %T, want *summary.SummaryScreen", msg.Screen)
	}

	res, err := s.ctrl.Result()
	if err != nil {
		t.Fatalf("Result() err = %v", err)
	}
	if res.Score != session.PointsPerProblem {
		t.Errorf("Score = %d, want %d", res.Score, session.PointsPerProblem)
	}
}
