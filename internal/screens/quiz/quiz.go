package quiz

import (
	"errors"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// maxAnswer is the inclusive upper bound accepted by the answer input.
// Enforced here at the boundary; out-of-range values never reach the
// controller.
const maxAnswer = 100

// QuizScreen walks the test-taker through an active session.
type QuizScreen struct {
	ctrl   *session.Controller
	user   string
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. Starting the screen starts a fresh session;
// any unfinished one is discarded.
func New(ctrl *session.Controller, user string) *QuizScreen {
	return &QuizScreen{
		ctrl:  ctrl,
		user:  user,
		input: components.NewTextInput("answer", true, 3),
	}
}

func (s *QuizScreen) Title() string {
	return "Test"
}

func (s *QuizScreen) Init() tea.Cmd {
	s.ctrl.Start(s.user)
	s.refreshInput()
	return s.input.Focus()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
	if cur, _ := s.ctrl.Progress(); cur > 1 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	if cur, total := s.ctrl.Progress(); cur == total {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Finish"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon test"})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, s.submitAndAdvance()
		case "left":
			if err := s.ctrl.Prev(); err == nil {
				s.errMsg = ""
				s.refreshInput()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAndAdvance records the current answer and moves forward,
// finishing the test on the last question.
func (s *QuizScreen) submitAndAdvance() tea.Cmd {
	raw := strings.TrimSpace(s.input.Value())
	if v, err := strconv.Atoi(raw); err == nil && v > maxAnswer {
		s.errMsg = "Answers are between 0 and 100"
		return nil
	}

	if err := s.ctrl.Submit(raw); err != nil {
		s.errMsg = submitMessage(err)
		return nil
	}

	advanceErr := s.ctrl.Next()

	if s.ctrl.State() == session.StateFinished {
		res, err := s.ctrl.Result()
		if err != nil {
			s.errMsg = err.Error()
			return nil
		}
		// advanceErr now holds any best-effort persistence failure.
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(res, advanceErr)}
		}
	}

	if advanceErr != nil {
		s.errMsg = submitMessage(advanceErr)
		return nil
	}

	s.errMsg = ""
	s.refreshInput()
	return nil
}

// refreshInput loads the stored answer when revisiting an answered
// question, otherwise clears the field.
func (s *QuizScreen) refreshInput() {
	p, err := s.ctrl.Current()
	if err != nil {
		return
	}
	if p.Answered {
		s.input.SetValue(strconv.Itoa(p.Given))
	} else {
		s.input.Reset()
	}
}

func submitMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrAnswerRequired):
		return "Please answer the current question"
	case errors.Is(err, session.ErrAnswerNotNumeric):
		return "Answers must be whole numbers"
	default:
		return err.Error()
	}
}

func (s *QuizScreen) View(width, height int) string {
	p, err := s.ctrl.Current()
	if err != nil {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No test in progress"))
	}
	cur, total := s.ctrl.Progress()

	var b strings.Builder
	b.WriteString("\n\n")

	barWidth := width / 2
	if barWidth < 20 {
		barWidth = 20
	}
	bar := components.NewProgressBar(cur, total, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n\n")

	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(p.Text())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.ErrorText(s.errMsg)))
		b.WriteString("\n")
	}

	if cur == total {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Last question, Enter finishes the test")))
	}

	return b.String()
}
