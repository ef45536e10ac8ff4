package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// SummaryScreen displays the finished test result.
type SummaryScreen struct {
	result  *session.Result
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. saveErr carries any persistence failure
// from recording the result; the summary still renders in full.
func New(result *session.Result, saveErr error) *SummaryScreen {
	return &SummaryScreen{result: result, saveErr: saveErr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete!"))
	b.WriteString("\n\n")

	gradeStyle := theme.Correct
	if res.Score < 60 {
		gradeStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		gradeStyle.Render(res.Grade)))
	b.WriteString("\n\n")

	secs := res.DurationSeconds()
	statsLine := fmt.Sprintf("Score: %d        Correct: %d/%d        Time: %d:%02d",
		res.Score, res.CorrectCount(), len(res.Problems), secs/60, secs%60)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Questions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	for i, p := range res.Problems {
		var styled string
		switch {
		case !p.Answered:
			line := fmt.Sprintf("%2d. %-16s unanswered", i+1, p.Text())
			styled = theme.Hint.Render(line)
		case p.Correct():
			line := fmt.Sprintf("%2d. %-16s ✓", i+1, answered(p))
			styled = theme.Correct.Render(line)
		default:
			line := fmt.Sprintf("%2d. %-16s ✗ (correct: %d)", i+1, answered(p), p.Answer)
			styled = theme.Incorrect.Render(line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styled))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Warning: result could not be saved: "+s.saveErr.Error())))
		b.WriteString("\n")
	}

	return b.String()
}

// answered renders the problem with the answer the user gave in place
// of the question mark.
func answered(p problem.Problem) string {
	return fmt.Sprintf("%s %d", strings.TrimSuffix(p.Text(), " ?"), p.Given)
}
