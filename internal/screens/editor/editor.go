package editor

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// EditorScreen lets the user review, add, and delete bank questions.
// Every mutation is written straight back to the question file.
type EditorScreen struct {
	bank *problem.Bank
	path string

	cursor int
	adding bool

	// Add form: operand A, operator, operand B.
	inputs [3]components.TextInput
	focus  int

	errMsg string
	status string
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates an EditorScreen over bank, persisting changes to path.
func New(bank *problem.Bank, path string) *EditorScreen {
	s := &EditorScreen{bank: bank, path: path}
	s.inputs[0] = components.NewTextInput("a", true, 3)
	s.inputs[1] = components.NewTextInput("op", false, 1)
	s.inputs[2] = components.NewTextInput("b", true, 3)
	return s
}

func (s *EditorScreen) Title() string {
	return "Question Editor"
}

func (s *EditorScreen) Init() tea.Cmd {
	return nil
}

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next field / Add"},
			{Key: "Tab", Description: "Switch field"},
			{Key: "Ctrl+X", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "A", Description: "Add"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.adding {
		return s, s.updateForm(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.bank.Len()-1 {
			s.cursor++
		}
	case "a":
		s.adding = true
		s.focus = 0
		s.errMsg = ""
		s.status = ""
		for i := range s.inputs {
			s.inputs[i].Reset()
			s.inputs[i].Blur()
		}
		return s, s.inputs[0].Focus()
	case "d", "delete":
		s.deleteCurrent()
	}
	return s, nil
}

func (s *EditorScreen) updateForm(kmsg tea.KeyMsg) tea.Cmd {
	switch kmsg.String() {
	case "ctrl+x":
		s.adding = false
		s.errMsg = ""
		return nil
	case "tab":
		return s.setFocus((s.focus + 1) % len(s.inputs))
	case "shift+tab":
		return s.setFocus((s.focus + len(s.inputs) - 1) % len(s.inputs))
	case "enter":
		if s.focus < len(s.inputs)-1 {
			return s.setFocus(s.focus + 1)
		}
		s.addQuestion()
		return nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(kmsg)
	return cmd
}

func (s *EditorScreen) setFocus(i int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[i].Focus()
}

// addQuestion validates the form and appends the question. The answer
// is computed here; hand-entered questions follow the same rules as
// generated ones, plus the division checks.
func (s *EditorScreen) addQuestion() {
	a, errA := s.inputs[0].NumericValue()
	b, errB := s.inputs[2].NumericValue()
	if errA != nil || errB != nil {
		s.errMsg = "Operands must be whole numbers"
		return
	}

	op, ok := problem.ParseOp(strings.TrimSpace(s.inputs[1].Value()))
	if !ok {
		s.errMsg = "Operator must be one of + - * /"
		return
	}

	p, err := problem.NewManual(a, b, op)
	if err != nil {
		s.errMsg = manualMessage(err)
		return
	}

	s.bank.Add(p)
	s.adding = false
	s.errMsg = ""
	s.cursor = s.bank.Len() - 1
	s.persist(fmt.Sprintf("Added %s", strings.TrimSuffix(p.Text(), " = ?")))
}

func (s *EditorScreen) deleteCurrent() {
	if err := s.bank.Remove(s.cursor); err != nil {
		return
	}
	if s.cursor >= s.bank.Len() && s.cursor > 0 {
		s.cursor--
	}
	s.persist("Question deleted")
}

// persist rewrites the question file and sets the status line.
func (s *EditorScreen) persist(okStatus string) {
	if err := s.bank.Export(s.path); err != nil {
		s.errMsg = "Could not save question file: " + err.Error()
		return
	}
	s.status = okStatus
}

func manualMessage(err error) string {
	switch {
	case errors.Is(err, problem.ErrDivideByZero):
		return "Division by zero is not allowed"
	case errors.Is(err, problem.ErrNotDivisible):
		return "The quotient must be a whole number"
	case errors.Is(err, problem.ErrNegativeResult):
		return "The difference must not be negative"
	default:
		return err.Error()
	}
}

func (s *EditorScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	count := fmt.Sprintf("%d questions in the bank", s.bank.Len())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(count)))
	b.WriteString("\n\n")

	problems := s.bank.Problems()
	if len(problems) == 0 && !s.adding {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No questions yet. Press A to add one.")))
		b.WriteString("\n")
	}

	// Keep the cursor visible when the bank outgrows the screen.
	visible := height - 10
	if visible < 3 {
		visible = 3
	}
	start := 0
	if s.cursor >= visible {
		start = s.cursor - visible + 1
	}
	for i := start; i < len(problems) && i < start+visible; i++ {
		p := problems[i]
		line := fmt.Sprintf("%2d. %d %s %d = %d", i+1, p.A, p.Op, p.B, p.Answer)
		if i == s.cursor && !s.adding {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = theme.Unselected.Render("  " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if s.adding {
		b.WriteString("\n")
		form := fmt.Sprintf("%s  %s  %s",
			s.inputs[0].View(), s.inputs[1].View(), s.inputs[2].View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render("New question")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.ErrorText(s.errMsg)))
		b.WriteString("\n")
	} else if s.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(s.status)))
		b.WriteString("\n")
	}

	return b.String()
}
