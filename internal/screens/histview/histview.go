package histview

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/history"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// HistoryScreen shows the user's past test transcripts, newest last,
// exactly as they were written to the history file.
type HistoryScreen struct {
	store *history.Store
	user  string

	lines  []string
	errMsg string
	offset int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for user.
func New(store *history.Store, user string) *HistoryScreen {
	return &HistoryScreen{store: store, user: user}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) Init() tea.Cmd {
	text, err := s.store.Read(s.user)
	switch {
	case errors.Is(err, history.ErrNoHistory):
		s.errMsg = "No tests taken yet"
	case err != nil:
		s.errMsg = "Could not read history: " + err.Error()
	default:
		s.lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	}
	return nil
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.lines)-1 {
				s.offset++
			}
		case "home", "g":
			s.offset = 0
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(s.errMsg)))
		b.WriteString("\n")
		return b.String()
	}

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	end := s.offset + visible
	if end > len(s.lines) {
		end = len(s.lines)
	}

	for _, line := range s.lines[s.offset:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(line)))
		b.WriteString("\n")
	}

	if end < len(s.lines) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("↓ more")))
		b.WriteString("\n")
	}

	return b.String()
}
