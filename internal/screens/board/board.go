package board

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/leaderboard"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// BoardScreen shows the top scores.
type BoardScreen struct {
	board *leaderboard.Board
}

var _ screen.Screen = (*BoardScreen)(nil)

// New creates a BoardScreen.
func New(board *leaderboard.Board) *BoardScreen {
	return &BoardScreen{board: board}
}

func (s *BoardScreen) Title() string {
	return "Leaderboard"
}

func (s *BoardScreen) Init() tea.Cmd {
	return nil
}

func (s *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *BoardScreen) View(width, height int) string {
	entries := s.board.View()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Top Scores")))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No results recorded yet")))
		b.WriteString("\n")
		return b.String()
	}

	header := fmt.Sprintf("%-4s %-16s %6s %8s", "#", "User", "Score", "Time")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(header)))
	b.WriteString("\n")
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", len(header)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	for i, e := range entries {
		line := fmt.Sprintf("%-4d %-16s %6d %7ds", i+1, e.Owner, e.Score, e.Seconds)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			rankStyle(i).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// rankStyle gives the top three ranks their medal colors.
func rankStyle(rank int) lipgloss.Style {
	switch rank {
	case 0:
		return lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	case 1:
		return lipgloss.NewStyle().Foreground(theme.Silver)
	case 2:
		return lipgloss.NewStyle().Foreground(theme.Bronze)
	}
	return theme.Body
}
