package login

import (
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
	"github.com/abhisek/mathdrill/internal/userstore"
)

// SuccessMsg is emitted when a user has authenticated. The root model
// reacts by switching to the home screen.
type SuccessMsg struct {
	User string
}

const (
	focusUser = iota
	focusPass
)

// LoginScreen collects credentials and authenticates against the user store.
type LoginScreen struct {
	users  *userstore.Store
	user   components.TextInput
	pass   components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen.
func New(users *userstore.Store) *LoginScreen {
	user := components.NewTextInput("username", false, 24)
	pass := components.NewTextInput("password", false, 24)
	pass.Model.EchoMode = textinput.EchoPassword
	pass.Blur()

	return &LoginScreen{
		users: users,
		user:  user,
		pass:  pass,
	}
}

func (s *LoginScreen) Title() string {
	return "Sign In"
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.user.Focus()
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+R", Description: "Register"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			s.toggleFocus()
			return s, nil

		case "enter":
			if s.focus == focusUser {
				s.toggleFocus()
				return s, nil
			}
			return s, s.attempt(s.users.Login)

		case "ctrl+r":
			return s, s.attempt(s.users.Register)
		}
	}

	var cmd tea.Cmd
	if s.focus == focusUser {
		s.user, cmd = s.user.Update(msg)
	} else {
		s.pass, cmd = s.pass.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) toggleFocus() {
	if s.focus == focusUser {
		s.focus = focusPass
		s.user.Blur()
		s.pass.Focus()
	} else {
		s.focus = focusUser
		s.pass.Blur()
		s.user.Focus()
	}
}

// attempt runs auth (login or register) and emits SuccessMsg on success.
func (s *LoginScreen) attempt(auth func(user, pass string) error) tea.Cmd {
	user := strings.TrimSpace(s.user.Value())
	if err := auth(user, s.pass.Value()); err != nil {
		s.errMsg = authMessage(err)
		return nil
	}
	s.errMsg = ""
	return func() tea.Msg {
		return SuccessMsg{User: user}
	}
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, userstore.ErrEmptyCredentials):
		return "Username and password must not be empty"
	case errors.Is(err, userstore.ErrBadCredentials):
		return "Wrong password"
	case errors.Is(err, userstore.ErrUserExists):
		return "That username is already taken"
	default:
		return "Could not read the user file"
	}
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Primary School Math Test")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Sign in to start practicing")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Username  ")+s.user.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Password  ")+s.pass.View()))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.ErrorText(s.errMsg)))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("New users are registered automatically on sign-in")))

	return b.String()
}
