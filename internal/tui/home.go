package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rh-mithu/rizon-client/internal/navigation"
	"github.com/rh-mithu/rizon-client/internal/ui/components"
)

const (
	homeTitle   = "Home Screen"
	homeMessage = "You are signed in."
	logoutLabel = "Logout"
)

// HomeScreen is shown while the session is authenticated.
type HomeScreen struct {
	frame
	deps screenDeps
	keys homeKeyMap
}

func newHomeScreen(deps screenDeps) *HomeScreen {
	return &HomeScreen{
		frame: newFrame(),
		deps:  deps,
		keys:  newHomeKeyMap(),
	}
}

func (s *HomeScreen) Init() tea.Cmd { return nil }

func (s *HomeScreen) Kind() navigation.Screen { return navigation.ScreenHome }

// Update handles messages for the home screen.
func (s *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return s.handleKeyPress(msg)
	}
	return s, nil
}

func (s *HomeScreen) handleKeyPress(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Logout):
		s.deps.session.Logout()
		return s, sessionChangedCmd(false)
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit
	}
	return s, nil
}

// View renders the home screen.
func (s *HomeScreen) View() string {
	card := components.NewCard(
		components.NewText(homeMessage),
		components.PrimaryButton(logoutLabel).
			WithFocused(true).
			WithWidth(contentWidth-6),
	).WithTitle(homeTitle)

	return s.render(s.deps.theme, card, s.keys)
}

var _ Screen = (*HomeScreen)(nil)
