package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rh-mithu/rizon-client/internal/auth"
	"github.com/rh-mithu/rizon-client/internal/navigation"
	"github.com/rh-mithu/rizon-client/internal/ui"
	"github.com/rh-mithu/rizon-client/internal/ui/components"
	apperrors "github.com/rh-mithu/rizon-client/pkg/errors"
)

// LoginState is the phase of the login screen.
type LoginState int

const (
	LoginIdle LoginState = iota
	LoginSubmitting
	LoginLinkSent
)

func (s LoginState) String() string {
	switch s {
	case LoginIdle:
		return "idle"
	case LoginSubmitting:
		return "submitting"
	case LoginLinkSent:
		return "link_sent"
	default:
		return "unknown"
	}
}

const (
	loginTitle       = "Welcome Back"
	loginSubtitle    = "Sign in with your email to continue"
	emailLabel       = "Email"
	emailPlaceholder = "hello@example.com"
	sendLinkLabel    = "Send Login Link"

	sentTitle       = "Check your email"
	sentSubtitle    = "We sent a login link to"
	openMailLabel   = "Open Email App"
	openingMail     = "Opening email app..."
	linkLabel       = "Login link"
	linkPlaceholder = "Paste the link from your email"
	backLabel       = "← Back to login"
	emptyLinkText   = "Paste the login link from your email"

	errorTitle        = "Error"
	infoTitle         = "Info"
	sendFailedMessage = "Failed to send login link"
	linkFailedMessage = "That login link could not be used"
)

type focusTarget int

const (
	targetEmail focusTarget = iota
	targetSend
	targetOpenMail
	targetLink
	targetBack
)

var (
	idleRing     = []focusTarget{targetEmail, targetSend}
	linkSentRing = []focusTarget{targetOpenMail, targetLink, targetBack}
)

// LoginScreen asks for an email, requests a login link and then waits for
// the link to be pasted back.
type LoginScreen struct {
	frame
	deps    screenDeps
	mountID uint64
	keys    loginKeyMap
	alerts  alertKeyMap

	state   LoginState
	focus   focusTarget
	email   *components.Input
	link    *components.Input
	spinner spinner.Model
	sentTo  string
	alert   *alertState
}

func newLoginScreen(deps screenDeps) *LoginScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot

	screen := &LoginScreen{
		frame:   newFrame(),
		deps:    deps,
		mountID: nextMountID(),
		keys:    newLoginKeyMap(),
		alerts:  newAlertKeyMap(),
		state:   LoginIdle,
		focus:   targetEmail,
		email: components.NewInput(emailPlaceholder).
			WithLabel(emailLabel).
			WithIcon("✉").
			WithWidth(contentWidth),
		link: components.NewInput(linkPlaceholder).
			WithLabel(linkLabel).
			WithIcon("🔗").
			WithWidth(contentWidth).
			WithCharLimit(4096),
		spinner: s,
	}
	screen.email.Focus()
	return screen
}

// Init starts the cursor in the email field.
func (s *LoginScreen) Init() tea.Cmd {
	return s.email.Focus()
}

// Kind reports which screen this is.
func (s *LoginScreen) Kind() navigation.Screen {
	return navigation.ScreenLogin
}

// State returns the current phase.
func (s *LoginScreen) State() LoginState {
	return s.state
}

// Email returns the text in the email field.
func (s *LoginScreen) Email() string {
	return s.email.Value()
}

// SentTo returns the address the last link was sent to.
func (s *LoginScreen) SentTo() string {
	return s.sentTo
}

// Alert returns the title and message of the open alert, if any.
func (s *LoginScreen) Alert() (title, message string, ok bool) {
	if s.alert == nil {
		return "", "", false
	}
	return s.alert.title, s.alert.message, true
}

// Update handles messages for the login screen.
func (s *LoginScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case spinner.TickMsg:
		if s.state != LoginSubmitting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case LinkRequestedMsg:
		return s.handleLinkRequested(msg)

	case LinkRejectedMsg:
		s.showAlert(errorTitle, apperrors.UserMessage(msg.Err, linkFailedMessage), components.AlertVariantError)
		return s, nil

	case tea.KeyMsg:
		return s.handleKeyPress(msg)
	}

	return s, s.updateFocusedInput(msg)
}

func (s *LoginScreen) handleLinkRequested(msg LinkRequestedMsg) (Screen, tea.Cmd) {
	if msg.MountID != s.mountID || s.state != LoginSubmitting {
		return s, nil
	}

	if msg.Err != nil {
		s.state = LoginIdle
		s.deps.logger.WithFields(map[string]any{"state": s.state.String()}).Error(msg.Err, "login link request failed")
		s.showAlert(errorTitle, apperrors.UserMessage(msg.Err, sendFailedMessage), components.AlertVariantError)
		return s, s.setFocus(s.focus)
	}

	s.state = LoginLinkSent
	s.sentTo = msg.Email
	s.link.Reset()
	return s, s.setFocus(targetLink)
}

func (s *LoginScreen) handleKeyPress(msg tea.KeyMsg) (Screen, tea.Cmd) {
	if s.alert != nil {
		if key.Matches(msg, s.alerts.Dismiss) {
			s.alert = nil
		}
		return s, nil
	}

	switch s.state {
	case LoginIdle:
		return s.handleIdleKeys(msg)
	case LoginLinkSent:
		return s.handleLinkSentKeys(msg)
	default:
		return s, nil
	}
}

func (s *LoginScreen) handleIdleKeys(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Next):
		return s, s.cycleFocus(1)
	case key.Matches(msg, s.keys.Prev):
		return s, s.cycleFocus(-1)
	case key.Matches(msg, s.keys.Submit):
		return s.submit()
	}
	return s, s.updateFocusedInput(msg)
}

func (s *LoginScreen) handleLinkSentKeys(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Next):
		return s, s.cycleFocus(1)
	case key.Matches(msg, s.keys.Prev):
		return s, s.cycleFocus(-1)
	case key.Matches(msg, s.keys.Back):
		return s, s.backToLogin()
	case key.Matches(msg, s.keys.Submit):
		switch s.focus {
		case targetOpenMail:
			s.showAlert(infoTitle, openingMail, components.AlertVariantInfo)
			return s, nil
		case targetBack:
			return s, s.backToLogin()
		default:
			return s.submitLink()
		}
	}
	return s, s.updateFocusedInput(msg)
}

func (s *LoginScreen) submit() (Screen, tea.Cmd) {
	email := s.email.Value()
	if err := auth.ValidateEmail(email); err != nil {
		s.showAlert(errorTitle, apperrors.UserMessage(err, auth.EmptyEmailMessage), components.AlertVariantError)
		return s, nil
	}

	s.state = LoginSubmitting
	return s, tea.Batch(
		requestLinkCmd(s.deps.session, s.mountID, email),
		s.spinner.Tick,
	)
}

func (s *LoginScreen) submitLink() (Screen, tea.Cmd) {
	raw := strings.TrimSpace(s.link.Value())
	if raw == "" {
		s.showAlert(errorTitle, emptyLinkText, components.AlertVariantError)
		return s, nil
	}
	return s, linkReceivedCmd(raw)
}

func (s *LoginScreen) backToLogin() tea.Cmd {
	s.state = LoginIdle
	s.sentTo = ""
	s.email.Reset()
	s.link.Reset()
	return s.setFocus(targetEmail)
}

func (s *LoginScreen) showAlert(title, message string, variant components.AlertVariant) {
	s.alert = &alertState{title: title, message: message, variant: variant}
}

func (s *LoginScreen) ring() []focusTarget {
	if s.state == LoginLinkSent {
		return linkSentRing
	}
	return idleRing
}

func (s *LoginScreen) cycleFocus(step int) tea.Cmd {
	ring := s.ring()
	idx := 0
	for i, target := range ring {
		if target == s.focus {
			idx = i
			break
		}
	}
	idx = (idx + step + len(ring)) % len(ring)
	return s.setFocus(ring[idx])
}

func (s *LoginScreen) setFocus(target focusTarget) tea.Cmd {
	s.focus = target
	s.email.Blur()
	s.link.Blur()

	switch target {
	case targetEmail:
		return s.email.Focus()
	case targetLink:
		return s.link.Focus()
	}
	return nil
}

// updateFocusedInput feeds msg to the focused field. Keys only arrive here
// from idle or link-sent handling; cursor blinks arrive in every state.
func (s *LoginScreen) updateFocusedInput(msg tea.Msg) tea.Cmd {
	switch s.focus {
	case targetEmail:
		return s.email.Update(msg)
	case targetLink:
		return s.link.Update(msg)
	}
	return nil
}

// View renders the login screen.
func (s *LoginScreen) View() string {
	if s.alert != nil {
		return s.render(s.deps.theme, s.alert.component(), s.alerts)
	}

	if s.state == LoginLinkSent {
		return s.render(s.deps.theme, s.linkSentView(), s.keys)
	}

	keys := s.keys
	keys.Back.SetEnabled(false)
	return s.render(s.deps.theme, s.idleView(), keys)
}

func (s *LoginScreen) idleView() ui.Renderable {
	send := components.PrimaryButton(sendLinkLabel).
		WithWidth(contentWidth).
		WithFocused(s.focus == targetSend).
		WithLoading(s.state == LoginSubmitting, s.spinner.View())

	return components.VStack(
		components.NewHeader(loginTitle).WithSubtitle(loginSubtitle),
		s.email,
		send,
	).WithGap(1)
}

func (s *LoginScreen) linkSentView() ui.Renderable {
	header := components.NewHeader(sentTitle).WithSubtitle(sentSubtitle)
	sentTo := components.NewText(s.sentTo).WithWeight(components.FontWeightBold)

	return components.VStack(
		components.VStack(header, sentTo).WithCrossAlign(components.CrossCenter),
		components.OutlineButton(openMailLabel).
			WithWidth(contentWidth).
			WithFocused(s.focus == targetOpenMail),
		components.NewDivider().WithCaption("or paste it here").WithWidth(contentWidth),
		s.link,
		components.SecondaryButton(backLabel).
			WithFocused(s.focus == targetBack),
	).WithGap(1)
}

var _ Screen = (*LoginScreen)(nil)
