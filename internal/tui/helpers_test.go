package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/rh-mithu/rizon-client/internal/auth"
)

type fakeRequester struct {
	mu     sync.Mutex
	emails []string
	err    error
}

func (f *fakeRequester) RequestLoginLink(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, email)
	return f.err
}

func (f *fakeRequester) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.emails...)
}

func newTestApp(t *testing.T, requester auth.LinkRequester) (App, *auth.Session) {
	t.Helper()
	session := auth.NewSession(requester)
	return NewApp(session, Options{}), session
}

func update(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := app.Update(msg)
	updated, ok := next.(App)
	require.True(t, ok, "Update must return an App")
	return updated, cmd
}

func loginScreen(t *testing.T, app App) *LoginScreen {
	t.Helper()
	screen, ok := app.Screen().(*LoginScreen)
	require.True(t, ok, "expected the login screen, got %T", app.Screen())
	return screen
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
)

// drain runs cmd and any batched children, keeping the messages that arrive
// quickly. Timer driven commands such as cursor blinks are dropped.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, drain(t, c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(250 * time.Millisecond):
		return nil
	}
}

func findMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	for _, msg := range drain(t, cmd) {
		if found, ok := msg.(T); ok {
			return found
		}
	}
	var zero T
	require.Failf(t, "message not produced", "no %T in command output", zero)
	return zero
}

func signedLink(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return "rizon://auth/verify?token=" + signed
}
