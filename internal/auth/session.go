// Package auth owns the in-memory authentication state of one program run
// and the handling of login links received by email.
package auth

import (
	"context"
	"sync"
)

const outsideProviderMessage = "auth: session used outside of its provider"

// LinkRequester asks the backend to send a login link.
type LinkRequester interface {
	RequestLoginLink(ctx context.Context, email string) error
}

// Session holds whether the user is signed in. It starts signed out and is
// never persisted. The zero value is not usable; construct with NewSession.
type Session struct {
	mu            sync.RWMutex
	authenticated bool
	requester     LinkRequester
	observers     []func(bool)
}

// NewSession returns a signed-out session backed by requester.
func NewSession(requester LinkRequester) *Session {
	if requester == nil {
		panic("auth: NewSession requires a non-nil LinkRequester")
	}
	return &Session{requester: requester}
}

// IsAuthenticated reports the current flag.
func (s *Session) IsAuthenticated() bool {
	s.mustProvide()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Login marks the session as signed in.
func (s *Session) Login() {
	s.set(true)
}

// Logout marks the session as signed out.
func (s *Session) Logout() {
	s.set(false)
}

// RequestLoginLink forwards to the backend. It never changes the flag; the
// session becomes authenticated only once a login link is handled.
func (s *Session) RequestLoginLink(ctx context.Context, email string) error {
	s.mustProvide()
	return s.requester.RequestLoginLink(ctx, email)
}

// OnChange registers fn to run after every transition of the flag. Setting
// the flag to its current value is not a transition.
func (s *Session) OnChange(fn func(authenticated bool)) {
	s.mustProvide()
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Session) set(value bool) {
	s.mustProvide()

	s.mu.Lock()
	if s.authenticated == value {
		s.mu.Unlock()
		return
	}
	s.authenticated = value
	observers := append([]func(bool){}, s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(value)
	}
}

func (s *Session) mustProvide() {
	if s == nil {
		panic(outsideProviderMessage)
	}
}
