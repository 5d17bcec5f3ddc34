package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rh-mithu/rizon-client/internal/auth"
	"github.com/rh-mithu/rizon-client/internal/logger"
)

// requestLinkCmd asks the backend for a login link off the update loop.
func requestLinkCmd(session *auth.Session, mountID uint64, email string) tea.Cmd {
	return func() tea.Msg {
		ctx := logger.WithCorrelationID(context.Background(), logger.NewCorrelationID())
		err := session.RequestLoginLink(ctx, email)
		return LinkRequestedMsg{MountID: mountID, Email: email, Err: err}
	}
}

// sessionChangedCmd notifies the app that the session flag was just written.
func sessionChangedCmd(authenticated bool) tea.Cmd {
	return func() tea.Msg {
		return SessionChangedMsg{Authenticated: authenticated}
	}
}

// linkReceivedCmd routes a raw login link through the app.
func linkReceivedCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		return LinkReceivedMsg{Raw: raw}
	}
}
