package tui

// Session Messages

// SessionChangedMsg asks the app to re-resolve its route after a screen
// changed the session on the update loop.
type SessionChangedMsg struct {
	Authenticated bool
}

// LinkReceivedMsg carries a raw login link, pasted or passed on startup.
type LinkReceivedMsg struct {
	Raw string
}

// LinkRejectedMsg reports that a login link could not be accepted.
type LinkRejectedMsg struct {
	Err error
}

// Request Messages

// LinkRequestedMsg is the outcome of a request-link call. MountID ties it to
// the login screen that started it so a remounted screen ignores stale results.
type LinkRequestedMsg struct {
	MountID uint64
	Email   string
	Err     error
}
