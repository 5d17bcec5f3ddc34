package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type appKeyMap struct {
	Quit key.Binding
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// loginKeyMap drives the login screen. Back is only live once a link was sent.
type loginKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newLoginKeyMap() loginKeyMap {
	return loginKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to login")),
		Quit:   newAppKeyMap().Quit,
	}
}

func (k loginKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Back, k.Quit}
}

func (k loginKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Next, k.Prev}, {k.Back, k.Quit}}
}

// alertKeyMap is active while an alert covers the screen.
type alertKeyMap struct {
	Dismiss key.Binding
}

func newAlertKeyMap() alertKeyMap {
	return alertKeyMap{
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),
	}
}

func (k alertKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

func (k alertKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type homeKeyMap struct {
	Logout key.Binding
	Quit   key.Binding
}

func newHomeKeyMap() homeKeyMap {
	return homeKeyMap{
		Logout: key.NewBinding(key.WithKeys("enter", "l"), key.WithHelp("enter", "logout")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Logout, k.Quit}
}

func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var (
	_ help.KeyMap = loginKeyMap{}
	_ help.KeyMap = alertKeyMap{}
	_ help.KeyMap = homeKeyMap{}
)
