package tui

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rh-mithu/rizon-client/internal/auth"
	"github.com/rh-mithu/rizon-client/internal/logger"
	"github.com/rh-mithu/rizon-client/internal/navigation"
	"github.com/rh-mithu/rizon-client/internal/ui"
	"github.com/rh-mithu/rizon-client/internal/ui/components"
)

// Screen is one mounted page of the app.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	Kind() navigation.Screen
	SetSize(width, height int)
}

// contentWidth caps the column every screen lays out in.
const contentWidth = 44

var mountSeq atomic.Uint64

func nextMountID() uint64 {
	return mountSeq.Add(1)
}

// screenDeps is what every screen is mounted with.
type screenDeps struct {
	session *auth.Session
	theme   components.Theme
	logger  *logger.Logger
}

// frame holds the size and help state shared by screens.
type frame struct {
	width  int
	height int
	help   help.Model
}

func newFrame() frame {
	return frame{help: help.New()}
}

func (f *frame) SetSize(width, height int) {
	f.width = width
	f.height = height
	f.help.Width = width
}

// render lays body and the help footer out on a full-screen container.
func (f frame) render(theme components.Theme, body ui.Renderable, keys help.KeyMap) string {
	footer := lipgloss.NewStyle().
		Foreground(theme.Colors.Text.Secondary).
		Render(f.help.View(keys))

	content := components.VStack(body, staticView(footer)).
		WithGap(1).
		WithCrossAlign(components.CrossCenter).
		WithConstraints(components.WithMaxWidth(contentWidth))

	ctx := components.DefaultContext().WithTheme(theme)
	return components.NewScreenContainer(content).
		WithSize(f.width, f.height).
		ViewWithContext(ctx)
}

// alertState is the modal shown over a screen until dismissed.
type alertState struct {
	title   string
	message string
	variant components.AlertVariant
}

func (a alertState) component() *components.Alert {
	return components.NewAlert(a.title, a.message).WithVariant(a.variant)
}

type staticView string

func (s staticView) View() string { return string(s) }
