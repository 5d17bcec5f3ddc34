package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rh-mithu/rizon-client/internal/auth"
	"github.com/rh-mithu/rizon-client/internal/logger"
	"github.com/rh-mithu/rizon-client/internal/navigation"
	"github.com/rh-mithu/rizon-client/internal/ui/components"
)

const windowTitle = "Rizon"

// Options configures the app.
type Options struct {
	Theme  components.Theme
	Logger *logger.Logger
	// Links accepts pasted login links. Built from the session when nil.
	Links *auth.LinkHandler
	// InitialLink is handled once the program starts.
	InitialLink string
}

// App is the root model. It owns the route and mounts the screen for it.
type App struct {
	session *auth.Session
	links   *auth.LinkHandler
	deps    screenDeps
	logger  *logger.Logger
	keys    appKeyMap

	route       navigation.Route
	screen      Screen
	initialLink string
	width       int
	height      int
}

// NewApp builds the root model on the auth route. It panics when session is nil.
func NewApp(session *auth.Session, opts Options) App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithFields(map[string]any{"component": "tui"})

	theme := opts.Theme
	if theme.Name == "" {
		theme = components.DefaultTheme()
	}

	session.OnChange(func(authenticated bool) {
		log.WithFields(map[string]any{"authenticated": authenticated}).Info("session changed")
	})

	links := opts.Links
	if links == nil {
		links = auth.NewLinkHandler(session, log)
	}

	a := App{
		session:     session,
		links:       links,
		deps:        screenDeps{session: session, theme: theme, logger: log},
		logger:      log,
		keys:        newAppKeyMap(),
		route:       navigation.Initial(),
		initialLink: opts.InitialLink,
	}
	a.screen = a.mount(a.route)
	return a
}

// Route returns the active route.
func (a App) Route() navigation.Route {
	return a.route
}

// Screen returns the mounted screen.
func (a App) Screen() Screen {
	return a.screen
}

// Init starts the mounted screen and queues any startup link.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(windowTitle), a.screen.Init()}
	if a.session.IsAuthenticated() {
		cmds = append(cmds, sessionChangedCmd(true))
	}
	if a.initialLink != "" {
		cmds = append(cmds, linkReceivedCmd(a.initialLink))
	}
	return tea.Batch(cmds...)
}

// Update routes messages to the mounted screen and remounts on route changes.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case SessionChangedMsg:
		return a.sync()
	case LinkReceivedMsg:
		if err := a.links.Handle(msg.Raw); err != nil {
			return a.forward(LinkRejectedMsg{Err: err})
		}
		return a.sync()
	}

	return a.forward(msg)
}

func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.screen, cmd = a.screen.Update(msg)
	return a, cmd
}

// sync re-resolves the route from the session and remounts when it moved.
func (a App) sync() (tea.Model, tea.Cmd) {
	route := navigation.Resolve(a.session.IsAuthenticated())
	if route == a.route {
		return a, nil
	}

	a.logger.WithFields(map[string]any{
		"from": a.route.String(),
		"to":   route.String(),
	}).Info("route changed")

	a.route = route
	a.screen = a.mount(route)
	return a, a.screen.Init()
}

func (a App) mount(route navigation.Route) Screen {
	var screen Screen
	switch route.Root() {
	case navigation.ScreenHome:
		screen = newHomeScreen(a.deps)
	default:
		screen = newLoginScreen(a.deps)
	}
	screen.SetSize(a.width, a.height)
	return screen
}

// View renders the mounted screen.
func (a App) View() string {
	return a.screen.View()
}

var _ tea.Model = App{}
