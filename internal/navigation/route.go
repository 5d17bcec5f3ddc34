// Package navigation decides which flow of screens is mounted.
package navigation

// Route identifies one of the two top-level flows.
type Route string

const (
	// RouteAuth is the signed-out flow.
	RouteAuth Route = "auth"
	// RouteMain is the signed-in flow.
	RouteMain Route = "main"
)

// Screen names a screen inside a route's stack.
type Screen string

const (
	ScreenLogin Screen = "login"
	ScreenHome  Screen = "home"
)

// Initial is the route every run starts on. Sessions are not persisted.
func Initial() Route {
	return RouteAuth
}

// Resolve maps the session flag to the route that must be mounted.
func Resolve(authenticated bool) Route {
	if authenticated {
		return RouteMain
	}
	return RouteAuth
}

// Stack returns the screens mounted for the route, root first.
func (r Route) Stack() []Screen {
	switch r {
	case RouteAuth:
		return []Screen{ScreenLogin}
	case RouteMain:
		return []Screen{ScreenHome}
	default:
		panic("navigation: unknown route " + string(r))
	}
}

// Root returns the first screen of the route's stack.
func (r Route) Root() Screen {
	return r.Stack()[0]
}

// String returns the string representation of the route
func (r Route) String() string {
	return string(r)
}
