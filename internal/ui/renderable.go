// Package ui holds contracts shared by the component library and the screens.
package ui

// Renderable is anything that can draw itself as a terminal string.
type Renderable interface {
	View() string
}
