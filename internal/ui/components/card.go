package components

import (
	"github.com/rh-mithu/rizon-client/internal/ui"
)

// Card is a Container on the surface colour with a rounded border.
type Card struct {
	*Container
}

// NewCard creates a new card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).
		WithPadding(SymmetricSpacing(1, 2)).
		WithGap(1).
		WithAppliers(Background(PaletteSurface), Border(BorderVariantRounded), BorderColor(PaletteNeutral))

	return &Card{Container: container}
}

// WithTitle prepends a title line.
func (c *Card) WithTitle(title string) *Card {
	children := append([]ui.Renderable{TitleText(title)}, c.Children()...)
	gap := c.layout.gap
	c.children = children
	c.layout = VStack(children...).WithGap(gap)
	return c
}
