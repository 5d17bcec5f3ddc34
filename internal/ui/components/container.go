package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rh-mithu/rizon-client/internal/ui"
)

// Container is a generic box that can hold children with border, padding, and styling.
type Container struct {
	BaseComponent
	children []ui.Renderable
	layout   *Stack
	border   lipgloss.Border
	padding  Spacing
	width    int
}

// NewContainer creates a new container with default settings.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)

	if c.border.Top != "" {
		style = style.BorderStyle(c.border)
	}

	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}

	childCtx := ctx
	if c.width > 0 {
		style = style.Width(c.width - style.GetHorizontalBorderSize())
		childCtx = ctx.WithConstraints(WithMaxWidth(c.width - style.GetHorizontalFrameSize()))
	}

	var content string
	if len(c.children) > 0 {
		content = c.layout.ViewWithContext(childCtx)
	}

	return style.Render(content)
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithPadding sets the padding using a Spacing value object.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithWidth fixes the outer width in cells.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithCrossAlign sets the cross-axis alignment.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.layout.WithCrossAlign(align)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.children
}

// ScreenContainer fills the whole terminal with the theme background and
// centres its content, inset by the large horizontal spacing token.
type ScreenContainer struct {
	BaseComponent
	content ui.Renderable
	width   int
	height  int
}

// NewScreenContainer wraps content in a full-screen frame.
func NewScreenContainer(content ui.Renderable) *ScreenContainer {
	return &ScreenContainer{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// WithSize sets the terminal size. Zero values render at content size.
func (s *ScreenContainer) WithSize(width, height int) *ScreenContainer {
	s.width = width
	s.height = height
	return s
}

// View renders the screen.
func (s *ScreenContainer) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the screen with the given theme.
func (s *ScreenContainer) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	inset := SpacingValue(theme, SpacingSizeLarge)

	childCtx := ctx
	if s.width > 0 {
		childCtx = ctx.WithConstraints(WithMaxWidth(s.width - 2*inset))
	}

	body := render(s.content, childCtx)
	body = s.ComputeStyle(theme).
		Padding(0, inset).
		Background(theme.Colors.Background).
		Foreground(theme.Colors.Text.Primary).
		Render(body)

	if s.width <= 0 || s.height <= 0 {
		return body
	}

	return lipgloss.Place(
		s.width,
		s.height,
		lipgloss.Center,
		lipgloss.Center,
		body,
		lipgloss.WithWhitespaceBackground(theme.Colors.Background),
	)
}
