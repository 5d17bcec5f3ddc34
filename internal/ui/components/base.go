package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rh-mithu/rizon-client/internal/ui"
)

// BaseComponent holds the raw style and the themed appliers of a component.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy turns a base style into a themed one.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a single themed style step.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy runs its steps in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the component style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces every themed step.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers runs appliers after the current steps.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	var funcs []StyleFunc
	switch current := b.strategy.(type) {
	case CompositeStrategy:
		funcs = append(funcs, current.funcs...)
	case nil:
	default:
		funcs = append(funcs, current.Apply)
	}
	b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
}

// Spacing is padding in cells, top, right, bottom, left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// Constraints caps the rendered size. Values <= 0 mean no cap.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// RenderContext carries the theme and size caps down the component tree.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
}

func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable renders differently depending on its context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

func render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// CrossAxisAlignment places children across a stack's main axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
