package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button renders a pressable action. While loading, the spinner frame
// replaces the label and the button does not accept presses.
type Button struct {
	BaseComponent
	label        string
	variant      ButtonVariant
	disabled     bool
	loading      bool
	focused      bool
	spinnerFrame string
	width        int
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
		spinnerFrame:  "…",
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	content := b.label
	if b.loading {
		content = b.spinnerFrame
	}

	style := b.computeStyle(ctx.Theme)
	if b.width > 0 {
		style = style.Width(b.width - style.GetHorizontalBorderSize()).Align(lipgloss.Center)
	}
	return style.Render(content)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme).
		Border(theme.Borders.Rounded).
		BorderForeground(theme.Colors.Border).
		Padding(0, SpacingValue(theme, SpacingSizeMedium))

	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	if b.focused && b.Pressable() {
		style = style.Border(theme.Borders.Thick).BorderForeground(theme.Colors.Text.Accent)
	}

	if !b.Pressable() {
		style = style.Faint(true)
	}

	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithLoading shows frame instead of the label while loading is true.
func (b *Button) WithLoading(loading bool, frame string) *Button {
	b.loading = loading
	if frame != "" {
		b.spinnerFrame = frame
	}
	return b
}

// WithFocused marks the button as the current keyboard target.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithWidth fixes the outer width of the button in cells.
func (b *Button) WithWidth(width int) *Button {
	b.width = width
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Variant returns the button variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsLoading reports whether the button shows its spinner.
func (b *Button) IsLoading() bool {
	return b.loading
}

// IsFocused reports whether the button is focused.
func (b *Button) IsFocused() bool {
	return b.focused
}

// Pressable reports whether a press should trigger the action.
func (b *Button) Pressable() bool {
	return !b.disabled && !b.loading
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// OutlineButton creates an outline button.
func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantOutline)
}
