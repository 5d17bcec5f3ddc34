package components

import (
	"github.com/rh-mithu/rizon-client/internal/ui"
)

const (
	defaultAlertHint = "enter OK"
	maxAlertWidth    = 48
)

// Alert is a modal message box. While shown it captures input until the
// user acknowledges it.
type Alert struct {
	BaseComponent
	title   string
	message string
	hint    string
	icon    string
	variant AlertVariant
}

// NewAlert creates a new alert with the given message.
func NewAlert(title, message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		title:         title,
		message:       message,
		hint:          defaultAlertHint,
		variant:       AlertVariantInfo,
		icon:          "ℹ",
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	heading := a.icon + " " + a.title
	if a.title == "" {
		heading = a.icon
	}

	titleText := TitleText(heading)
	switch a.variant {
	case AlertVariantError:
		titleText.WithAppliers(Typography(TypographyVariantTitle), Foreground(PaletteDanger))
	case AlertVariantSuccess:
		titleText.WithAppliers(Typography(TypographyVariantTitle), Foreground(PaletteSuccess))
	}

	children := []ui.Renderable{titleText, NewText(a.message)}
	if a.hint != "" {
		children = append(children, CaptionText(a.hint))
	}

	width := maxAlertWidth
	if ctx.Constraints.MaxWidth > 0 && ctx.Constraints.MaxWidth < width {
		width = ctx.Constraints.MaxWidth
	}

	container := NewContainer(children...).
		WithBorder(theme.Borders.Rounded).
		WithPadding(SymmetricSpacing(SpacingValue(theme, SpacingSizeExtraSmall), SpacingValue(theme, SpacingSizeMedium))).
		WithWidth(width).
		WithGap(1).
		WithAppliers(Background(PaletteSurface))

	if strategy := theme.Variants.Get(a.variant); strategy != nil {
		container.WithAppliers(strategy.Apply)
	}
	if a.strategy != nil {
		container.WithAppliers(a.strategy.Apply)
	}

	return container.ViewWithContext(ctx)
}

// WithVariant sets the alert variant and its icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant

	switch variant {
	case AlertVariantSuccess:
		a.icon = "✓"
	case AlertVariantError:
		a.icon = "✗"
	case AlertVariantInfo:
		a.icon = "ℹ"
	}

	return a
}

// WithHint replaces the acknowledge hint. An empty hint hides it.
func (a *Alert) WithHint(hint string) *Alert {
	a.hint = hint
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Title returns the alert title.
func (a *Alert) Title() string {
	return a.title
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// Variant returns the alert variant.
func (a *Alert) Variant() AlertVariant {
	return a.variant
}

// ErrorAlert creates an error alert.
func ErrorAlert(title, message string) *Alert {
	return NewAlert(title, message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(title, message string) *Alert {
	return NewAlert(title, message).WithVariant(AlertVariantInfo)
}

// SuccessAlert creates a success alert.
func SuccessAlert(title, message string) *Alert {
	return NewAlert(title, message).WithVariant(AlertVariantSuccess)
}
