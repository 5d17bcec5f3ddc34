package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
	weight  FontWeight
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if t.weight != 0 {
		style = style.Inherit(WeightStyle(ctx.Theme, t.weight))
	}
	if limit := ctx.Constraints.MaxWidth; limit > 0 && lipgloss.Width(t.content) > limit {
		style = style.Width(limit)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// WithWeight selects a font weight token.
func (t *Text) WithWeight(weight FontWeight) *Text {
	t.weight = weight
	return t
}

// Theme-aware text constructor helpers

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// SubtitleText creates subtitle text using theme typography.
func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantSubtitle))
}

// CaptionText creates small secondary text.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCaption))
}

// AccentText creates text in the accent colour.
func AccentText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantAccent))
}

// ErrorText creates text in the error colour.
func ErrorText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTextSm), Foreground(PaletteDanger))
}
