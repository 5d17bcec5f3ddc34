package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 36

// Divider renders a horizontal rule, optionally with a caption in the middle.
type Divider struct {
	BaseComponent
	char    string
	caption string
	width   int
}

// NewDivider creates a divider drawn with "─".
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Colors.Border)

	if d.caption == "" {
		return style.Render(strings.Repeat(d.char, width))
	}

	label := " " + d.caption + " "
	rest := width - lipgloss.Width(label)
	if rest < 2 {
		return CaptionText(d.caption).ViewWithContext(ctx)
	}
	left := rest / 2
	right := rest - left

	return style.Render(strings.Repeat(d.char, left)) +
		CaptionText(label).ViewWithContext(ctx) +
		style.Render(strings.Repeat(d.char, right))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithCaption places text in the middle of the rule.
func (d *Divider) WithCaption(caption string) *Divider {
	d.caption = caption
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}
