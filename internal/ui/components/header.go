package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is a screen heading: a title and an optional subtitle underneath.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	align    lipgloss.Position
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
		align:         lipgloss.Center,
	}
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	title := TitleText(h.title).ViewWithContext(ctx)
	title = h.ComputeStyle(ctx.Theme).Render(title)
	if h.subtitle == "" {
		return title
	}

	return lipgloss.JoinVertical(
		h.align,
		title,
		SubtitleText(h.subtitle).ViewWithContext(ctx),
	)
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAlign sets how title and subtitle line up.
func (h *Header) WithAlign(align lipgloss.Position) *Header {
	h.align = align
	return h
}

// WithAppliers applies theme-based style modifiers to the title.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
