package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestButtonRendersLabel(t *testing.T) {
	for _, b := range []*Button{PrimaryButton("Send Login Link"), SecondaryButton("Back"), OutlineButton("Open Email App")} {
		out := b.View()
		assert.Contains(t, out, b.Label())
		assert.Contains(t, out, "╭", "buttons use the rounded border")
	}
}

func TestButtonLoadingReplacesLabel(t *testing.T) {
	b := PrimaryButton("Send Login Link").WithLoading(true, "⣾")

	out := b.View()
	assert.Contains(t, out, "⣾")
	assert.NotContains(t, out, "Send Login Link")
	assert.True(t, b.IsLoading())
	assert.False(t, b.Pressable(), "a loading button ignores presses")

	b.WithLoading(false, "")
	assert.Contains(t, b.View(), "Send Login Link")
	assert.True(t, b.Pressable())
}

func TestButtonDisabled(t *testing.T) {
	b := PrimaryButton("Go").WithDisabled(true)
	assert.False(t, b.Pressable())
	assert.Contains(t, b.View(), "Go")
}

func TestButtonFocusUsesThickBorder(t *testing.T) {
	b := PrimaryButton("Go")
	assert.NotContains(t, b.View(), "┏")

	b.WithFocused(true)
	assert.True(t, b.IsFocused())
	assert.Contains(t, b.View(), "┏")

	b.WithDisabled(true)
	assert.NotContains(t, b.View(), "┏", "disabled buttons do not show focus")
}

func TestButtonWidth(t *testing.T) {
	out := PrimaryButton("Go").WithWidth(30).View()
	assert.Equal(t, 30, lipgloss.Width(out))
}

func TestButtonVariant(t *testing.T) {
	assert.Equal(t, ButtonVariantOutline, OutlineButton("x").Variant())
	assert.Equal(t, ButtonVariantPrimary, NewButton("x").Variant())
}
