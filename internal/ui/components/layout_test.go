package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/rh-mithu/rizon-client/internal/ui"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

type plain string

func (p plain) View() string { return string(p) }

func TestVStackGap(t *testing.T) {
	out := VStack(plain("a"), plain("b")).WithGap(1).View()
	lines := splitLines(out)
	assert.Len(t, lines, 3)
	assert.Equal(t, "a", strings.TrimSpace(lines[0]))
	assert.Equal(t, "", strings.TrimSpace(lines[1]))
	assert.Equal(t, "b", strings.TrimSpace(lines[2]))
}

func TestHStack(t *testing.T) {
	out := HStack(plain("a"), plain("b")).WithGap(2).View()
	assert.Equal(t, "a  b", out)
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	out := VStack(plain("a"), nil, plain(""), plain("b")).View()
	assert.Len(t, splitLines(out), 2)
}

func TestTextWrapsToConstraint(t *testing.T) {
	ctx := DefaultContext().WithConstraints(WithMaxWidth(10))
	out := NewText("the quick brown fox jumps").ViewWithContext(ctx)
	for _, line := range splitLines(out) {
		assert.LessOrEqual(t, lipgloss.Width(line), 10)
	}
	assert.Greater(t, len(splitLines(out)), 1)
}

func TestTextShortContentIsNotPadded(t *testing.T) {
	ctx := DefaultContext().WithConstraints(WithMaxWidth(40))
	assert.Equal(t, "Home", NewText("Home").ViewWithContext(ctx))
}

func TestContainerBorderAndWidth(t *testing.T) {
	out := NewContainer(plain("inside")).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(SymmetricSpacing(0, 1)).
		WithWidth(20).
		View()

	assert.Contains(t, out, "inside")
	assert.Contains(t, out, "╭")
	assert.Equal(t, 20, lipgloss.Width(out))
}

func TestScreenContainerFillsTerminal(t *testing.T) {
	out := NewScreenContainer(plain("hello")).WithSize(60, 12).View()
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Equal(t, 12, lipgloss.Height(out))
	assert.Contains(t, out, "hello")
}

func TestScreenContainerWithoutSize(t *testing.T) {
	out := NewScreenContainer(plain("hello")).View()
	assert.Contains(t, out, "hello")
	assert.Equal(t, 1, lipgloss.Height(out))
}

func TestHeader(t *testing.T) {
	h := NewHeader("Welcome to Rizon").WithSubtitle("Sign in with a magic link")
	out := h.View()
	assert.Contains(t, out, "Welcome to Rizon")
	assert.Contains(t, out, "Sign in with a magic link")
	assert.Equal(t, 2, lipgloss.Height(out))
	assert.Equal(t, "Welcome to Rizon", h.Title())
}

func TestDividerCaption(t *testing.T) {
	out := NewDivider().WithCaption("or").WithWidth(20).View()
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Contains(t, out, " or ")
	assert.True(t, strings.HasPrefix(out, "─"))

	assert.Equal(t, strings.Repeat("─", 5), NewDivider().WithWidth(5).View())
}

func TestCard(t *testing.T) {
	out := NewCard(plain("body")).WithTitle("Signed in").View()
	assert.Contains(t, out, "Signed in")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╭")
}

func TestAlert(t *testing.T) {
	a := ErrorAlert("Error", "invalid email")
	out := a.View()

	assert.Contains(t, out, "✗ Error")
	assert.Contains(t, out, "invalid email")
	assert.Contains(t, out, defaultAlertHint)
	assert.LessOrEqual(t, lipgloss.Width(out), maxAlertWidth)
	assert.Equal(t, AlertVariantError, a.Variant())
	assert.Equal(t, "invalid email", a.Message())
}

func TestAlertVariantsAndHint(t *testing.T) {
	assert.Contains(t, InfoAlert("Info", "Opening email app...").View(), "ℹ Info")
	assert.Contains(t, SuccessAlert("Done", "ok").View(), "✓ Done")

	out := InfoAlert("", "no title").WithHint("").View()
	assert.NotContains(t, out, defaultAlertHint)
}

func TestAlertRespectsNarrowConstraint(t *testing.T) {
	ctx := DefaultContext().WithConstraints(WithMaxWidth(24))
	out := ErrorAlert("Error", "a fairly long message that has to wrap").ViewWithContext(ctx)
	assert.LessOrEqual(t, lipgloss.Width(out), 24)
}

var _ ui.Renderable = (*Input)(nil)
var _ ContextualRenderable = (*ScreenContainer)(nil)
