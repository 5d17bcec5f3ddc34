package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	secretEcho      = '•'
	showSecretHint  = "ctrl+r show"
	hideSecretHint  = "ctrl+r hide"
	defaultInputLen = 36
)

// Input is a labelled text field backed by bubbles/textinput. Unlike the
// other components it is stateful and must receive key messages through
// Update while focused.
type Input struct {
	BaseComponent
	model      textinput.Model
	label      string
	icon       string
	errText    string
	secure     bool
	showSecret bool
	width      int
}

// NewInput creates an input with the given placeholder.
func NewInput(placeholder string) *Input {
	model := textinput.New()
	model.Placeholder = placeholder
	model.Prompt = ""
	model.CharLimit = 254

	in := &Input{
		BaseComponent: NewBaseComponent(),
		model:         model,
		width:         defaultInputLen,
	}
	in.model.Width = in.fieldWidth()
	return in
}

// WithLabel sets the caption above the field.
func (in *Input) WithLabel(label string) *Input {
	in.label = label
	return in
}

// WithIcon sets a glyph drawn before the value.
func (in *Input) WithIcon(icon string) *Input {
	in.icon = icon
	in.model.Width = in.fieldWidth()
	return in
}

// WithSecure masks the value until the visibility toggle is used.
func (in *Input) WithSecure(secure bool) *Input {
	in.secure = secure
	in.showSecret = false
	in.applyEcho()
	return in
}

// WithWidth sets the outer width of the field in cells.
func (in *Input) WithWidth(width int) *Input {
	if width > 0 {
		in.width = width
		in.model.Width = in.fieldWidth()
	}
	return in
}

// WithCharLimit bounds the length of the value.
func (in *Input) WithCharLimit(limit int) *Input {
	in.model.CharLimit = limit
	return in
}

// Focus gives the field keyboard focus and returns the cursor blink command.
func (in *Input) Focus() tea.Cmd {
	return in.model.Focus()
}

// Blur removes keyboard focus.
func (in *Input) Blur() {
	in.model.Blur()
}

// Focused reports whether the field has keyboard focus.
func (in *Input) Focused() bool {
	return in.model.Focused()
}

// Value returns the current text.
func (in *Input) Value() string {
	return in.model.Value()
}

// SetValue replaces the current text.
func (in *Input) SetValue(value string) {
	in.model.SetValue(value)
}

// Reset clears the text and the error.
func (in *Input) Reset() {
	in.model.Reset()
	in.errText = ""
}

// SetError shows message under the field. An empty message clears it.
func (in *Input) SetError(message string) {
	in.errText = message
}

// Error returns the message shown under the field.
func (in *Input) Error() string {
	return in.errText
}

// IsSecure reports whether the field masks its value.
func (in *Input) IsSecure() bool {
	return in.secure
}

// SecretVisible reports whether a secure value is currently shown in clear.
func (in *Input) SecretVisible() bool {
	return in.secure && in.showSecret
}

// ToggleSecret flips the visibility of a secure value. It is a no-op for
// ordinary fields.
func (in *Input) ToggleSecret() {
	if !in.secure {
		return
	}
	in.showSecret = !in.showSecret
	in.applyEcho()
}

// Update forwards msg to the text model while focused.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlR && in.model.Focused() {
		in.ToggleSecret()
		return nil
	}

	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)
	return cmd
}

// View renders the input.
func (in *Input) View() string {
	return in.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, the framed field and any error text.
func (in *Input) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	in.model.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Colors.Text.Secondary)
	in.model.TextStyle = lipgloss.NewStyle().Foreground(theme.Colors.Text.Primary)
	in.model.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Colors.Primary)

	state := InputStateDefault
	switch {
	case in.errText != "":
		state = InputStateError
	case in.model.Focused():
		state = InputStateFocus
	}

	field := in.model.View()
	if in.icon != "" {
		iconStyle := lipgloss.NewStyle().Foreground(theme.Colors.Text.Secondary)
		if state == InputStateFocus {
			iconStyle = iconStyle.Foreground(theme.Colors.Primary)
		}
		field = iconStyle.Render(in.icon) + " " + field
	}

	frame := InputStyle(theme, state)
	if in.strategy != nil {
		frame = in.strategy.Apply(frame, theme)
	}
	frame = frame.Width(in.width - frame.GetHorizontalBorderSize())

	rows := make([]string, 0, 4)
	if in.label != "" {
		rows = append(rows, TypographyStyle(theme, TypographyVariantLabel).Render(in.label))
	}
	rows = append(rows, frame.Render(field))
	if in.errText != "" {
		rows = append(rows, ErrorText(in.errText).ViewWithContext(ctx))
	} else if in.secure && in.model.Focused() {
		hint := showSecretHint
		if in.showSecret {
			hint = hideSecretHint
		}
		rows = append(rows, CaptionText(hint).ViewWithContext(ctx))
	}

	return strings.Join(rows, "\n")
}

func (in *Input) applyEcho() {
	if in.secure && !in.showSecret {
		in.model.EchoMode = textinput.EchoPassword
		in.model.EchoCharacter = secretEcho
		return
	}
	in.model.EchoMode = textinput.EchoNormal
}

// fieldWidth is the room left for text inside the frame.
func (in *Input) fieldWidth() int {
	inner := in.width - 2 - 2 // border and horizontal padding
	if in.icon != "" {
		inner -= lipgloss.Width(in.icon) + 1
	}
	if inner < 1 {
		inner = 1
	}
	return inner - 1 // cursor cell
}
