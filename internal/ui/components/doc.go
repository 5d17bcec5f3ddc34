// Package components provides the theme-aware building blocks the rizon
// screens are made of, rendered with lipgloss.
//
// # Theme
//
// A Theme carries the design tokens: colours (background, surface, primary
// and its gradient, three text colours, border, error, success), a spacing
// scale from xs to xxl, border radii and a type scale. Spacing tokens are
// defined in points and converted to terminal cells at eight points per
// cell. Themes are passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.LightTheme())
//	output := button.ViewWithContext(ctx)
//
// View() renders with DefaultTheme, the dark theme.
//
// # Components
//
//   - Text, Header, Divider: copy and separators
//   - Stack, Container, Card: layout
//   - ScreenContainer: full-screen background, centred content
//   - Button: primary, secondary and outline variants with loading and focus
//   - Input: labelled field over bubbles/textinput, with icon, error and
//     password visibility toggle
//   - Alert: modal message acknowledged by the user
//
// # Style modifiers
//
// Components accept StyleFunc values through WithAppliers:
//
//	text := components.NewText("Signed in").WithAppliers(
//		components.Foreground(components.PaletteSuccess),
//	)
package components
