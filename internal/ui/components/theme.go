package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by ThemeByName.
const (
	ThemeNameDark  = "dark"
	ThemeNameLight = "light"
)

// TextColors are the three foreground tokens used for copy.
type TextColors struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
}

// Colors is the raw colour token set of a theme.
type Colors struct {
	Background      lipgloss.Color
	Surface         lipgloss.Color
	Primary         lipgloss.Color
	PrimaryGradient [2]lipgloss.Color
	Text            TextColors
	Border          lipgloss.Color
	Error           lipgloss.Color
	Success         lipgloss.Color
}

// SpacingSize enumerates the spacing tokens, xs through xxl.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
	SpacingSizeDoubleExtraLarge
)

const spacingSizeCount = int(SpacingSizeDoubleExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// spacingPixels are the design values in points. Terminal cells are derived
// from them at one cell per eight points, rounded up.
var spacingPixels = spacingTable{
	SpacingSizeNone:             0,
	SpacingSizeExtraSmall:       4,
	SpacingSizeSmall:            8,
	SpacingSizeMedium:           16,
	SpacingSizeLarge:            24,
	SpacingSizeExtraLarge:       32,
	SpacingSizeDoubleExtraLarge: 48,
}

const pointsPerCell = 8

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCaption
	TypographyVariantLabel
	TypographyVariantAccent

	TypographyVariantTextXs
	TypographyVariantTextSm
	TypographyVariantTextMd
	TypographyVariantTextLg
	TypographyVariantTextXl
	TypographyVariantTextXxl

	TypographyVariantFontRegular
	TypographyVariantFontMedium
	TypographyVariantFontBold
)

// FontWeight mirrors the numeric weights of the design tokens.
type FontWeight int

const (
	FontWeightRegular FontWeight = 400
	FontWeightMedium  FontWeight = 500
	FontWeightBold    FontWeight = 700
)

// FontSizes holds the type scale in points. Terminals cannot scale glyphs, so
// sizes only select emphasis in TypographyScale.
type FontSizes struct {
	XS, S, M, L, XL, XXL int
}

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// Radius tokens. Every radius renders as a rounded border in a terminal; the
// values are kept for parity with the design tokens.
type Radius int

const (
	RadiusSmall  Radius = 8
	RadiusMedium Radius = 12
	RadiusLarge  Radius = 16
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantOutline
)

type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantError
	AlertVariantSuccess
)

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateError
)

// ColourSet is a background colour together with the foreground that reads
// on it and a muted companion.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Screen    ColourSet
	Danger    ColourSet
	Success   ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyScale contains semantic typography presets and weights.
type TypographyScale struct {
	Sizes FontSizes

	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Label    lipgloss.Style
	Accent   lipgloss.Style

	TextXs  lipgloss.Style
	TextSm  lipgloss.Style
	TextMd  lipgloss.Style
	TextLg  lipgloss.Style
	TextXl  lipgloss.Style
	TextXxl lipgloss.Style

	FontRegular lipgloss.Style
	FontMedium  lipgloss.Style
	FontBold    lipgloss.Style
}

// InputStyles describes the frame of an input in each state.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Error   lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[interface{}]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
// Themes should be created once and reused.
type Theme struct {
	Name       string
	Colors     Colors
	Palette    Palette
	Borders    BorderSet
	Spacing    spacingTable
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// DefaultTheme returns the dark theme the application ships with.
func DefaultTheme() Theme {
	return newTheme(ThemeNameDark, Colors{
		Background:      "#0F172A",
		Surface:         "#1E293B",
		Primary:         "#6366F1",
		PrimaryGradient: [2]lipgloss.Color{"#6366F1", "#8B5CF6"},
		Text: TextColors{
			Primary:   "#F8FAFC",
			Secondary: "#94A3B8",
			Accent:    "#818CF8",
		},
		Border:  "#334155",
		Error:   "#EF4444",
		Success: "#10B981",
	})
}

// LightTheme returns a light variant with the same token structure.
func LightTheme() Theme {
	return newTheme(ThemeNameLight, Colors{
		Background:      "#F8FAFC",
		Surface:         "#FFFFFF",
		Primary:         "#4F46E5",
		PrimaryGradient: [2]lipgloss.Color{"#4F46E5", "#7C3AED"},
		Text: TextColors{
			Primary:   "#0F172A",
			Secondary: "#475569",
			Accent:    "#6366F1",
		},
		Border:  "#CBD5E1",
		Error:   "#DC2626",
		Success: "#059669",
	})
}

// ThemeByName resolves a configured theme name. Unknown names report false.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeNameDark:
		return DefaultTheme(), true
	case ThemeNameLight:
		return LightTheme(), true
	default:
		return Theme{}, false
	}
}

func newTheme(name string, colors Colors) Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:   colors.Primary,
			OnBase: colors.Text.Primary,
			Muted:  colors.Text.Accent,
		},
		Secondary: ColourSet{
			Base:   colors.Surface,
			OnBase: colors.Text.Primary,
			Muted:  colors.Border,
		},
		Surface: ColourSet{
			Base:   colors.Surface,
			OnBase: colors.Text.Primary,
			Muted:  colors.Text.Secondary,
		},
		Screen: ColourSet{
			Base:   colors.Background,
			OnBase: colors.Text.Primary,
			Muted:  colors.Text.Secondary,
		},
		Danger: ColourSet{
			Base:   colors.Error,
			OnBase: "#FFFFFF",
			Muted:  colors.Error,
		},
		Success: ColourSet{
			Base:   colors.Success,
			OnBase: "#FFFFFF",
			Muted:  colors.Success,
		},
		Neutral: ColourSet{
			Base:   colors.Border,
			OnBase: colors.Text.Secondary,
			Muted:  colors.Text.Secondary,
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}

	var spacing spacingTable
	for i, points := range spacingPixels {
		spacing[i] = (points + pointsPerCell - 1) / pointsPerCell
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(colors.Border).
			Padding(0, spacing[SpacingSizeSmall]).
			Foreground(colors.Text.Primary),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(colors.Primary).
			Padding(0, spacing[SpacingSizeSmall]).
			Foreground(colors.Text.Primary),
		Error: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(colors.Error).
			Padding(0, spacing[SpacingSizeSmall]).
			Foreground(colors.Text.Primary),
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerAlertVariants(variants)

	return Theme{
		Name:       name,
		Colors:     colors,
		Palette:    palette,
		Borders:    borders,
		Spacing:    spacing,
		Typography: defaultTypography(colors),
		Input:      input,
		Variants:   variants,
	}
}

// registerButtonVariants populates button variant strategies
func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		Bold(),
	))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(
		Background(PaletteSecondary),
	))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(
		Foreground(PalettePrimary),
		BorderColor(PalettePrimary),
	))
}

// registerAlertVariants populates alert variant strategies
func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantInfo, NewCompositeStrategy(
		BorderColor(PalettePrimary),
	))
	registry.Register(AlertVariantError, NewCompositeStrategy(
		BorderColor(PaletteDanger),
	))
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(
		BorderColor(PaletteSuccess),
	))
}

func defaultTypography(c Colors) TypographyScale {
	base := lipgloss.NewStyle().Foreground(c.Text.Primary)
	secondary := base.Foreground(c.Text.Secondary)

	return TypographyScale{
		Sizes: FontSizes{XS: 12, S: 14, M: 16, L: 18, XL: 24, XXL: 32},

		Body:     base,
		Title:    base.Bold(true),
		Subtitle: secondary,
		Caption:  secondary.Faint(true),
		Label:    secondary.Bold(true),
		Accent:   base.Foreground(c.Text.Accent),

		TextXs:  secondary.Faint(true),
		TextSm:  secondary,
		TextMd:  base,
		TextLg:  base.Bold(true),
		TextXl:  base.Bold(true),
		TextXxl: base.Bold(true).Underline(true),

		FontRegular: base,
		FontMedium:  base.Bold(true),
		FontBold:    base.Bold(true),
	}
}

// WeightStyle maps a numeric weight token onto a terminal style.
func WeightStyle(theme Theme, weight FontWeight) lipgloss.Style {
	switch {
	case weight >= FontWeightBold:
		return theme.Typography.FontBold
	case weight >= FontWeightMedium:
		return theme.Typography.FontMedium
	default:
		return theme.Typography.FontRegular
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// SpacingValue returns the number of cells for the given size.
func SpacingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(theme.Spacing) {
		index = int(SpacingSizeMedium)
	}
	return theme.Spacing[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantAccent:
		return typo.Accent
	case TypographyVariantTextXs:
		return typo.TextXs
	case TypographyVariantTextSm:
		return typo.TextSm
	case TypographyVariantTextMd:
		return typo.TextMd
	case TypographyVariantTextLg:
		return typo.TextLg
	case TypographyVariantTextXl:
		return typo.TextXl
	case TypographyVariantTextXxl:
		return typo.TextXxl
	case TypographyVariantFontRegular:
		return typo.FontRegular
	case TypographyVariantFontMedium:
		return typo.FontMedium
	case TypographyVariantFontBold:
		return typo.FontBold
	default:
		return typo.Body
	}
}

// InputStyle returns the input frame style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return theme.Input.Focus
	case InputStateError:
		return theme.Input.Error
	default:
		return theme.Input.Default
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteScreen    PaletteSlot = func(p Palette) ColourSet { return p.Screen }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background sets the slot's base colour behind its on-base text colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColor colours an existing border with the slot's base colour.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// Bold makes the text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
