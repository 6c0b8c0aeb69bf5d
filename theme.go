package blockview

import "github.com/charmbracelet/lipgloss"

// Theme provides the styles and frame chromes blocks are built with.
type Theme struct {
	Text    Style // literal declaration text
	Marker  Style // marker icons
	Hole    Style // empty argument slots
	Chromes map[BlockKind]Chrome
}

// Chrome returns the chrome for kind, falling back to the command chrome.
func (t Theme) Chrome(kind BlockKind) Chrome {
	if c, ok := t.Chromes[kind]; ok {
		return c
	}
	return t.Chromes[KindCommand]
}

// ThemeDark is the built-in theme: light text, colored frames.
var ThemeDark = Theme{
	Text:   Style{FG: BrightWhite},
	Marker: Style{FG: Yellow, Attr: AttrBold},
	Hole:   Style{FG: BrightBlack, BG: Black},
	Chromes: map[BlockKind]Chrome{
		KindCommand: NewFrameChrome(lipgloss.RoundedBorder(),
			Style{FG: Cyan, BG: PaletteColor(24)}, Style{BG: PaletteColor(24)}, CommandMetrics),
		KindReporter: NewFrameChrome(Borders["reporter"],
			Style{FG: Green, BG: PaletteColor(22)}, Style{BG: PaletteColor(22)}, InlineMetrics),
		KindPredicate: NewFrameChrome(Borders["predicate"],
			Style{FG: Magenta, BG: PaletteColor(53)}, Style{BG: PaletteColor(53)}, InlineMetrics),
	},
}

// ThemeMonochrome uses only attributes and default colors. Tests use it so
// rendered output stays independent of color choices.
var ThemeMonochrome = Theme{
	Text:   Style{},
	Marker: Style{Attr: AttrBold},
	Hole:   Style{Attr: AttrDim},
	Chromes: map[BlockKind]Chrome{
		KindCommand:   NewFrameChrome(lipgloss.NormalBorder(), Style{}, Style{}, CommandMetrics),
		KindReporter:  NewFrameChrome(Borders["reporter"], Style{}, Style{}, InlineMetrics),
		KindPredicate: NewFrameChrome(Borders["predicate"], Style{}, Style{}, InlineMetrics),
	},
}
