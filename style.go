// Package blockview composes block-structured visual programs into terminal
// cell surfaces and answers hit-testing and drop-target queries over them.
package blockview

import "strconv"

// Attribute is a set of SGR text attributes.
type Attribute uint8

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrInverse
)

// sgrAttrs pairs each attribute with its SGR parameter, in emission order.
var sgrAttrs = [...]struct {
	attr  Attribute
	param int
}{
	{AttrBold, 1},
	{AttrDim, 2},
	{AttrItalic, 3},
	{AttrUnderline, 4},
	{AttrInverse, 7},
}

// Has reports whether every attribute in attr is set.
func (a Attribute) Has(attr Attribute) bool {
	return attr != 0 && a&attr == attr
}

// With returns a with attr added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// ColorMode says how the fields of a Color are read.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // whatever the terminal uses
	Color16                       // Index 0-15
	Color256                      // Index into the xterm palette
	ColorRGB                      // R, G, B
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	Mode    ColorMode
	R, G, B uint8
	Index   uint8
}

// DefaultColor returns the terminal default color.
func DefaultColor() Color {
	return Color{}
}

// BasicColor returns one of the 16 ANSI colors; 8-15 are the bright ones.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index & 0x0f}
}

// PaletteColor returns a color from the 256-color xterm palette.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c.Mode == ColorDefault
}

// The 16 basic colors that block themes use.
var (
	Black       = BasicColor(0)
	Red         = BasicColor(1)
	Green       = BasicColor(2)
	Yellow      = BasicColor(3)
	Blue        = BasicColor(4)
	Magenta     = BasicColor(5)
	Cyan        = BasicColor(6)
	White       = BasicColor(7)
	BrightBlack = BasicColor(8)
	BrightWhite = BasicColor(15)
)

// Equal compares only the fields the mode uses.
func (c Color) Equal(other Color) bool {
	if c.Mode != other.Mode {
		return false
	}
	switch c.Mode {
	case Color16, Color256:
		return c.Index == other.Index
	case ColorRGB:
		return c.R == other.R && c.G == other.G && c.B == other.B
	}
	return true
}

// appendSGR appends the SGR parameters selecting c as foreground or
// background, each preceded by ';'.
func (c Color) appendSGR(dst []byte, fg bool) []byte {
	extended := 38
	if !fg {
		extended = 48
	}
	switch c.Mode {
	case Color16:
		base := extended - 8 // 30 or 40
		if c.Index >= 8 {
			base += 60
		}
		return appendParams(dst, base+int(c.Index%8))
	case Color256:
		return appendParams(dst, extended, 5, int(c.Index))
	case ColorRGB:
		return appendParams(dst, extended, 2, int(c.R), int(c.G), int(c.B))
	}
	return appendParams(dst, extended+1) // 39 or 49
}

func appendParams(dst []byte, params ...int) []byte {
	for _, p := range params {
		dst = append(dst, ';')
		dst = strconv.AppendInt(dst, int64(p), 10)
	}
	return dst
}

// Style is how a cell is drawn.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle is the zero Style: terminal colors, no attributes.
func DefaultStyle() Style { return Style{} }

// Foreground returns a new style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a new style with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a new style with bold added.
func (s Style) Bold() Style {
	s.Attr |= AttrBold
	return s
}

// Equal reports whether both styles draw the same.
func (s Style) Equal(other Style) bool {
	return s.Attr == other.Attr && s.FG.Equal(other.FG) && s.BG.Equal(other.BG)
}

// sgr returns the full escape sequence for s. It starts with a reset so
// nothing carries over from the previous style.
func (s Style) sgr() []byte {
	seq := []byte("\x1b[0")
	for _, a := range sgrAttrs {
		if s.Attr.Has(a.attr) {
			seq = appendParams(seq, a.param)
		}
	}
	seq = s.FG.appendSGR(seq, true)
	seq = s.BG.appendSGR(seq, false)
	return append(seq, 'm')
}

// Opaque and Transparent are the two alpha values a cell takes in practice.
const (
	Transparent uint8 = 0
	Opaque      uint8 = 0xFF
)

// Cell is one "pixel" of a surface: a rune, its style and an alpha value.
// A continuation cell (second half of a double-width rune) has Rune 0 and
// is opaque.
type Cell struct {
	Rune  rune
	Style Style
	Alpha uint8
}

// ClearCell returns a fully transparent cell.
func ClearCell() Cell {
	return Cell{Rune: ' ', Alpha: Transparent}
}

// NewCell creates an opaque cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Alpha: Opaque}
}

// Visible reports whether the cell is not fully transparent.
func (c Cell) Visible() bool {
	return c.Alpha != Transparent
}

// Equal reports whether both cells have the same rune, style and alpha.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Alpha == other.Alpha && c.Style.Equal(other.Style)
}
