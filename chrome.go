package blockview

import (
	"image"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// ChromeMetrics are the fixed geometric constants of a frame style.
type ChromeMetrics struct {
	MinTextWidth int         // minimum width reserved for the first slot
	TextStart    image.Point // where the first slot starts
	TextArgDist  int         // gap between the first slot and the rest
	MinWidth     int         // minimum overall width
	MinMidHeight int         // minimum height of the content area
	Left, Right  int         // frame thickness on each side
	Top, Bottom  int
	EndMargin    int // trailing space after the last slot
}

// Chrome draws the decoration around a composite view.
type Chrome interface {
	Metrics() ChromeMetrics
	// RenderToFit draws the frame so that it encloses a content area of
	// width x height cells, inset by the frame thickness.
	RenderToFit(dst *Surface, width, height int)
}

// FrameChrome is a Chrome drawn from a lipgloss border. The interior is
// filled with opaque cells so the whole block body is hit-testable.
type FrameChrome struct {
	Border  lipgloss.Border
	Style   Style // frame runes
	Fill    Style // interior
	metrics ChromeMetrics
}

// NewFrameChrome creates a frame chrome. The frame thickness in m is
// authoritative: a zero Top leaves the top edge out entirely.
func NewFrameChrome(border lipgloss.Border, style, fill Style, m ChromeMetrics) *FrameChrome {
	return &FrameChrome{Border: border, Style: style, Fill: fill, metrics: m}
}

// Metrics returns the metrics the frame was built with.
func (f *FrameChrome) Metrics() ChromeMetrics {
	return f.metrics
}

// RenderToFit draws the border and fill around a width by height interior.
func (f *FrameChrome) RenderToFit(dst *Surface, width, height int) {
	m := f.metrics
	total := image.Pt(width+m.Left+m.Right, height+m.Top+m.Bottom)

	dst.FillRect(0, 0, total.X, total.Y, NewCell(' ', f.Fill))

	left := borderRune(f.Border.Left)
	right := borderRune(f.Border.Right)
	for i := 0; i < m.Left; i++ {
		dst.VLine(i, m.Top, height, left, f.Style)
	}
	for i := 0; i < m.Right; i++ {
		dst.VLine(total.X-1-i, m.Top, height, right, f.Style)
	}

	edge := func(y int, fill, l, r string) {
		dst.HLine(0, y, total.X, borderRune(fill), f.Style)
		if m.Left > 0 {
			dst.Set(0, y, NewCell(borderRune(l), f.Style))
		}
		if m.Right > 0 {
			dst.Set(total.X-1, y, NewCell(borderRune(r), f.Style))
		}
	}
	for i := 0; i < m.Top; i++ {
		edge(i, f.Border.Top, f.Border.TopLeft, f.Border.TopRight)
	}
	for i := 0; i < m.Bottom; i++ {
		edge(total.Y-1-i, f.Border.Bottom, f.Border.BottomLeft, f.Border.BottomRight)
	}
}

// borderRune returns the first rune of a lipgloss border part, or a space
// when the part is empty.
func borderRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ' '
	}
	return r
}

// Borders available to skins, by configuration name.
var Borders = map[string]lipgloss.Border{
	"normal":    lipgloss.NormalBorder(),
	"rounded":   lipgloss.RoundedBorder(),
	"double":    lipgloss.DoubleBorder(),
	"thick":     lipgloss.ThickBorder(),
	"block":     lipgloss.BlockBorder(),
	"hidden":    lipgloss.HiddenBorder(),
	"reporter":  {Left: "(", Right: ")"},
	"predicate": {Left: "<", Right: ">"},
}

// CommandMetrics are the metrics of a boxed, three-row command block.
var CommandMetrics = ChromeMetrics{
	MinTextWidth: 1,
	TextStart:    image.Pt(2, 1),
	TextArgDist:  1,
	MinWidth:     6,
	MinMidHeight: 1,
	Left:         1,
	Right:        1,
	Top:          1,
	Bottom:       1,
	EndMargin:    2,
}

// InlineMetrics are the metrics of a one-row reporter or predicate.
var InlineMetrics = ChromeMetrics{
	MinTextWidth: 1,
	TextStart:    image.Pt(1, 0),
	TextArgDist:  1,
	MinWidth:     3,
	MinMidHeight: 1,
	Left:         1,
	Right:        1,
	EndMargin:    1,
}
