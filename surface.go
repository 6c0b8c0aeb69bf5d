package blockview

import (
	"image"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Surface is a 2D grid of cells with per-cell alpha. It is what every view
// renders to.
type Surface struct {
	cells  []Cell
	width  int
	height int
}

// NewSurface creates a fully transparent width x height surface. Negative
// sizes are treated as zero.
func NewSurface(width, height int) *Surface {
	width, height = max(width, 0), max(height, 0)
	s := &Surface{cells: make([]Cell, width*height), width: width, height: height}
	s.Fill(ClearCell())
	return s
}

// Width returns the surface width.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *Surface) Height() int {
	return s.height
}

// Size returns the surface dimensions as a point.
func (s *Surface) Size() image.Point {
	return image.Pt(s.width, s.height)
}

// Bounds returns the surface rectangle in its own frame.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// InBounds returns true if the given coordinates are within the surface.
func (s *Surface) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Surface) index(x, y int) int {
	return y*s.width + x
}

// Get returns the cell at (x, y), or a transparent cell outside the surface.
func (s *Surface) Get(x, y int) Cell {
	if !s.InBounds(x, y) {
		return ClearCell()
	}
	return s.cells[s.index(x, y)]
}

// Set writes c at (x, y). Writes outside the surface are dropped.
func (s *Surface) Set(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[s.index(x, y)] = c
}

// VisibleAt reports whether the cell at p exists and is not fully transparent.
func (s *Surface) VisibleAt(p image.Point) bool {
	if !s.InBounds(p.X, p.Y) {
		return false
	}
	return s.cells[s.index(p.X, p.Y)].Visible()
}

// Fill fills the entire surface with the given cell.
func (s *Surface) Fill(c Cell) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// FillRect fills the width x height rectangle at (x, y), clipped.
func (s *Surface) FillRect(x, y, width, height int, c Cell) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			s.Set(x+dx, y+dy, c)
		}
	}
}

// WriteString draws str from (x, y) rightwards and returns the number of
// cells it covered. Double-width runes take two cells, the second a
// continuation cell; zero-width runes are skipped. Drawing stops at the
// right edge.
func (s *Surface) WriteString(x, y int, str string, style Style) int {
	start := x
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		switch {
		case w == 0:
			continue
		case !s.InBounds(x, y):
			return x - start
		}
		s.Set(x, y, NewCell(r, style))
		for i := 1; i < w; i++ {
			s.Set(x+i, y, NewCell(0, style))
		}
		x += w
	}
	return x - start
}

// HLine draws a horizontal run of r starting at (x, y).
func (s *Surface) HLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, NewCell(r, style))
	}
}

// VLine draws a vertical run of r starting at (x, y).
func (s *Surface) VLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, NewCell(r, style))
	}
}

// Stamp copies src onto the surface with its top-left corner at p.
// Transparent source cells leave the destination untouched, and a source
// cell with the default background keeps the background beneath it. Cells
// falling outside the surface are clipped.
func (s *Surface) Stamp(src *Surface, p image.Point) {
	if src == nil {
		return
	}
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			c := src.cells[src.index(x, y)]
			if !c.Visible() {
				continue
			}
			if c.Style.BG.IsDefault() {
				c.Style.BG = s.Get(p.X+x, p.Y+y).Style.BG
			}
			s.Set(p.X+x, p.Y+y, c)
		}
	}
}

// GetLine returns row y as text with trailing blanks removed.
func (s *Surface) GetLine(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for _, c := range s.row(y) {
		if c.Rune != 0 {
			b.WriteRune(c.Rune)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func (s *Surface) row(y int) []Cell {
	return s.cells[y*s.width : (y+1)*s.width]
}

// String returns the surface contents as a string (for testing/debugging).
// Each row is separated by a newline. Transparent cells render as spaces.
func (s *Surface) String() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.Get(x, y)
			switch {
			case !c.Visible():
				b.WriteByte(' ')
			case c.Rune == 0:
				// continuation of a wide rune
			default:
				b.WriteRune(c.Rune)
			}
		}
		if y < s.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// StringTrimmed returns the surface contents with trailing spaces removed per
// line and trailing empty lines dropped.
func (s *Surface) StringTrimmed() string {
	lines := make([]string, s.height)
	for y := range lines {
		lines[y] = s.GetLine(y)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Mask returns the alpha map of the surface, '#' for visible cells and '.'
// for transparent ones. Useful when asserting hit-test shapes.
func (s *Surface) Mask() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.Get(x, y).Visible() {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if y < s.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
