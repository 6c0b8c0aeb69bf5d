package blockview

import "strings"

// ANSI renders the surface as SGR-styled text, one line per row.
// An escape sequence is written only where the style changes, and a row
// that ends styled is reset so the terminal never bleeds color past it.
// Transparent cells come out as plain spaces.
func (s *Surface) ANSI() string {
	var b strings.Builder
	var cur Style
	for y := range s.height {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range s.width {
			c := s.Get(x, y)
			if !c.Visible() {
				c = NewCell(' ', Style{})
			} else if c.Rune == 0 {
				continue
			}
			if !c.Style.Equal(cur) {
				b.Write(c.Style.sgr())
				cur = c.Style
			}
			b.WriteRune(c.Rune)
		}
		if !cur.Equal(Style{}) {
			b.WriteString("\x1b[0m")
			cur = Style{}
		}
	}
	return b.String()
}
