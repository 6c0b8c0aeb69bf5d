package blockview

import (
	"image"
	"testing"
)

func TestSurface(t *testing.T) {
	t.Run("NewSurface is transparent", func(t *testing.T) {
		s := NewSurface(4, 2)
		if s.Width() != 4 || s.Height() != 2 {
			t.Errorf("expected 4x2, got %dx%d", s.Width(), s.Height())
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 4; x++ {
				if s.VisibleAt(image.Pt(x, y)) {
					t.Errorf("expected transparent cell at (%d,%d)", x, y)
				}
			}
		}
	})

	t.Run("negative size clamps", func(t *testing.T) {
		s := NewSurface(-3, 2)
		if s.Width() != 0 {
			t.Errorf("expected width 0, got %d", s.Width())
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		s := NewSurface(5, 5)
		cell := NewCell('X', DefaultStyle().Foreground(Red))
		s.Set(2, 3, cell)
		if got := s.Get(2, 3); !got.Equal(cell) {
			t.Errorf("got %+v, want %+v", got, cell)
		}
		if s.Get(-1, 0).Visible() {
			t.Error("expected transparent cell out of bounds")
		}
		s.Set(10, 10, cell) // no panic
	})

	t.Run("WriteString", func(t *testing.T) {
		s := NewSurface(6, 1)
		n := s.WriteString(1, 0, "abc", DefaultStyle())
		if n != 3 {
			t.Errorf("expected 3 cells, got %d", n)
		}
		if s.Mask() != ".###.." {
			t.Errorf("expected mask .###.., got %s", s.Mask())
		}
		if s.GetLine(0) != " abc" {
			t.Errorf("expected %q, got %q", " abc", s.GetLine(0))
		}
	})

	t.Run("WriteString wide runes", func(t *testing.T) {
		s := NewSurface(4, 1)
		n := s.WriteString(0, 0, "日本", DefaultStyle())
		if n != 4 {
			t.Errorf("expected 4 cells, got %d", n)
		}
		if c := s.Get(1, 0); c.Rune != 0 || !c.Visible() {
			t.Errorf("expected opaque continuation cell, got %+v", c)
		}
		if s.String() != "日本" {
			t.Errorf("expected %q, got %q", "日本", s.String())
		}
	})

	t.Run("Stamp skips transparent cells", func(t *testing.T) {
		dst := NewSurface(4, 1)
		dst.WriteString(0, 0, "....", DefaultStyle())

		src := NewSurface(3, 1)
		src.Set(0, 0, NewCell('a', DefaultStyle()))
		src.Set(2, 0, NewCell('c', DefaultStyle()))

		dst.Stamp(src, image.Pt(1, 0))
		if dst.String() != ".a.c" {
			t.Errorf("expected .a.c, got %q", dst.String())
		}
	})

	t.Run("Stamp keeps background under default", func(t *testing.T) {
		dst := NewSurface(2, 1)
		dst.Fill(NewCell(' ', Style{BG: Blue}))
		src := NewSurface(2, 1)
		src.Set(0, 0, NewCell('a', Style{FG: White}))
		src.Set(1, 0, NewCell('b', Style{FG: White, BG: Red}))

		dst.Stamp(src, image.Pt(0, 0))
		if bg := dst.Get(0, 0).Style.BG; !bg.Equal(Blue) {
			t.Errorf("expected inherited blue background, got %+v", bg)
		}
		if bg := dst.Get(1, 0).Style.BG; !bg.Equal(Red) {
			t.Errorf("expected own red background, got %+v", bg)
		}
	})

	t.Run("Stamp clips", func(t *testing.T) {
		dst := NewSurface(2, 2)
		src := NewSurface(3, 3)
		src.Fill(NewCell('#', DefaultStyle()))
		dst.Stamp(src, image.Pt(1, 1))
		if dst.Mask() != "..\n.#" {
			t.Errorf("expected clipped stamp, got\n%s", dst.Mask())
		}
	})

	t.Run("StringTrimmed", func(t *testing.T) {
		s := NewSurface(5, 3)
		s.WriteString(0, 0, "ab", DefaultStyle())
		if s.StringTrimmed() != "ab" {
			t.Errorf("expected %q, got %q", "ab", s.StringTrimmed())
		}
	})
}
