package blockview

import "testing"

func TestANSI(t *testing.T) {
	t.Run("styled then transparent", func(t *testing.T) {
		s := NewSurface(2, 1)
		s.Set(0, 0, NewCell('a', DefaultStyle().Foreground(Red).Bold()))

		want := "\x1b[0;1;31;49ma\x1b[0;39;49m "
		if got := s.ANSI(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("reset at end of styled row", func(t *testing.T) {
		s := NewSurface(1, 2)
		s.Set(0, 0, NewCell('x', Style{FG: PaletteColor(200), BG: RGB(1, 2, 3)}))
		s.Set(0, 1, NewCell('y', DefaultStyle()))

		want := "\x1b[0;38;5;200;48;2;1;2;3mx\x1b[0m\ny"
		if got := s.ANSI(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("bright colors", func(t *testing.T) {
		s := NewSurface(1, 1)
		s.Set(0, 0, NewCell('z', Style{FG: BrightWhite, BG: BrightBlack}))

		want := "\x1b[0;97;100mz\x1b[0m"
		if got := s.ANSI(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("wide rune written once", func(t *testing.T) {
		s := NewSurface(2, 1)
		s.WriteString(0, 0, "日", DefaultStyle())
		if got := s.ANSI(); got != "日" {
			t.Errorf("expected %q, got %q", "日", got)
		}
	})
}
