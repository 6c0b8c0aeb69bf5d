package blockview

import (
	"image"
	"testing"
)

func TestLabel(t *testing.T) {
	t.Run("size follows display width", func(t *testing.T) {
		tests := []struct {
			text string
			w    int
		}{
			{"say", 3},
			{"", 0},
			{"日本", 4},
		}
		for _, tt := range tests {
			l := NewLabel(tt.text, Style{})
			if l.Width() != tt.w || l.Height() != 1 {
				t.Errorf("%q: expected %dx1, got %dx%d", tt.text, tt.w, l.Width(), l.Height())
			}
		}
	})

	t.Run("SetText notifies once", func(t *testing.T) {
		l := NewLabel("a", Style{})
		n := counter(l)
		l.SetText("abc")
		l.SetText("abc")
		if *n != 1 {
			t.Errorf("expected 1 notification, got %d", *n)
		}
		if l.Width() != 3 {
			t.Errorf("expected width 3, got %d", l.Width())
		}
	})

	t.Run("SetStyle notifies", func(t *testing.T) {
		l := NewLabel("a", Style{})
		n := counter(l)
		l.SetStyle(Style{Attr: AttrBold})
		l.SetStyle(Style{Attr: AttrBold})
		if *n != 1 {
			t.Errorf("expected 1 notification, got %d", *n)
		}
		if !l.Assemble().Get(0, 0).Style.Attr.Has(AttrBold) {
			t.Error("expected bold cell")
		}
	})

	t.Run("unsubscribe", func(t *testing.T) {
		l := NewLabel("a", Style{})
		n := counter(l)
		l.Unsubscribe(n)
		l.SetText("b")
		if *n != 0 {
			t.Errorf("expected no notification, got %d", *n)
		}
	})

	t.Run("subscribe again replaces", func(t *testing.T) {
		l := NewLabel("a", Style{})
		first, second := 0, 0
		l.Subscribe("owner", func(View) { first++ })
		l.Subscribe("owner", func(View) { second++ })
		l.SetText("b")
		if first != 0 || second != 1 {
			t.Errorf("expected only the second listener, got %d and %d", first, second)
		}
	})

	t.Run("hit test and regions", func(t *testing.T) {
		l := NewLabel("ab", Style{})
		origin := image.Pt(3, 3)
		if !l.HitTest(image.Pt(4, 3), origin) {
			t.Error("expected hit on text")
		}
		if l.HitTest(image.Pt(5, 3), origin) {
			t.Error("expected miss past the text")
		}
		if l.DeepestHit(image.Pt(3, 3), origin) != View(l) {
			t.Error("expected label to be its own deepest hit")
		}
		for range l.DropRegions(origin) {
			t.Error("expected no drop regions")
		}
	})
}

func TestHole(t *testing.T) {
	tests := []struct {
		t    DataType
		want string
	}{
		{TypeAny, "( )"},
		{TypeNumber, "( )"},
		{TypeText, "[ ]"},
		{TypeBoolean, "< >"},
		{TypeScript, "{ }"},
		{DataType(99), "( )"},
	}
	for _, tt := range tests {
		h := NewHole(tt.t, Style{})
		if !h.IsHole() {
			t.Errorf("%s: expected hole", tt.t)
		}
		if h.Text() != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.t, tt.want, h.Text())
		}
	}
	if NewLabel("( )", Style{}).IsHole() {
		t.Error("expected plain label not to be a hole")
	}
}
