package blockview

import (
	"slices"
	"strings"
	"testing"
)

func TestSplitDeclaration(t *testing.T) {
	tests := []struct {
		decl string
		want []string
	}{
		{"if % % else %", []string{"if ", "%", " ", "%", " else ", "%"}},
		{"", nil},
		{"move 10 steps", []string{"move 10 steps"}},
		{"%%", []string{"%", "%"}},
		{"% + %", []string{"%", " + ", "%"}},
		{"when _flag_ clicked", []string{"when ", "_flag_", " clicked"}},
		{"__x__", []string{"__", "x", "__"}},
		{"_a_%_b_", []string{"_a_", "%", "_b_"}},
		{"100% _x", []string{"100", "%", " ", "_x"}},
	}

	for _, tt := range tests {
		got := SplitDeclaration(tt.decl)
		if !slices.Equal(got, tt.want) {
			t.Errorf("SplitDeclaration(%q) = %q, want %q", tt.decl, got, tt.want)
		}
	}
}

func TestSplitDeclarationUnterminatedMarker(t *testing.T) {
	t.Run("trailing", func(t *testing.T) {
		got := SplitDeclaration("say _oops")
		want := []string{"say ", "_oops"}
		if !slices.Equal(got, want) {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("placeholder splits open marker", func(t *testing.T) {
		// "%" is never part of a marker
		got := SplitDeclaration("a_b%c")
		want := []string{"a", "_b", "%", "c"}
		if !slices.Equal(got, want) {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("lone sentinel", func(t *testing.T) {
		got := SplitDeclaration("_")
		if !slices.Equal(got, []string{"_"}) {
			t.Errorf("expected [\"_\"], got %q", got)
		}
	})
}

func TestSplitDeclarationRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"%%",
		"__x__",
		"if % then % else %",
		"when _flag_ clicked",
		"say _oops",
		"_a__b_",
		"%_%_%",
		"日本 % 語",
	}
	for _, in := range inputs {
		if got := strings.Join(SplitDeclaration(in), ""); got != in {
			t.Errorf("round trip of %q gave %q", in, got)
		}
	}
}

func TestSplitDeclarationNoEmptyTokens(t *testing.T) {
	for _, in := range []string{"%%", "__", "a%%b", "_x__y_"} {
		for _, tok := range SplitDeclaration(in) {
			if tok == "" {
				t.Errorf("empty token in split of %q", in)
			}
		}
	}
}

func TestTokenKind(t *testing.T) {
	tests := []struct {
		tok  string
		want Kind
	}{
		{"%", TokenPlaceholder},
		{"_flag_", TokenMarker},
		{"_open", TokenMarker},
		{"if ", TokenLiteral},
		{"100", TokenLiteral},
	}
	for _, tt := range tests {
		if got := TokenKind(tt.tok); got != tt.want {
			t.Errorf("TokenKind(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func TestMarkerName(t *testing.T) {
	tests := map[string]string{
		"_flag_": "flag",
		"_open":  "open",
		"__":     "",
	}
	for tok, want := range tests {
		if got := MarkerName(tok); got != want {
			t.Errorf("MarkerName(%q) = %q, want %q", tok, got, want)
		}
	}
}

func TestCountPlaceholders(t *testing.T) {
	if n := CountPlaceholders("if % % else %"); n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
	if n := CountPlaceholders("when _flag_ clicked"); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
}
