package blockview

import "strings"

const (
	placeholderChar = '%'
	markerChar      = '_'
)

// Kind classifies a declaration token.
type Kind uint8

const (
	TokenLiteral     Kind = iota // plain text run
	TokenPlaceholder             // "%", one argument slot
	TokenMarker                  // "_name_", a named special marker
)

func (k Kind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenPlaceholder:
		return "placeholder"
	case TokenMarker:
		return "marker"
	}
	return "unknown"
}

// SplitDeclaration splits a block declaration into literal runs, "%"
// placeholders and "_name_" markers, left to right:
//
//	"if % % else %" => "if ", "%", " ", "%", " else ", "%"
//
// Concatenating the tokens gives back decl. An unterminated marker is not
// an error: "say _oops" yields "say ", "_oops".
func SplitDeclaration(decl string) []string {
	var tokens []string
	var run strings.Builder
	inMarker := false

	flush := func() {
		if run.Len() > 0 {
			tokens = append(tokens, run.String())
			run.Reset()
		}
	}

	for _, c := range decl {
		switch {
		case c == placeholderChar:
			flush()
			tokens = append(tokens, string(placeholderChar))
		case c == markerChar && !inMarker:
			flush()
			run.WriteRune(c)
			inMarker = true
		case c == markerChar:
			run.WriteRune(c)
			tokens = append(tokens, run.String())
			run.Reset()
			inMarker = false
		default:
			run.WriteRune(c)
		}
	}
	flush()
	return tokens
}

// TokenKind returns the kind of a token produced by SplitDeclaration.
func TokenKind(tok string) Kind {
	switch {
	case tok == string(placeholderChar):
		return TokenPlaceholder
	case len(tok) > 0 && tok[0] == markerChar:
		return TokenMarker
	}
	return TokenLiteral
}

// MarkerName returns the name inside a marker token, without sentinels.
// Unterminated markers have only the leading sentinel removed.
func MarkerName(tok string) string {
	name := strings.TrimPrefix(tok, string(markerChar))
	return strings.TrimSuffix(name, string(markerChar))
}

// CountPlaceholders returns the number of argument slots in decl.
func CountPlaceholders(decl string) int {
	return strings.Count(decl, string(placeholderChar))
}
