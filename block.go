package blockview

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// BlockKind selects the frame shape of a block.
type BlockKind uint8

const (
	KindCommand   BlockKind = iota // a statement, boxed
	KindReporter                   // a value, ( ... )
	KindPredicate                  // a boolean, < ... >
)

var blockKindNames = map[string]BlockKind{
	"command":   KindCommand,
	"reporter":  KindReporter,
	"predicate": KindPredicate,
}

func (k BlockKind) String() string {
	for name, kind := range blockKindNames {
		if kind == k {
			return name
		}
	}
	return fmt.Sprintf("BlockKind(%d)", uint8(k))
}

// Produces returns the type of value a block of this kind yields when
// dropped into an argument slot.
func (k BlockKind) Produces() DataType {
	switch k {
	case KindReporter:
		return TypeAny
	case KindPredicate:
		return TypeBoolean
	}
	return TypeScript
}

var (
	ErrEmptyDeclaration = errors.New("empty declaration")
	ErrArgCount         = errors.New("argument type count does not match placeholders")
	ErrUnknownKind      = errors.New("unknown block kind")
)

// ParseBlockKind parses a kind name as written in configuration.
func ParseBlockKind(s string) (BlockKind, error) {
	if k, ok := blockKindNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return KindCommand, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Markers maps marker names to the icon drawn in their place.
var Markers = map[string]string{
	"flag":  "⚑",
	"stop":  "■",
	"clock": "◷",
	"turn":  "↻",
	"key":   "⌨",
}

// NewBlock builds the view for a declaration such as "if % then %".
//
// Each "%" becomes an argument slot holding an empty hole of the matching
// type from argTypes. Consecutive text and marker tokens are merged into a
// single decorative label.
func NewBlock(decl string, argTypes []DataType, kind BlockKind, theme Theme) (*CompositeView, error) {
	tokens := SplitDeclaration(decl)
	if len(tokens) == 0 {
		return nil, ErrEmptyDeclaration
	}
	if n := CountPlaceholders(decl); n != len(argTypes) {
		return nil, fmt.Errorf("%q has %d placeholders, got %d types: %w", decl, n, len(argTypes), ErrArgCount)
	}

	decorative := func(a, b string) bool {
		return TokenKind(a) != TokenPlaceholder && TokenKind(b) != TokenPlaceholder
	}
	runs := PartitionRuns(slices.Values(tokens), decorative)
	groups, err := Partition(slices.Values(tokens), runs)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", decl, err)
	}

	children := make([]View, 0, len(groups))
	trueArgs := make([]bool, 0, len(groups))
	arg := 0
	for gi, g := range groups {
		if TokenKind(g[0]) == TokenPlaceholder {
			children = append(children, NewHole(argTypes[arg], theme.Hole))
			trueArgs = append(trueArgs, true)
			arg++
			continue
		}
		text := labelText(g)
		// the chrome puts its own gap between the first slot and the rest
		switch gi {
		case 0:
			text = strings.TrimRight(text, " ")
		case 1:
			text = strings.TrimLeft(text, " ")
		}
		children = append(children, NewLabel(text, labelStyle(g, theme)))
		trueArgs = append(trueArgs, false)
	}

	c := NewCompositeView(children, argTypes, trueArgs, theme.Chrome(kind))
	c.SetHoleStyle(theme.Hole)
	c.decl, c.kind = decl, kind
	return c, nil
}

// MustBlock is NewBlock for declarations known to be valid.
func MustBlock(decl string, argTypes []DataType, kind BlockKind, theme Theme) *CompositeView {
	b, err := NewBlock(decl, argTypes, kind, theme)
	if err != nil {
		panic(err)
	}
	return b
}

// labelText joins a run of literal and marker tokens, drawing markers as
// their icon, or their bare name when no icon is known.
func labelText(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		if TokenKind(tok) != TokenMarker {
			b.WriteString(tok)
			continue
		}
		name := MarkerName(tok)
		if icon, ok := Markers[name]; ok {
			b.WriteString(icon)
		} else {
			b.WriteString(name)
		}
	}
	return b.String()
}

// labelStyle styles a label as a marker when it is made of a marker only.
func labelStyle(tokens []string, theme Theme) Style {
	if len(tokens) == 1 && TokenKind(tokens[0]) == TokenMarker {
		return theme.Marker
	}
	return theme.Text
}
