package blockview

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"strings"
)

// DataType is the declared type of an argument slot.
type DataType uint8

const (
	TypeAny DataType = iota
	TypeNumber
	TypeText
	TypeBoolean
	TypeScript
)

var dataTypeNames = [...]string{
	TypeAny:     "any",
	TypeNumber:  "number",
	TypeText:    "text",
	TypeBoolean: "boolean",
	TypeScript:  "script",
}

func (t DataType) String() string {
	if int(t) < len(dataTypeNames) {
		return dataTypeNames[t]
	}
	return fmt.Sprintf("DataType(%d)", uint8(t))
}

// ErrUnknownType is returned by ParseDataType.
var ErrUnknownType = errors.New("unknown data type")

// ParseDataType parses a type name as written in configuration.
func ParseDataType(s string) (DataType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range dataTypeNames {
		if name == s {
			return DataType(i), nil
		}
	}
	return TypeAny, fmt.Errorf("%q: %w", s, ErrUnknownType)
}

// DropKind classifies what a drop into a region does.
type DropKind uint8

const (
	// DropAsArgument replaces the view in an argument slot.
	DropAsArgument DropKind = iota
)

func (k DropKind) String() string {
	if k == DropAsArgument {
		return "argument"
	}
	return fmt.Sprintf("DropKind(%d)", uint8(k))
}

// DropRegion is a rectangle, in some ancestor's frame, where a dragged view
// may be dropped to fill argument Arg of Destination.
type DropRegion struct {
	Kind        DropKind
	Rect        image.Rectangle
	Destination *CompositeView
	Arg         int
	ArgType     DataType
}

// Accepts reports whether a view producing t may be dropped here.
func (r DropRegion) Accepts(t DataType) bool {
	if t == TypeScript || r.ArgType == TypeScript {
		return t == r.ArgType
	}
	return r.ArgType == TypeAny || t == TypeAny || r.ArgType == t
}

// Translate returns the region moved by d.
func (r DropRegion) Translate(d image.Point) DropRegion {
	r.Rect = r.Rect.Add(d)
	return r
}

func (r DropRegion) String() string {
	return fmt.Sprintf("%s %v arg %d (%s)", r.Kind, r.Rect, r.Arg, r.ArgType)
}

// DropRegions yields the regions of every child first, translated into the
// caller's frame, followed by one region per argument slot of this view.
func (c *CompositeView) DropRegions(origin image.Point) iter.Seq[DropRegion] {
	return func(yield func(DropRegion) bool) {
		c.ensureFresh()
		for _, v := range c.children {
			for dr := range v.DropRegions(origin.Add(v.RelativePos())) {
				if !yield(dr) {
					return
				}
			}
		}
		for a, slot := range c.argIndexes {
			rp := c.children[slot].RelativePos()
			dr := DropRegion{
				Kind:        DropAsArgument,
				Rect:        image.Rectangle{Min: rp, Max: rp.Add(c.parts[slot].Size())}.Add(origin),
				Destination: c,
				Arg:         a,
				ArgType:     c.argTypes[a],
			}
			if !yield(dr) {
				return
			}
		}
	}
}

// HitTest reports whether p lands on a visible cell of the composed
// surface. It does not look at children separately.
func (c *CompositeView) HitTest(p, origin image.Point) bool {
	s := c.Assemble()
	return s.VisibleAt(p.Sub(origin))
}

// DeepestHit walks argument slots in order and descends into the first
// child hit by p. When no argument child is hit the view itself is
// returned.
func (c *CompositeView) DeepestHit(p, origin image.Point) View {
	c.ensureFresh()
	for _, slot := range c.argIndexes {
		v := c.children[slot]
		o := origin.Add(v.RelativePos())
		if v.HitTest(p, o) {
			return v.DeepestHit(p, o)
		}
	}
	return c
}
