package blockview

import (
	"fmt"
	"image"
	"os"
	"slices"
)

// debugCompose traces recomposition to stderr when BLOCKVIEW_DEBUG is set.
var debugCompose = os.Getenv("BLOCKVIEW_DEBUG") != ""

type cacheState uint8

const (
	cacheNever cacheState = iota // never composed, size unknown
	cacheStale                   // a child changed since the last composition
	cacheFresh
)

// CompositeView lays out one child per declaration slot side by side inside
// a chrome frame. Slots marked in trueArgs are arguments: they can be
// replaced and produce drop regions. The others are fixed decoration.
//
// The composed surface is cached. A change in any child marks the cache
// stale; it is rebuilt on the next Assemble.
type CompositeView struct {
	viewBase

	children   []View
	trueArgs   []bool
	argIndexes []int // argument index -> slot index
	argTypes   []DataType
	chrome     Chrome
	holeStyle  Style
	decl       string
	kind       BlockKind

	parts  []*Surface
	cached *Surface
	state  cacheState
	width  int
	height int

	composing bool // inside recompose
	replacing bool // inside ReplaceChild
}

// NewCompositeView creates a composite over children. trueArgs must have
// one entry per child, and argTypes one entry per true argument.
func NewCompositeView(children []View, argTypes []DataType, trueArgs []bool, chrome Chrome) *CompositeView {
	if len(children) == 0 {
		panic("CompositeView needs at least one child")
	}
	if len(trueArgs) != len(children) {
		panic(fmt.Sprintf("CompositeView: %d children but %d trueArgs entries", len(children), len(trueArgs)))
	}
	if chrome == nil {
		panic("CompositeView needs a chrome")
	}

	c := &CompositeView{
		children:  slices.Clone(children),
		trueArgs:  slices.Clone(trueArgs),
		argTypes:  slices.Clone(argTypes),
		chrome:    chrome,
		holeStyle: DefaultStyle().Foreground(BrightBlack),
	}
	for i, isArg := range c.trueArgs {
		if isArg {
			c.argIndexes = append(c.argIndexes, i)
		}
	}
	if len(c.argIndexes) != len(c.argTypes) {
		panic(fmt.Sprintf("CompositeView: %d arguments but %d argument types", len(c.argIndexes), len(c.argTypes)))
	}
	seen := make(map[View]int, len(c.children))
	for i, v := range c.children {
		if v == nil {
			panic(fmt.Sprintf("CompositeView: child %d is nil", i))
		}
		if v.Parent() != nil {
			panic(fmt.Sprintf("CompositeView: child %d already has a parent", i))
		}
		if j, dup := seen[v]; dup {
			panic(fmt.Sprintf("CompositeView: child %d is also child %d", i, j))
		}
		seen[v] = i
	}

	for _, v := range c.children {
		c.attach(v)
	}
	c.recompose()
	return c
}

// NumArgs returns the number of argument slots.
func (c *CompositeView) NumArgs() int {
	return len(c.argIndexes)
}

// Arg returns the view in argument slot i.
func (c *CompositeView) Arg(i int) View {
	return c.children[c.argIndexes[i]]
}

// ArgType returns the declared type of argument slot i.
func (c *CompositeView) ArgType(i int) DataType {
	return c.argTypes[i]
}

// ArgSlot returns the slot index of argument i.
func (c *CompositeView) ArgSlot(i int) int {
	return c.argIndexes[i]
}

// ArgIndexOf returns the argument index holding v.
func (c *CompositeView) ArgIndexOf(v View) (int, bool) {
	for a, slot := range c.argIndexes {
		if c.children[slot] == v {
			return a, true
		}
	}
	return -1, false
}

// Children returns a copy of the slot list.
func (c *CompositeView) Children() []View {
	return slices.Clone(c.children)
}

// Chrome returns the frame style.
func (c *CompositeView) Chrome() Chrome {
	return c.chrome
}

// Declaration returns the declaration the view was built from, if any.
func (c *CompositeView) Declaration() string {
	return c.decl
}

// Kind returns the block kind the view was built as.
func (c *CompositeView) Kind() BlockKind {
	return c.kind
}

// Fresh reports whether the cached surface is up to date.
func (c *CompositeView) Fresh() bool {
	return c.state == cacheFresh
}

// ReplaceChild installs v into argument slot arg.
//
// v is first detached from wherever it was: if it sat in an argument slot of
// another composite, that slot gets an empty hole of its declared type.
// Every precondition is checked before the tree is touched, so a panic
// leaves it unchanged. One change notification is raised on success.
func (c *CompositeView) ReplaceChild(arg int, v View) {
	if c.composing || c.replacing {
		panic("CompositeView.ReplaceChild called during recomposition")
	}
	if arg < 0 || arg >= len(c.argIndexes) {
		panic(fmt.Sprintf("CompositeView.ReplaceChild: argument %d out of range [0,%d)", arg, len(c.argIndexes)))
	}
	if v == nil {
		panic("CompositeView.ReplaceChild: nil view")
	}
	slot := c.argIndexes[arg]
	old := c.children[slot]
	if old.Parent() != View(c) {
		panic("CompositeView.ReplaceChild: tree corruption, child's parent is not this view")
	}
	if old == v {
		return
	}
	if isAncestor(v, c) {
		panic("CompositeView.ReplaceChild: view would become its own descendant")
	}
	prev, prevArg := c.previousHome(v)

	c.replacing = true
	defer func() { c.replacing = false }()

	c.detach(old)
	switch {
	case prev == c:
		hole := NewHole(c.argTypes[prevArg], c.holeStyle)
		c.children[c.argIndexes[prevArg]] = hole
		c.attach(hole)
		c.detach(v)
	case prev != nil:
		prev.release(prevArg)
	case v.Parent() != nil:
		v.Unsubscribe(v.Parent())
		v.SetParent(nil)
	}
	c.children[slot] = v
	c.attach(v)
	c.recompose()
	c.notify(c)
}

// previousHome finds the composite and argument slot currently holding v.
// It panics when v sits in a decorative slot, since those are never moved.
func (c *CompositeView) previousHome(v View) (*CompositeView, int) {
	p, ok := v.Parent().(*CompositeView)
	if !ok || p == nil {
		return nil, -1
	}
	a, ok := p.ArgIndexOf(v)
	if !ok {
		panic("CompositeView.ReplaceChild: view is decoration of another block")
	}
	return p, a
}

// release empties argument slot arg after its view moved elsewhere.
func (c *CompositeView) release(arg int) {
	slot := c.argIndexes[arg]
	c.detach(c.children[slot])
	hole := NewHole(c.argTypes[arg], c.holeStyle)
	c.children[slot] = hole
	c.attach(hole)
	c.state = cacheStale
	c.notify(c)
}

// Remove takes the view out of argument slot arg, leaving an empty hole
// behind, and returns it detached.
func (c *CompositeView) Remove(arg int) View {
	if c.composing || c.replacing {
		panic("CompositeView.Remove called during recomposition")
	}
	v := c.Arg(arg)
	if l, ok := v.(*LabelView); ok && l.IsHole() {
		return nil
	}
	c.release(arg)
	return v
}

// SetHoleStyle sets the style of holes created when arguments move out.
func (c *CompositeView) SetHoleStyle(s Style) {
	c.holeStyle = s
}

func (c *CompositeView) attach(v View) {
	v.SetParent(c)
	v.Subscribe(c, c.childChanged)
}

func (c *CompositeView) detach(v View) {
	v.Unsubscribe(c)
	v.SetParent(nil)
}

// childChanged invalidates the cache and passes the change up. While this
// view is swapping a child, changes from below only invalidate; the swap
// raises its own single notification.
func (c *CompositeView) childChanged(View) {
	if c.composing {
		return
	}
	if c.state != cacheNever {
		c.state = cacheStale
	}
	if c.replacing {
		return
	}
	c.notify(c)
}

// Assemble returns the composed surface, recomposing first when stale.
func (c *CompositeView) Assemble() *Surface {
	c.ensureFresh()
	return c.cached
}

func (c *CompositeView) ensureFresh() {
	if c.state != cacheFresh {
		c.recompose()
	}
}

// Width returns the composed width. It panics when the view was never
// composed.
func (c *CompositeView) Width() int {
	if c.state == cacheNever {
		panic("CompositeView.Width called before composition")
	}
	c.ensureFresh()
	return c.width
}

// Height returns the composed height. It panics when the view was never
// composed.
func (c *CompositeView) Height() int {
	if c.state == cacheNever {
		panic("CompositeView.Height called before composition")
	}
	c.ensureFresh()
	return c.height
}

// recompose renders every child, lays the slots out left to right inside
// the chrome and caches the result.
//
// The first slot is at least MinTextWidth wide and is followed by the
// TextArgDist gap; later slots follow each other with no gap.
func (c *CompositeView) recompose() {
	c.composing = true
	defer func() { c.composing = false }()

	m := c.chrome.Metrics()
	c.parts = make([]*Surface, len(c.children))
	for i, v := range c.children {
		c.parts[i] = v.Assemble()
	}

	firstWidth := max(c.parts[0].Width(), m.MinTextWidth)
	width := m.TextStart.X + firstWidth + m.TextArgDist + m.EndMargin
	for s := range After(slices.Values(c.parts), 1) {
		width += s.Width()
	}
	width = max(width, m.MinWidth)

	inner := m.MinMidHeight
	for _, s := range c.parts {
		inner = max(inner, s.Height())
	}
	height := inner + m.Top + m.Bottom

	surface := NewSurface(width, height)
	c.chrome.RenderToFit(surface, width-(m.Left+m.Right), inner)

	p := m.TextStart
	for i, s := range c.parts {
		at := p.Add(image.Pt(0, (inner-s.Height())/2))
		surface.Stamp(s, at)
		c.children[i].SetRelativePos(at)
		if i == 0 {
			p.X += firstWidth + m.TextArgDist
		} else {
			p.X += s.Width()
		}
	}

	if debugCompose {
		fmt.Fprintf(os.Stderr, "blockview: recompose %p %d slots -> %dx%d\n", c, len(c.children), width, height)
	}

	c.cached = surface
	c.width = width
	c.height = height
	c.state = cacheFresh
}
