package blockview

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"os"
	"slices"
)

var (
	// ErrNotOnCanvas is returned for views that belong to no script.
	ErrNotOnCanvas = errors.New("view is not on the canvas")
	// ErrNotDetachable is returned for decoration and empty slots.
	ErrNotDetachable = errors.New("view cannot be detached")
	// ErrDropIntoSelf is returned when a script is dropped into itself.
	ErrDropIntoSelf = errors.New("cannot drop a script into itself")
	// ErrBadRegion is returned for a drop region with no destination or a
	// slot the destination no longer has.
	ErrBadRegion = errors.New("drop region has no valid slot")
)

// Canvas is a Workspace holding top-level scripts. Later anchors are drawn
// on top of earlier ones and win hit tests.
type Canvas struct {
	anchors []*Anchor

	cached     *Surface
	cachedSize image.Point
	dirty      bool
	moves      int
	onChange   func()
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{dirty: true}
}

// OnChange sets a callback run whenever a script changes or moves.
func (c *Canvas) OnChange(fn func()) {
	c.onChange = fn
}

// Add places root on the canvas at pos. root must not have a parent.
func (c *Canvas) Add(root View, pos image.Point) *Anchor {
	if root.Parent() != nil {
		panic("Canvas.Add: view already has a parent")
	}
	a := NewAnchor(pos, root, c)
	root.Subscribe(c, func(View) { c.invalidate() })
	c.anchors = append(c.anchors, a)
	c.invalidate()
	return a
}

// Remove takes a off the canvas. It reports whether a was present.
func (c *Canvas) Remove(a *Anchor) bool {
	i := slices.Index(c.anchors, a)
	if i < 0 {
		return false
	}
	a.root.Unsubscribe(c)
	c.anchors = slices.Delete(c.anchors, i, i+1)
	c.invalidate()
	return true
}

// Raise moves a to the top of the drawing order.
func (c *Canvas) Raise(a *Anchor) {
	i := slices.Index(c.anchors, a)
	if i < 0 || i == len(c.anchors)-1 {
		return
	}
	c.anchors = append(slices.Delete(c.anchors, i, i+1), a)
	c.invalidate()
}

// Anchors returns the anchors in drawing order.
func (c *Canvas) Anchors() []*Anchor {
	return slices.Clone(c.anchors)
}

// NotifyTopLevelMoved implements Workspace.
func (c *Canvas) NotifyTopLevelMoved(a *Anchor) {
	c.moves++
	c.invalidate()
}

// Moves returns how many anchor moves the canvas was notified of.
func (c *Canvas) Moves() int {
	return c.moves
}

func (c *Canvas) invalidate() {
	c.dirty = true
	if c.onChange != nil {
		c.onChange()
	}
}

// Assemble draws every script onto a width x height surface.
// The result is cached until a script changes or moves.
func (c *Canvas) Assemble(width, height int) *Surface {
	size := image.Pt(width, height)
	if !c.dirty && c.cached != nil && c.cachedSize == size {
		return c.cached
	}
	s := NewSurface(width, height)
	for _, a := range c.anchors {
		s.Stamp(a.root.Assemble(), a.pos)
	}
	c.cached, c.cachedSize, c.dirty = s, size, false
	return s
}

// HitTest returns the topmost anchor whose script is under p and the
// deepest view hit within it.
func (c *Canvas) HitTest(p image.Point) (*Anchor, View, bool) {
	for i := len(c.anchors) - 1; i >= 0; i-- {
		a := c.anchors[i]
		if a.root.HitTest(p, a.pos) {
			return a, a.root.DeepestHit(p, a.pos), true
		}
	}
	return nil, nil, false
}

// DropRegions yields the drop regions of every script in canvas
// coordinates.
func (c *Canvas) DropRegions() iter.Seq[DropRegion] {
	return func(yield func(DropRegion) bool) {
		for _, a := range c.anchors {
			for dr := range a.root.DropRegions(a.pos) {
				if !yield(dr) {
					return
				}
			}
		}
	}
}

// DropTarget finds where a view producing t would land if dropped at p.
// Regions of exclude (usually the script being dragged) are ignored. When
// regions nest, the smallest one containing p wins.
func (c *Canvas) DropTarget(p image.Point, t DataType, exclude *Anchor) (DropRegion, bool) {
	var candidates []DropRegion
	byArea := func(a, b DropRegion) int {
		return area(a.Rect) - area(b.Rect)
	}
	for _, a := range c.anchors {
		if a == exclude {
			continue
		}
		for dr := range a.root.DropRegions(a.pos) {
			if p.In(dr.Rect) && dr.Accepts(t) {
				candidates = InsertSorted(candidates, dr, byArea)
			}
		}
	}
	if debugCompose {
		fmt.Fprintf(os.Stderr, "blockview: drop target at %v for %s: %d candidates\n", p, t, len(candidates))
	}
	if len(candidates) == 0 {
		return DropRegion{}, false
	}
	return candidates[0], true
}

func area(r image.Rectangle) int {
	return r.Dx() * r.Dy()
}

// Locate returns the canvas position of v's top-left corner and the anchor
// of the script containing it.
func (c *Canvas) Locate(v View) (image.Point, *Anchor, bool) {
	root := v
	for root.Parent() != nil {
		root = root.Parent()
	}
	i := slices.IndexFunc(c.anchors, func(a *Anchor) bool { return a.root == root })
	if i < 0 {
		return image.Point{}, nil, false
	}
	// relative positions are only valid once the script is composed
	root.Assemble()
	p := c.anchors[i].pos
	for n := v; n != root; n = n.Parent() {
		p = p.Add(n.RelativePos())
	}
	return p, c.anchors[i], true
}

// Detach pulls v out of the argument slot holding it and anchors it at its
// current canvas position. Top-level views are returned as is.
func (c *Canvas) Detach(v View) (*Anchor, error) {
	pos, a, ok := c.Locate(v)
	if !ok {
		return nil, fmt.Errorf("detach: %w", ErrNotOnCanvas)
	}
	if a.root == v {
		return a, nil
	}
	parent, ok := v.Parent().(*CompositeView)
	if !ok {
		return nil, fmt.Errorf("detach: parent is not a block: %w", ErrNotDetachable)
	}
	arg, ok := parent.ArgIndexOf(v)
	if !ok {
		return nil, fmt.Errorf("detach: decoration: %w", ErrNotDetachable)
	}
	if l, ok := v.(*LabelView); ok && l.IsHole() {
		return nil, fmt.Errorf("detach: empty slot: %w", ErrNotDetachable)
	}
	parent.Remove(arg)
	return c.Add(v, pos), nil
}

// Drop installs the script of a into the argument slot described by r and
// removes a from the canvas. A block already occupying the slot is moved
// out next to the drop point rather than discarded.
func (c *Canvas) Drop(a *Anchor, r DropRegion) error {
	dest := r.Destination
	if dest == nil || r.Arg < 0 || r.Arg >= dest.NumArgs() {
		return fmt.Errorf("drop: slot %d: %w", r.Arg, ErrBadRegion)
	}
	if isAncestor(a.root, dest) {
		return ErrDropIntoSelf
	}
	if !slices.Contains(c.anchors, a) {
		return fmt.Errorf("drop: %w", ErrNotOnCanvas)
	}
	old := dest.Arg(r.Arg)
	c.Remove(a)
	dest.ReplaceChild(r.Arg, a.root)
	if l, ok := old.(*LabelView); ok && l.IsHole() {
		return nil
	}
	c.Add(old, r.Rect.Min.Add(image.Pt(0, r.Rect.Dy()+1)))
	return nil
}
