package blockview

import (
	"image"
	"iter"
)

// View is the contract every node of a block tree satisfies.
//
// A view renders to a Surface, reports its size, sits at a relative
// position inside its parent, and raises change notifications to whoever
// subscribed. The parent is a back-reference only; ownership lives in the
// parent's child list.
type View interface {
	// Assemble returns the rendered surface, recomposing if needed.
	Assemble() *Surface
	Width() int
	Height() int

	// RelativePos is the top-left offset inside the parent, assigned by
	// the parent during composition.
	RelativePos() image.Point
	SetRelativePos(p image.Point)

	Parent() View
	SetParent(parent View)

	// Subscribe registers fn to run whenever the view changes. Each owner
	// holds at most one subscription; subscribing again replaces it.
	Subscribe(owner any, fn func(source View))
	// Unsubscribe removes the subscription held by owner, if any.
	Unsubscribe(owner any)

	// HitTest reports whether p, given in the frame where this view's
	// top-left corner sits at origin, lands on a visible cell.
	HitTest(p, origin image.Point) bool
	// DeepestHit returns the most deeply nested view under p.
	DeepestHit(p, origin image.Point) View
	// DropRegions yields the drop targets of this subtree in the frame
	// where this view sits at origin.
	DropRegions(origin image.Point) iter.Seq[DropRegion]
}

type listener struct {
	owner any
	fn    func(View)
}

// viewBase holds the state shared by every view: the parent
// back-reference, the position assigned by the parent and the listeners.
type viewBase struct {
	parent    View
	relPos    image.Point
	listeners []listener
}

func (b *viewBase) RelativePos() image.Point     { return b.relPos }
func (b *viewBase) SetRelativePos(p image.Point) { b.relPos = p }
func (b *viewBase) Parent() View                 { return b.parent }
func (b *viewBase) SetParent(parent View)        { b.parent = parent }

func (b *viewBase) Subscribe(owner any, fn func(View)) {
	for i := range b.listeners {
		if b.listeners[i].owner == owner {
			b.listeners[i].fn = fn
			return
		}
	}
	b.listeners = append(b.listeners, listener{owner: owner, fn: fn})
}

func (b *viewBase) Unsubscribe(owner any) {
	for i := range b.listeners {
		if b.listeners[i].owner == owner {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// subscribed reports whether owner holds a subscription.
func (b *viewBase) subscribed(owner any) bool {
	for _, l := range b.listeners {
		if l.owner == owner {
			return true
		}
	}
	return false
}

// notify runs every listener with source as the changed view. The slice is
// copied first so a listener may unsubscribe while being notified.
func (b *viewBase) notify(source View) {
	ls := make([]listener, len(b.listeners))
	copy(ls, b.listeners)
	for _, l := range ls {
		l.fn(source)
	}
}

// isAncestor reports whether a is v or one of v's ancestors.
func isAncestor(a, v View) bool {
	for p := v; p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}
