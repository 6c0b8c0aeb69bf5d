package blockview

import "image"

// Workspace owns top-level scripts and is told whenever one moves.
type Workspace interface {
	NotifyTopLevelMoved(a *Anchor)
}

// Anchor binds a root view to a position in a workspace.
type Anchor struct {
	root  View
	pos   image.Point
	owner Workspace
}

// NewAnchor creates an anchor for root at pos, owned by owner.
func NewAnchor(pos image.Point, root View, owner Workspace) *Anchor {
	if owner == nil {
		panic("Anchor needs a workspace")
	}
	return &Anchor{root: root, pos: pos, owner: owner}
}

// Root returns the anchored view.
func (a *Anchor) Root() View {
	return a.root
}

// Position returns the top-left corner of the root in workspace coordinates.
func (a *Anchor) Position() image.Point {
	return a.pos
}

// SetPosition moves the anchor and notifies the workspace.
func (a *Anchor) SetPosition(p image.Point) {
	a.pos = p
	a.owner.NotifyTopLevelMoved(a)
}

// Bounds returns the rectangle covered by the root's surface.
func (a *Anchor) Bounds() image.Rectangle {
	return a.root.Assemble().Bounds().Add(a.pos)
}
