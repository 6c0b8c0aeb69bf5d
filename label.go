package blockview

import (
	"image"
	"iter"

	"github.com/mattn/go-runewidth"
)

// LabelView is a terminal view showing a single line of text. It has no
// children and contributes no drop regions of its own.
type LabelView struct {
	viewBase
	text    string
	style   Style
	hole    bool
	surface *Surface
}

// NewLabel creates a label rendering text in style.
func NewLabel(text string, style Style) *LabelView {
	l := &LabelView{text: text, style: style}
	l.render()
	return l
}

var holeGlyphs = map[DataType]string{
	TypeAny:     "( )",
	TypeNumber:  "( )",
	TypeText:    "[ ]",
	TypeBoolean: "< >",
	TypeScript:  "{ }",
}

// NewHole creates the placeholder shown in an empty argument slot of type t.
func NewHole(t DataType, style Style) *LabelView {
	glyph, ok := holeGlyphs[t]
	if !ok {
		glyph = holeGlyphs[TypeAny]
	}
	l := &LabelView{text: glyph, style: style, hole: true}
	l.render()
	return l
}

// IsHole reports whether the label stands for an empty argument slot.
func (l *LabelView) IsHole() bool {
	return l.hole
}

// Text returns the label text.
func (l *LabelView) Text() string {
	return l.text
}

// SetText changes the text and notifies subscribers.
func (l *LabelView) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.render()
	l.notify(l)
}

// SetStyle changes the style and notifies subscribers.
func (l *LabelView) SetStyle(style Style) {
	if style.Equal(l.style) {
		return
	}
	l.style = style
	l.render()
	l.notify(l)
}

func (l *LabelView) render() {
	s := NewSurface(runewidth.StringWidth(l.text), 1)
	s.WriteString(0, 0, l.text, l.style)
	l.surface = s
}

func (l *LabelView) Assemble() *Surface { return l.surface }
func (l *LabelView) Width() int         { return l.surface.Width() }
func (l *LabelView) Height() int        { return l.surface.Height() }

func (l *LabelView) HitTest(p, origin image.Point) bool {
	return l.surface.VisibleAt(p.Sub(origin))
}

func (l *LabelView) DeepestHit(p, origin image.Point) View {
	return l
}

func (l *LabelView) DropRegions(origin image.Point) iter.Seq[DropRegion] {
	return func(yield func(DropRegion) bool) {}
}
