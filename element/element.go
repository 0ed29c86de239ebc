// Package element implements the GGUI element tree: ownership of children,
// the absolute-position cache, dirty stains, lifecycle hooks, and event
// subscriptions.
package element

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"ggui/color"
	"ggui/input"
	"ggui/stain"
	"ggui/style"
)

var nextID int64

// Binding pairs an event criterion bitmask with the handler owning it.
// Handlers are owned by the element that registered them and are removed on
// destruction.
type Binding struct {
	Criteria input.Kind
	Global   bool
	Handler  func(e *Element, in input.Input) bool
}

// Element is the unit of the GGUI tree.
type Element struct {
	ID    int64
	Name  string
	Title string

	Position struct{ X, Y, Z int }

	Shown   bool
	Focused bool
	Hovered bool

	Style *style.Values

	Children []*Element
	Parent   *Element

	Stain stain.Mask

	Buffer     []color.Cell
	PostBuffer []color.Cell
	PostW      int
	PostH      int

	Handlers []Binding

	finalized bool

	absX, absY int
	absValid   bool

	// Kind is a free-form tag concrete widgets can use to distinguish
	// themselves in configuration-error checks (e.g. OnDraw is only valid
	// on a canvas). The core never reads it; it exists for
	// widget.Canvas-style contracts.
	Kind string
}

// New constructs an Element by embedding chain onto a fresh style.Values.
// parent may be nil for the root. The element starts unfinalized: callers
// must call Finalize before it participates in rendering.
func New(chain *style.Chain, parent *Element) *Element {
	e := &Element{
		ID:     atomic.AddInt64(&nextID, 1),
		Shown:  true,
		Parent: parent,
		Style:  style.NewValues(),
	}
	var parentValues *style.Values
	if parent != nil {
		parentValues = parent.Style
	}
	style.Embed(chain, e, e.Style, parentValues)
	e.Name = e.Style.Name.Get()
	e.Title = e.Style.Title.Get()
	e.Shown = e.Style.Display.Get()
	e.Position = e.Style.Position
	e.Stain |= stain.Stretch | stain.Edge | stain.Color | stain.Deep | stain.Move
	return e
}

// Width resolves the element's settled width to an integer cell count,
// clamped to the invariant width >= 1. A Percentage length assigned after
// construction (e.g. through SetWidth) resolves here against the parent's
// content area, the same border-subtracted basis style embedding uses.
func (e *Element) Width() int {
	l := e.Style.Width.Get()
	basis := 0.0
	if l.IsPercentage() && e.Parent != nil {
		pw, _ := e.Parent.ContentArea()
		basis = float64(pw)
	}
	w := int(math.Round(l.Evaluate(basis)))
	if w < 1 {
		w = 1
	}
	return w
}

// Height resolves the element's settled height, clamped to height >= 1.
func (e *Element) Height() int {
	l := e.Style.Height.Get()
	basis := 0.0
	if l.IsPercentage() && e.Parent != nil {
		_, ph := e.Parent.ContentArea()
		basis = float64(ph)
	}
	h := int(math.Round(l.Evaluate(basis)))
	if h < 1 {
		h = 1
	}
	return h
}

// HasBorder reports whether the element currently draws a border.
func (e *Element) HasBorder() bool { return e.Style.EnableBorder.Get() }

// borderInset is 1 on each edge when the border is enabled, 0 otherwise.
func (e *Element) borderInset() int {
	if e.HasBorder() {
		return 1
	}
	return 0
}

// ContentArea returns the width/height available to children after
// subtracting the border inset on each side.
func (e *Element) ContentArea() (w, h int) {
	inset := 2 * e.borderInset()
	w, h = e.Width()-inset, e.Height()-inset
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return
}

// Dirty ORs stain bits into the element's mask (style.Owner capability).
// The mask is monotone within a frame: only the renderer clears it. Any dirt
// also marks every ancestor DEEP, since a dirty descendant means the
// ancestor must re-nest ("children changed ... or one of them is dirty
// transitively"); the walk stops at the first ancestor already carrying
// DEEP, whose own ancestors were marked when it was.
func (e *Element) Dirty(m stain.Mask) {
	if m == stain.Clean {
		return
	}
	e.Stain |= m
	if m.Any(stain.Move) {
		invalidateAbsolute(e)
	}
	for p := e.Parent; p != nil; p = p.Parent {
		if p.Stain.Has(stain.Deep) {
			break
		}
		p.Stain |= stain.Deep
	}
}

func invalidateAbsolute(e *Element) {
	e.absValid = false
	for _, c := range e.Children {
		invalidateAbsolute(c)
	}
}

// AbsolutePosition returns the element's cached absolute (x, y),
// recomputing it from the parent chain if MOVE has invalidated the cache.
// The cache is valid only while no ancestor has moved since the last
// recomputation.
func (e *Element) AbsolutePosition() (int, int) {
	if e.absValid {
		return e.absX, e.absY
	}
	if e.Parent == nil {
		e.absX, e.absY = e.Position.X, e.Position.Y
	} else {
		px, py := e.Parent.AbsolutePosition()
		inset := e.Parent.borderInset()
		e.absX = px + inset + e.Position.X
		e.absY = py + inset + e.Position.Y
	}
	e.absValid = true
	return e.absX, e.absY
}

// SetPosition applies a new position and dirties MOVE. A no-op position is
// skipped entirely so per-frame flow layout does not keep re-dirtying
// otherwise clean subtrees.
func (e *Element) SetPosition(x, y, z int) {
	if e.Position.X == x && e.Position.Y == y && e.Position.Z == z {
		return
	}
	e.Position.X, e.Position.Y, e.Position.Z = x, y, z
	e.Dirty(stain.Move)
	if e.Parent != nil {
		e.Parent.resort()
	}
}

// SetWidth/SetHeight apply a new length and dirty STRETCH.
func (e *Element) SetWidth(l style.Length) {
	e.Style.Width.Set(l, style.Value)
	e.Dirty(stain.Stretch)
}

func (e *Element) SetHeight(l style.Length) {
	e.Style.Height.Set(l, style.Value)
	e.Dirty(stain.Stretch)
}

// SetColors applies text/background colors and dirties COLOR.
func (e *Element) SetColors(text, bg color.RGBA) {
	e.Style.TextColor.Set(text, style.Value)
	e.Style.BackgroundColor.Set(bg, style.Value)
	e.Dirty(stain.Color)
}

func (e *Element) resort() {
	sort.SliceStable(e.Children, func(i, j int) bool {
		return e.Children[i].Position.Z < e.Children[j].Position.Z
	})
}

// Collides reports whether (x, y) — absolute terminal coordinates — falls
// within the element's current bounding box.
func (e *Element) Collides(x, y int) bool {
	ax, ay := e.AbsolutePosition()
	return x >= ax && x < ax+e.Width() && y >= ay && y < ay+e.Height()
}

// diagnostics collects "window exceeded static bounds" style reports so the
// runtime/logger can surface them without the element package importing the
// logging plumbing directly.
var diagnosticSink func(string)

// SetDiagnosticSink installs the function used to report non-fatal layout
// diagnostics. The runtime package installs its logger here at startup.
func SetDiagnosticSink(fn func(string)) { diagnosticSink = fn }

func report(format string, args ...interface{}) {
	if diagnosticSink != nil {
		diagnosticSink(fmt.Sprintf(format, args...))
	}
}
