package element

import (
	"fmt"

	"ggui/stain"
)

// destroyHook lets the event package clear its focus/hover references when
// an element they point at is destroyed, without element importing event.
var destroyHook func(*Element)

// SetDestroyHook installs the callback run at the start of every Destroy.
// The event package installs its focus/hover cleanup here at startup.
func SetDestroyHook(fn func(*Element)) { destroyHook = fn }

// Finalize fires OnInit and marks the element FINALIZE. OnInit fires
// exactly once, before any render of the element.
func (e *Element) Finalize() {
	if e.finalized {
		return
	}
	// OnDraw is only meaningful on a raw cell painter (widget.Canvas sets
	// Kind before Finalize); applying it to anything else is a
	// TYPE_MISMATCH configuration error, fatal at embed time rather than
	// silently ignored or deferred to the render pass.
	if e.Style.Hooks.OnDraw != nil && e.Kind != "canvas" {
		panic(fmt.Sprintf("TYPE_MISMATCH: on_draw embedded onto non-canvas element %d (kind=%q)", e.ID, e.Kind))
	}
	e.finalized = true
	if e.Style.Hooks.OnInit != nil {
		e.Style.Hooks.OnInit(e)
	}
	e.Stain |= stain.Finalize
}

// Finalized reports whether Finalize has run.
func (e *Element) Finalized() bool { return e.finalized }

// Reset clears the FINALIZE marker so a subsequent Finalize fires OnInit
// again, and flags the element for a full recompute. Styles are not
// re-embedded: embedding happens once, in New.
func (e *Element) Reset() {
	e.finalized = false
	e.Stain &^= stain.Finalize
	e.Dirty(stain.Reset | stain.Stretch)
}

// Display toggles the shown flag, firing OnShow/OnHide and dirtying the
// parent's STRETCH (layout must be recomputed) and this element's STATE.
func (e *Element) Display(show bool) {
	if e.Shown == show {
		return
	}
	e.Shown = show
	if show {
		if e.Style.Hooks.OnShow != nil {
			e.Style.Hooks.OnShow(e)
		}
	} else {
		if e.Style.Hooks.OnHide != nil {
			e.Style.Hooks.OnHide(e)
		}
	}
	e.Dirty(stain.State)
	if e.Parent != nil {
		e.Parent.Dirty(stain.Stretch)
	}
}

// Destroy recursively destroys children depth-first, fires OnDestroy,
// drops event subscriptions, and clears any dispatcher focus/hover
// reference to this element.
func (e *Element) Destroy() {
	if destroyHook != nil {
		destroyHook(e)
	}
	for _, c := range e.Children {
		c.Destroy()
	}
	e.Children = nil
	if e.Style.Hooks.OnDestroy != nil {
		e.Style.Hooks.OnDestroy(e)
	}
	e.Handlers = nil
}
