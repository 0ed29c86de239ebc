// Package event implements the input dispatcher, focus/hover tracking, and
// the memory-job scheduler.
package event

import (
	"ggui/element"
	"ggui/input"
	"ggui/stain"
)

// Dispatcher routes decoded input to element handlers and owns the
// focus/hover references (scoped to the dispatcher rather than process-wide
// globals).
type Dispatcher struct {
	root    *element.Element
	focused *element.Element
	hovered *element.Element
}

// NewDispatcher builds a Dispatcher over root and wires it as the element
// package's destroy hook, so a destroyed element's focus/hover reference is
// cleared automatically.
func NewDispatcher(root *element.Element) *Dispatcher {
	d := &Dispatcher{root: root}
	element.SetDestroyHook(d.onDestroy)
	return d
}

func (d *Dispatcher) onDestroy(e *element.Element) {
	if d.focused == e {
		d.focused = nil
	}
	if d.hovered == e {
		d.hovered = nil
	}
}

// Dispatch routes one input event to every matching handler in the tree,
// topmost (highest z, deepest descendant) first, stopping after the first
// element whose handlers report the event consumed.
func (d *Dispatcher) Dispatch(in input.Input) bool {
	if in.Kind == input.Resize {
		return false
	}
	if in.IsMouse() {
		d.updateHover(in.X, in.Y)
	}
	if in.Kind == input.Tab {
		d.cycleFocus()
		return true
	}
	return d.walk(d.root, in)
}

func (d *Dispatcher) walk(e *element.Element, in input.Input) bool {
	if !e.Shown {
		return false
	}
	for i := len(e.Children) - 1; i >= 0; i-- {
		if d.walk(e.Children[i], in) {
			return true
		}
	}
	return e.Dispatch(in)
}

// updateHover finds the deepest visible element containing (x, y) and
// fires hover-on/off.
func (d *Dispatcher) updateHover(x, y int) {
	next := hitTest(d.root, x, y)
	if next == d.hovered {
		return
	}
	if d.hovered != nil {
		d.hovered.Hovered = false
		d.hovered.Dirty(stain.Color)
	}
	d.hovered = next
	if next != nil {
		next.Hovered = true
		next.Dirty(stain.Color)
	}
}

func hitTest(e *element.Element, x, y int) *element.Element {
	if !e.Shown || !e.Collides(x, y) {
		return nil
	}
	for i := len(e.Children) - 1; i >= 0; i-- {
		if hit := hitTest(e.Children[i], x, y); hit != nil {
			return hit
		}
	}
	return e
}

// Focused returns the currently focused element, or nil.
func (d *Dispatcher) Focused() *element.Element { return d.focused }

// Hovered returns the currently hovered element, or nil.
func (d *Dispatcher) Hovered() *element.Element { return d.hovered }

// SetFocus explicitly moves focus to e (nil clears it).
func (d *Dispatcher) SetFocus(e *element.Element) {
	if d.focused == e {
		return
	}
	if d.focused != nil {
		d.focused.Focused = false
		d.focused.Dirty(stain.Color)
	}
	d.focused = e
	if e != nil {
		e.Focused = true
		e.Dirty(stain.Color)
	}
}

// cycleFocus advances focus to the next shown element in tree order,
// wrapping around.
func (d *Dispatcher) cycleFocus() {
	order := flatten(d.root, nil)
	if len(order) == 0 {
		return
	}
	idx := -1
	for i, e := range order {
		if e == d.focused {
			idx = i
			break
		}
	}
	d.SetFocus(order[(idx+1)%len(order)])
}

func flatten(e *element.Element, out []*element.Element) []*element.Element {
	if !e.Shown {
		return out
	}
	out = append(out, e)
	for _, c := range e.Children {
		out = flatten(c, out)
	}
	return out
}
