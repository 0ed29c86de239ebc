package element

import "ggui/input"

// On registers an event handler owned by e. Unless global is true, a mouse
// event is only delivered when the mouse position collides with e;
// non-mouse kinds (key presses) are delivered without any collision or
// focus check.
func (e *Element) On(criteria input.Kind, handler func(*Element, input.Input) bool, global bool) {
	e.Handlers = append(e.Handlers, Binding{Criteria: criteria, Global: global, Handler: handler})
}

// clickKinds is the subset of input.Kind that triggers the declarative
// OnClick style hook.
const clickKinds = input.MouseLeftClicked | input.MouseMiddleClicked | input.MouseRightClicked

// Dispatch runs every matching handler in registration order, honoring
// mouse collision unless the binding is global or the event is not a mouse
// event. It returns true if any handler consumed the event (returned true),
// which stops further propagation among overlapping handlers at the same
// point. After the explicitly-registered Handlers run, the declarative
// OnClick/OnInput style hooks get a turn: they are a second,
// lower-precedence delivery path fed by the same event, matching the way
// OnInit/OnDestroy/OnShow/OnHide already fire directly from Style.Hooks
// rather than through the Binding list.
func (e *Element) Dispatch(in input.Input) bool {
	consumed := false
	for _, b := range e.Handlers {
		if b.Criteria&in.Kind == 0 {
			continue
		}
		if !b.Global && in.IsMouse() && !e.Collides(in.X, in.Y) {
			continue
		}
		if b.Handler(e, in) {
			consumed = true
		}
	}
	if consumed {
		return true
	}
	if in.Kind&clickKinds != 0 && e.Collides(in.X, in.Y) {
		if fn := e.Style.Hooks.OnClick; fn != nil {
			if fn(e, in.X, in.Y) {
				consumed = true
			}
		}
	}
	if in.Kind == input.KeyPress && e.Focused {
		if fn := e.Style.Hooks.OnInput; fn != nil {
			if fn(e, in.Rune) {
				consumed = true
			}
		}
	}
	return consumed
}
