package widget

import (
	"ggui/color"
	"ggui/element"
	"ggui/input"
	"ggui/stain"
	"ggui/style"
)

// Switch is a two-state boolean toggle: click or Enter flips it and fires
// an on-change callback. A single Element whose text/colors are recomputed
// on state change, driven by the OnClick hook (mouse) and an explicit key
// Binding (Enter).
type Switch struct {
	*element.Element
	on       bool
	onToggle func(on bool)
}

// NewSwitch builds a Switch, initially off. Extra style attributes are
// appended after the widget's own chain, so a caller's position/colors win
// on status ties.
func NewSwitch(extra ...style.Attr) *Switch {
	s := &Switch{}
	chain := style.New(
		style.Width(style.Px(7)),
		style.Height(style.Px(1)),
		style.TextColor(color.Opaque(color.RGB{R: 220, G: 220, B: 220})),
		style.OnClick(s.handleClick),
	)
	for _, a := range extra {
		chain.And(a)
	}
	s.Element = element.New(chain, nil)
	s.Element.Finalize()
	s.Element.On(input.Enter, s.handleKey, false)
	s.paint()
	return s
}

func (s *Switch) handleClick(owner interface{}, x, y int) bool {
	s.Toggle()
	return true
}

func (s *Switch) handleKey(e *element.Element, in input.Input) bool {
	if !e.Focused {
		return false
	}
	s.Toggle()
	return true
}

// Toggle flips the switch's state, repaints, and fires OnToggle.
func (s *Switch) Toggle() {
	s.SetOn(!s.on)
}

// SetOn sets the switch's state directly.
func (s *Switch) SetOn(on bool) {
	if s.on == on {
		return
	}
	s.on = on
	s.paint()
	if s.onToggle != nil {
		s.onToggle(s.on)
	}
}

func (s *Switch) paint() {
	bg := color.Opaque(color.RGB{R: 60, G: 60, B: 60})
	label := "[ off ]"
	if s.on {
		bg = color.Opaque(color.RGB{G: 150})
		label = "[ on  ]"
	}
	s.Element.Style.Text.Set(label, style.Value)
	s.Element.Style.BackgroundColor.Set(bg, style.Value)
	s.Element.Dirty(stain.Color)
}

// On reports the switch's current state.
func (s *Switch) On() bool { return s.on }

// OnToggle registers a callback fired whenever the state changes.
func (s *Switch) OnToggle(fn func(on bool)) { s.onToggle = fn }
