package widget

import (
	"ggui/color"
	"ggui/element"
	"ggui/input"
	"ggui/stain"
	"ggui/style"
)

// TextField is a single-line text input: runes accumulate from dispatched
// KeyPress events, Backspace trims, Enter submits.
type TextField struct {
	*element.Element
	value    []rune
	onChange func(value string)
	onSubmit func(value string)
}

// NewTextField builds a width-cell single-line TextField. Extra style
// attributes are appended after the widget's own chain.
func NewTextField(width int, extra ...style.Attr) *TextField {
	t := &TextField{}
	chain := style.New(
		style.Width(style.Px(float64(width))),
		style.Height(style.Px(1)),
		style.EnableBorder(false),
		style.TextColor(color.Opaque(color.RGB{R: 255, G: 255, B: 255})),
		style.FocusBackgroundColor(color.Opaque(color.RGB{R: 40, G: 40, B: 60})),
	)
	for _, a := range extra {
		chain.And(a)
	}
	t.Element = element.New(chain, nil)
	t.Element.Finalize()
	t.Element.On(input.KeyPress|input.Backspace|input.Enter, t.handleKey, false)
	return t
}

func (t *TextField) handleKey(e *element.Element, in input.Input) bool {
	if !e.Focused {
		return false
	}
	switch in.Kind {
	case input.KeyPress:
		t.value = append(t.value, in.Rune)
		t.render()
		if t.onChange != nil {
			t.onChange(string(t.value))
		}
		return true
	case input.Backspace:
		if len(t.value) > 0 {
			t.value = t.value[:len(t.value)-1]
			t.render()
			if t.onChange != nil {
				t.onChange(string(t.value))
			}
		}
		return true
	case input.Enter:
		if t.onSubmit != nil {
			t.onSubmit(string(t.value))
		}
		return true
	}
	return false
}

func (t *TextField) render() {
	t.Element.Style.Text.Set(string(t.value), style.Value)
	t.Element.Dirty(stain.Color)
}

// Value returns the field's current contents.
func (t *TextField) Value() string { return string(t.value) }

// SetValue replaces the field's contents programmatically.
func (t *TextField) SetValue(v string) {
	t.value = []rune(v)
	t.render()
}

// OnChange registers a callback fired after every edit.
func (t *TextField) OnChange(fn func(value string)) { t.onChange = fn }

// OnSubmit registers a callback fired on Enter.
func (t *TextField) OnSubmit(fn func(value string)) { t.onSubmit = fn }
