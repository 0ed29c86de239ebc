// Package widget provides concrete Element implementations on top of the
// render core's abstract contract: List, ScrollBox, TextField, Canvas,
// ProgressBar, Switch.
package widget

import (
	"ggui/color"
	"ggui/element"
	"ggui/input"
	"ggui/style"
)

// List is a selectable menu: a bordered element holding one child row per
// item, arrow-key navigation when focused, and an on-select callback fired
// on Enter. Each row is its own Element whose colors are toggled directly
// on selection change.
type List struct {
	*element.Element
	items    []string
	rows     []*element.Element
	selected int
	onSelect func(index int, item string)
}

// NewList builds a width x height bordered List containing one row per
// item. Extra style attributes are appended after the widget's own chain.
func NewList(items []string, width, height int, extra ...style.Attr) *List {
	l := &List{items: items}
	chain := style.New(
		style.Width(style.Px(float64(width))),
		style.Height(style.Px(float64(height))),
		style.EnableBorder(true),
		style.AllowScrolling(true),
	)
	for _, a := range extra {
		chain.And(a)
	}
	l.Element = element.New(chain, nil)
	l.Element.Finalize()

	for i, item := range items {
		row := element.New(style.New(
			style.Position(0, i, 0),
			style.Width(style.Pct(1)),
			style.Height(style.Px(1)),
			style.Text(item),
			style.TextColor(color.Opaque(color.RGB{R: 220, G: 220, B: 220})),
		), l.Element)
		row.Finalize()
		l.Element.AddChild(row)
		l.rows = append(l.rows, row)
	}
	l.highlight()

	l.Element.On(input.ArrowUp|input.ArrowDown|input.Enter, l.handleKey, false)
	return l
}

func (l *List) handleKey(e *element.Element, in input.Input) bool {
	if !e.Focused {
		return false
	}
	switch in.Kind {
	case input.ArrowUp:
		if l.selected > 0 {
			l.selected--
			l.highlight()
		}
		return true
	case input.ArrowDown:
		if l.selected < len(l.items)-1 {
			l.selected++
			l.highlight()
		}
		return true
	case input.Enter:
		if l.onSelect != nil {
			l.onSelect(l.selected, l.items[l.selected])
		}
		return true
	}
	return false
}

func (l *List) highlight() {
	for i, row := range l.rows {
		bg := color.Transparent
		if i == l.selected {
			bg = color.Opaque(color.RGB{G: 100})
		}
		row.SetColors(row.Style.TextColor.Get(), bg)
	}
}

// Selected returns the currently highlighted index.
func (l *List) Selected() int { return l.selected }

// OnSelect registers the callback fired when Enter is pressed while the
// list is focused.
func (l *List) OnSelect(fn func(index int, item string)) { l.onSelect = fn }
