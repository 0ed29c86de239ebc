package widget

import (
	"ggui/element"
	"ggui/input"
	"ggui/style"
)

// ScrollBox is a fixed-size viewport over a column of rows taller than the
// box itself. Scrolling repositions each row's Y coordinate by the current
// offset and lets element.FittingArea's negative-offset clipping do the
// viewport clipping, rather than adding a second clip mechanism —
// AllowScrolling is the marker attribute; the offset bookkeeping lives
// here.
type ScrollBox struct {
	*element.Element
	rows   []*element.Element
	rowY   []int
	offset int
}

// NewScrollBox builds a width x height bordered, scrollable viewport. Extra
// style attributes are appended after the widget's own chain.
func NewScrollBox(width, height int, extra ...style.Attr) *ScrollBox {
	s := &ScrollBox{}
	chain := style.New(
		style.Width(style.Px(float64(width))),
		style.Height(style.Px(float64(height))),
		style.EnableBorder(true),
		style.AllowScrolling(true),
		style.AllowOverflow(true),
	)
	for _, a := range extra {
		chain.And(a)
	}
	s.Element = element.New(chain, nil)
	s.Element.Finalize()
	s.Element.On(
		input.MouseMiddleScrollUp|input.MouseMiddleScrollDown|input.ArrowUp|input.ArrowDown,
		s.handleScroll, false,
	)
	return s
}

// AddRow appends child as the next row, stacked directly below the
// previous row regardless of the current scroll offset.
func (s *ScrollBox) AddRow(child *element.Element) {
	y := 0
	if n := len(s.rowY); n > 0 {
		y = s.rowY[n-1] + s.rows[n-1].Height()
	}
	s.rowY = append(s.rowY, y)
	s.rows = append(s.rows, child)
	child.SetPosition(0, y-s.offset, child.Position.Z)
	s.Element.AddChild(child)
}

func (s *ScrollBox) contentHeight() int {
	if len(s.rows) == 0 {
		return 0
	}
	last := len(s.rows) - 1
	return s.rowY[last] + s.rows[last].Height()
}

func (s *ScrollBox) clampOffset() {
	_, h := s.Element.ContentArea()
	max := s.contentHeight() - h
	if max < 0 {
		max = 0
	}
	if s.offset > max {
		s.offset = max
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

func (s *ScrollBox) reposition() {
	for i, row := range s.rows {
		row.SetPosition(0, s.rowY[i]-s.offset, row.Position.Z)
	}
}

func (s *ScrollBox) handleScroll(e *element.Element, in input.Input) bool {
	switch in.Kind {
	case input.MouseMiddleScrollUp:
		if s.offset > 0 {
			s.offset--
			s.reposition()
		}
		return true
	case input.MouseMiddleScrollDown:
		s.offset++
		s.clampOffset()
		s.reposition()
		return true
	case input.ArrowUp:
		if !e.Focused || s.offset == 0 {
			return false
		}
		s.offset--
		s.reposition()
		return true
	case input.ArrowDown:
		if !e.Focused {
			return false
		}
		s.offset++
		s.clampOffset()
		s.reposition()
		return true
	}
	return false
}

// Offset returns the current scroll offset, in rows.
func (s *ScrollBox) Offset() int { return s.offset }
