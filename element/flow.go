package element

import "ggui/style"

// ApplyFlow auto-positions e's visible children along the flow axis (Row:
// left-to-right, Column: top-to-bottom), spacing them by each child's
// margin and, when wrap is enabled, starting a new line once the running
// extent would exceed e's content area. Elements whose FlowPriority is
// still Uninitialized keep whatever Position set explicitly; auto-flow
// never runs on them.
//
// Anchor is resolved against the container's full content extent rather
// than the current line's extent: a single-pass layout, no line-buffering
// measure step.
func ApplyFlow(e *Element) {
	if e.Style.FlowPriority.Status() == style.Uninitialized {
		return
	}
	availW, availH := e.ContentArea()
	row := e.Style.FlowPriority.Get() == style.Row
	wrap := e.Style.Wrap.Get()

	cursorMain, cursorCross, lineExtent := 0, 0, 0
	for _, c := range e.Children {
		if !c.Shown {
			continue
		}
		m := c.Style.Margin.Get()
		cw, ch := c.Width(), c.Height()

		if row {
			advance := m.Left + cw + m.Right
			if wrap && cursorMain > 0 && cursorMain+advance > availW {
				cursorMain = 0
				cursorCross += lineExtent
				lineExtent = 0
			}
			x := cursorMain + m.Left
			y := cursorCross + m.Top + crossOffset(c.Style.Anchor.Get(), availH-cursorCross, m.Top+ch+m.Bottom, false)
			c.SetPosition(x, y, c.Position.Z)
			cursorMain += advance
			if extent := m.Top + ch + m.Bottom; extent > lineExtent {
				lineExtent = extent
			}
		} else {
			advance := m.Top + ch + m.Bottom
			if wrap && cursorMain > 0 && cursorMain+advance > availH {
				cursorMain = 0
				cursorCross += lineExtent
				lineExtent = 0
			}
			y := cursorMain + m.Top
			x := cursorCross + m.Left + crossOffset(c.Style.Anchor.Get(), availW-cursorCross, m.Left+cw+m.Right, true)
			c.SetPosition(x, y, c.Position.Z)
			cursorMain += advance
			if extent := m.Left + cw + m.Right; extent > lineExtent {
				lineExtent = extent
			}
		}
	}
}

// crossOffset resolves anchor into an extra cross-axis offset within the
// space remaining in the container. columnMode selects which anchor pair
// (left/right vs up/down) applies to this axis; center applies either way.
func crossOffset(a style.Anchor, avail, size int, columnMode bool) int {
	slack := avail - size
	if slack < 0 {
		slack = 0
	}
	switch a {
	case style.AnchorCenter:
		return slack / 2
	case style.AnchorDown:
		if !columnMode {
			return slack
		}
	case style.AnchorRight:
		if columnMode {
			return slack
		}
	}
	return 0
}
