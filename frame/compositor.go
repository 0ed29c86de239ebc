// Package frame implements the frame compositor: root buffer assembly via
// the render pipeline, diff against the previous frame as run-length
// changed spans, and escape-encoded emission.
package frame

import (
	"strconv"

	"ggui/color"
	"ggui/element"
	"ggui/render"
)

// Compositor holds two root-size buffers: the current (abstract) frame,
// produced fresh each cycle by the render pipeline, and the previous frame
// it diffs against.
type Compositor struct {
	root *element.Element
	prev []color.Cell
	w, h int
}

// New builds a Compositor over root with the given terminal dimensions.
func New(root *element.Element, w, h int) *Compositor {
	return &Compositor{root: root, w: w, h: h}
}

// Resize updates the terminal dimensions and invalidates the previous
// frame wholesale, forcing a full repaint on the next Compose.
func (c *Compositor) Resize(w, h int) {
	c.w, c.h = w, h
	c.prev = nil
}

// Compose refreshes the element tree (step 1), diffs the result against the
// previous frame producing per-row run-length spans (step 2), and encodes
// each span as cursor-position plus per-cell SGR-gated escapes terminated by
// a reset (step 3). It returns the bytes ready for TerminalBackend.Write
// (step 4 is the caller's responsibility) and swaps the previous frame.
func (c *Compositor) Compose() []byte {
	render.Safe(c.root)
	cur := c.root.Buffer

	if c.prev == nil || len(c.prev) != len(cur) {
		c.prev = make([]color.Cell, len(cur))
		for i := range c.prev {
			c.prev[i] = color.Empty
		}
	}

	var out []byte
	w := c.w
	for y := 0; y < c.h; y++ {
		x := 0
		for x < w {
			idx := y*w + x
			if idx >= len(cur) || cur[idx].Equal(c.prev[idx]) {
				x++
				continue
			}

			out = appendCursorPos(out, y+1, x+1)
			spanStart := x
			var prevFg, prevBg color.RGBA
			for x < w {
				idx = y*w + x
				if idx >= len(cur) || cur[idx].Equal(c.prev[idx]) {
					break
				}
				cell := cur[idx]
				out = cell.Escape(prevFg, prevBg, out)
				prevFg, prevBg = cell.Fg, cell.Bg
				c.prev[idx] = cell
				x++
			}
			// Record the run boundaries on the stored cells; Equal ignores
			// the flags so they never perturb the next diff.
			c.prev[y*w+spanStart].Start = true
			c.prev[y*w+x-1].End = true
			out = append(out, []byte(color.ResetSGR)...)
		}
	}
	return out
}

func appendCursorPos(buf []byte, row, col int) []byte {
	buf = append(buf, "\x1b["...)
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col), 10)
	buf = append(buf, 'H')
	return buf
}
