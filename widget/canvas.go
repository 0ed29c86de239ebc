package widget

import (
	"ggui/color"
	"ggui/element"
	"ggui/stain"
	"ggui/style"
)

// Canvas is a raw cell painter: the only element variant allowed to carry
// an OnDraw hook (applying OnDraw to anything else is a TYPE_MISMATCH
// configuration error, enforced by element.Element.Finalize checking Kind).
// A Canvas exposes a "poke a cell, mark dirty" surface through its own
// buffer, painted into the element's render buffer by the OnDraw hook each
// time COLOR is dirtied.
type Canvas struct {
	*element.Element
	cells []color.Cell
	w, h  int
}

// NewCanvas builds a width x height Canvas, initially blank. Extra style
// attributes are appended after the widget's own chain.
func NewCanvas(width, height int, extra ...style.Attr) *Canvas {
	c := &Canvas{w: width, h: height, cells: make([]color.Cell, width*height)}
	for i := range c.cells {
		c.cells[i] = color.Empty
	}
	chain := style.New(
		style.Width(style.Px(float64(width))),
		style.Height(style.Px(float64(height))),
		style.EnableBorder(false),
		style.OnDraw(c.draw),
	)
	for _, a := range extra {
		chain.And(a)
	}
	c.Element = element.New(chain, nil)
	c.Element.Kind = "canvas"
	c.Element.Finalize()
	return c
}

// draw is the on_draw hook: it copies the canvas's own cell buffer onto the
// element's render buffer verbatim, clipping to whichever is smaller.
func (c *Canvas) draw(owner interface{}, buf []color.Cell, w, h int) {
	n := w * h
	if n > len(c.cells) {
		n = len(c.cells)
	}
	copy(buf[:n], c.cells[:n])
}

// Set paints a single cell at (x, y) and dirties COLOR so the next render
// re-runs on_draw.
func (c *Canvas) Set(x, y int, cell color.Cell) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell
	c.Element.Dirty(stain.Color)
}

// Clear resets every cell to the empty glyph and dirties COLOR.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = color.Empty
	}
	c.Element.Dirty(stain.Color)
}

// Get returns the cell currently painted at (x, y).
func (c *Canvas) Get(x, y int) color.Cell {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return color.Empty
	}
	return c.cells[y*c.w+x]
}
