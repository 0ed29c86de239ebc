package render

import (
	"ggui/color"
	"ggui/element"
	"ggui/style"
)

// paintBorder draws e's own border glyphs and, if a title is set, overlays
// it on the top edge.
func paintBorder(e *element.Element) {
	w, h := e.Width(), e.Height()
	if w < 2 || h < 2 {
		return
	}
	g := e.Style.Border.Get()
	fg, bg := e.Style.BorderColor.Get(), e.Style.BorderBackground.Get()
	buf := e.Buffer

	set := func(x, y int, r rune) {
		buf[y*w+x] = color.Unicode(r, fg, bg)
	}

	set(0, 0, g.TopLeft)
	set(w-1, 0, g.TopRight)
	set(0, h-1, g.BottomLeft)
	set(w-1, h-1, g.BottomRight)
	for x := 1; x < w-1; x++ {
		set(x, 0, g.Horizontal)
		set(x, h-1, g.Horizontal)
	}
	for y := 1; y < h-1; y++ {
		set(0, y, g.Vertical)
		set(w-1, y, g.Vertical)
	}

	title := e.Style.Title.Get()
	if title != "" {
		x := 1
		for _, r := range title {
			if x >= w-1 {
				break
			}
			set(x, 0, r)
			x++
		}
	}
}

// mergeBorders rewrites border crossings into connector glyphs. Rather than
// walking pairs of bordered rects explicitly, it scans every cell of the
// already-nested buffer and computes the 4-bit neighbour mask directly: a
// crossing only ever produces a nonzero, classifiable mask, so the result
// is identical to a pairwise scan while avoiding separate
// rectangle-intersection bookkeeping. The scan reads from a snapshot so the
// outcome does not depend on iteration order, which keeps a second pass
// over the same buffer a no-op.
func mergeBorders(e *element.Element) {
	g := e.Style.Border.Get()
	w, h := e.Width(), e.Height()
	before := append([]color.Cell(nil), e.Buffer...)

	isVert := func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		return before[y*w+x].Rune() == g.Vertical
	}
	isHoriz := func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		return before[y*w+x].Rune() == g.Horizontal
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			up := isVert(x, y-1)
			down := isVert(x, y+1)
			left := isHoriz(x-1, y)
			right := isHoriz(x+1, y)

			r, ok := connectorFor(g, up, down, left, right)
			if !ok {
				continue
			}
			idx := y*w + x
			cell := before[idx]
			e.Buffer[idx] = color.Unicode(r, cell.Fg, cell.Bg)
		}
	}
}

// connectorFor maps the 4-bit neighbour mask to a connector glyph. Only the
// masks that unambiguously identify a tee or cross junction are handled;
// two-perpendicular-neighbour masks (plain corners) are left unresolved and
// the cell keeps whatever glyph it already carries.
func connectorFor(g style.BorderGlyphs, up, down, left, right bool) (rune, bool) {
	switch {
	case up && down && left && right:
		return g.Cross, true
	case up && down && right && !left:
		return g.ConnectorRight, true
	case up && down && left && !right:
		return g.ConnectorLeft, true
	case left && right && down && !up:
		return g.ConnectorDown, true
	case left && right && up && !down:
		return g.ConnectorUp, true
	default:
		return 0, false
	}
}
