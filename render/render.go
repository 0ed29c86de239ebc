// Package render implements the per-element render pipeline: dirty-gated
// buffer (re)computation, child nesting with clipping and alpha compositing,
// opacity/shadow post-processing, and border merging.
package render

import (
	"fmt"
	"math"
	"strings"

	"ggui/color"
	"ggui/element"
	"ggui/stain"
	"ggui/style"
)

var reportSink func(string)

// SetReportSink installs the function used to surface render-path invariant
// breaks. The runtime package installs its logger here.
func SetReportSink(fn func(string)) { reportSink = fn }

func report(format string, args ...interface{}) {
	if reportSink != nil {
		reportSink(fmt.Sprintf(format, args...))
	}
}

// Safe wraps Render with a recover so a render-path invariant break degrades
// to a skipped element for this frame rather than crashing the renderer.
func Safe(e *element.Element) (buf []color.Cell) {
	defer func() {
		if r := recover(); r != nil {
			report("render panic on element %d: %v", e.ID, r)
			buf = nil
		}
	}()
	return Render(e)
}

// Render runs the staged render pass and returns the element's buffer.
// Degenerate dimensions (<=0) are skipped: not reachable in practice since
// element.Width/Height clamp to >=1, but the renderer must never fail.
func Render(e *element.Element) []color.Cell {
	w, h := e.Width(), e.Height()
	if w <= 0 || h <= 0 {
		return nil
	}

	// A translucent element, or one covering a translucent descendant,
	// composites against whatever currently sits behind it, so its cache can
	// never be trusted: force a full recompute before the clean check.
	if e.Style.Opacity.Get() < 1 || hasTransparentChildren(e) {
		e.Stain |= stain.Deep | stain.Stretch
	}

	// Fully clean subtree: the cached buffer is current.
	if e.Stain == stain.Clean {
		return e.Buffer
	}

	// STRETCH — resize/clear, then require COLOR|EDGE|DEEP.
	if e.Stain.Any(stain.Stretch) {
		e.Buffer = make([]color.Cell, w*h)
		for i := range e.Buffer {
			e.Buffer[i] = color.Empty
		}
		e.Stain |= stain.Color | stain.Edge | stain.Deep
		e.Stain &^= stain.Stretch
	}

	// COLOR — paint base fill using focus>hover>base precedence.
	if e.Stain.Any(stain.Color) {
		fg, bg := activeColors(e)
		fill := color.Ascii(' ', fg, bg)
		for i := range e.Buffer {
			e.Buffer[i] = fill
		}
		paintText(e, fg, bg)
		if fn := e.Style.Hooks.OnDraw; fn != nil {
			fn(e, e.Buffer, w, h)
		}
		e.Stain &^= stain.Color
	}

	// DEEP — auto-flow children (flow_priority/wrap/margin/anchor),
	// then recurse into visible children and nest with clipping.
	if e.Stain.Any(stain.Deep) {
		element.ApplyFlow(e)
		for _, child := range e.Children {
			if !child.Shown {
				continue
			}
			nestChild(e, child)
		}
		e.Stain &^= stain.Deep
	}

	// EDGE — border glyphs/title, then merge crossings.
	if e.Stain.Any(stain.Edge) {
		if e.HasBorder() {
			paintBorder(e)
		}
		if anyChildBordered(e) {
			mergeBorders(e)
		}
		e.Stain &^= stain.Edge
	}

	// MOVE, FINALIZE, RESET and STATE carry no buffer-content work of their
	// own (MOVE only invalidates the absolute-position cache, tracked
	// separately by element.invalidateAbsolute; FINALIZE is a one-shot marker
	// Finalize already consumed; RESET's STRETCH companion was fulfilled
	// above; STATE's redraw is driven by the STRETCH Display puts on the
	// parent) but must still clear here, or the clean shortcut could never
	// trigger again once an element has been positioned, finalized or
	// toggled once.
	e.Stain &^= stain.Move | stain.Finalize | stain.Reset | stain.State

	// Cache and return. OnRender fires once per pass that actually
	// repainted; the clean shortcut above never reaches this point.
	if fn := e.Style.Hooks.OnRender; fn != nil {
		fn(e)
	}
	return e.Buffer
}

// hasTransparentChildren reports whether any shown descendant is translucent.
func hasTransparentChildren(e *element.Element) bool {
	for _, c := range e.Children {
		if !c.Shown {
			continue
		}
		if c.Style.Opacity.Get() < 1 || hasTransparentChildren(c) {
			return true
		}
	}
	return false
}

func activeColors(e *element.Element) (fg, bg color.RGBA) {
	v := e.Style
	fg, bg = v.TextColor.Get(), v.BackgroundColor.Get()
	if e.Hovered {
		if v.HoverTextColor.Status() != style.Uninitialized {
			fg = v.HoverTextColor.Get()
		}
		if v.HoverBackgroundColor.Status() != style.Uninitialized {
			bg = v.HoverBackgroundColor.Get()
		}
	}
	if e.Focused {
		if v.FocusTextColor.Status() != style.Uninitialized {
			fg = v.FocusTextColor.Get()
		}
		if v.FocusBackgroundColor.Status() != style.Uninitialized {
			bg = v.FocusBackgroundColor.Get()
		}
	}
	return
}

// paintText writes the text attribute into the buffer, one line per '\n',
// inset past the border and centered within the content width.
func paintText(e *element.Element, fg, bg color.RGBA) {
	text := e.Style.Text.Get()
	if text == "" {
		return
	}
	w, h := e.Width(), e.Height()
	inset := 0
	if e.HasBorder() {
		inset = 1
	}
	avail := w - 2*inset
	if avail <= 0 {
		return
	}
	y := inset
	for _, line := range strings.Split(text, "\n") {
		if y >= h-inset {
			break
		}
		runes := []rune(line)
		if len(runes) > avail {
			runes = runes[:avail]
		}
		x := inset + (avail-len(runes))/2
		for _, r := range runes {
			e.Buffer[y*w+x] = color.Unicode(r, fg, bg)
			x++
		}
		y++
	}
}

func anyChildBordered(e *element.Element) bool {
	for _, c := range e.Children {
		if c.Shown && c.HasBorder() {
			return true
		}
	}
	return false
}

// nestChild recursively renders child, applies its opacity/shadow
// post-process, and composes it into parent's buffer with clipping.
func nestChild(parent, child *element.Element) {
	buf := Safe(child)
	if buf == nil {
		return
	}

	w, h := child.Width(), child.Height()
	buf, w, h = processShadow(buf, w, h, child.Style.Shadow.Get())
	buf = processOpacity(buf, child.Style.Opacity.Get())
	child.PostBuffer, child.PostW, child.PostH = buf, w, h

	startX, startY, endX, endY, negOffX, negOffY := parent.FittingArea(child)
	if endX <= startX || endY <= startY {
		return
	}

	pw := parent.Width()
	for y := startY; y < endY; y++ {
		cy := negOffY + (y - startY)
		if cy < 0 || cy >= h {
			continue
		}
		for x := startX; x < endX; x++ {
			cx := negOffX + (x - startX)
			if cx < 0 || cx >= w {
				continue
			}
			srcIdx := cy*w + cx
			dstIdx := y*pw + x
			if srcIdx < 0 || srcIdx >= len(buf) || dstIdx < 0 || dstIdx >= len(parent.Buffer) {
				continue
			}
			parent.Buffer[dstIdx] = color.Compose(parent.Buffer[dstIdx], buf[srcIdx])
		}
	}
}

// processOpacity multiplies every cell's fg/bg alpha by factor. factor==1
// returns the buffer untouched.
func processOpacity(buf []color.Cell, factor float64) []color.Cell {
	if factor >= 1 {
		return buf
	}
	out := make([]color.Cell, len(buf))
	for i, c := range buf {
		c.Fg = c.Fg.ScaleAlpha(factor)
		c.Bg = c.Bg.ScaleAlpha(factor)
		out[i] = c
	}
	return out
}

// processShadow extends the buffer by shadow.Length on every side, filling
// the halo with shadow.Color at geometrically decaying alpha (coefficient
// capped at 0.9 per ring, floored at zero), then composites the original
// buffer on top at an offset derived from shadow.Direction.
func processShadow(buf []color.Cell, w, h int, s style.Shadow) ([]color.Cell, int, int) {
	if !s.Enabled || s.Length <= 0 {
		return buf, w, h
	}
	l := s.Length
	newW, newH := w+2*l, h+2*l

	offX := l + int(s.Direction.X)
	offY := l + int(s.Direction.Y)
	if offX < 0 {
		offX = 0
	}
	if offX > newW-w {
		offX = newW - w
	}
	if offY < 0 {
		offY = 0
	}
	if offY > newH-h {
		offY = newH - h
	}

	out := make([]color.Cell, newW*newH)
	decay := s.Decay()
	baseAlpha := s.Color.Alpha
	for y := 0; y < newH; y++ {
		for x := 0; x < newW; x++ {
			ring := ringDistance(x, y, offX, offY, w, h)
			alpha := baseAlpha
			for i := 1; i < ring; i++ {
				alpha *= decay
			}
			if alpha < 0 {
				alpha = 0
			}
			a := uint8(math.Round(alpha * 255))
			shadowBg := color.NewRGBA(s.Color.R, s.Color.G, s.Color.B, a)
			out[y*newW+x] = color.Ascii(' ', color.RGBA{}, shadowBg)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst := (offY+y)*newW + (offX + x)
			out[dst] = color.Compose(out[dst], buf[y*w+x])
		}
	}
	return out, newW, newH
}

// ringDistance returns the Chebyshev distance from (x,y) to the inner rect
// [offX,offX+w) x [offY,offY+h); 0 means inside the rect itself.
func ringDistance(x, y, offX, offY, w, h int) int {
	dx := 0
	switch {
	case x < offX:
		dx = offX - x
	case x >= offX+w:
		dx = x - (offX + w) + 1
	}
	dy := 0
	switch {
	case y < offY:
		dy = offY - y
	case y >= offY+h:
		dy = y - (offY + h) + 1
	}
	if dx > dy {
		return dx
	}
	return dy
}
