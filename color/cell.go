package color

import (
	"strconv"
	"unicode/utf8"
)

// Cell is a single glyph at one screen position: either an ASCII byte or a
// 1-4 byte UTF-8 sequence stored inline (no heap allocation per cell), plus
// a foreground and background color and two encoding-boundary flags used by
// the frame compositor to skip redundant SGR sequences during emission.
type Cell struct {
	glyph  [4]byte
	glyphN uint8

	Fg RGBA
	Bg RGBA

	// Start/End mark whether this cell opens/closes a run of identically
	// styled cells; the compositor uses them to avoid re-emitting SGR codes
	// for every cell in a run.
	Start bool
	End   bool
}

// Empty is the sentinel cell: a space glyph with default (zero-value)
// colors. Any "default" cell compares equal to Empty so dirty/diff checks
// can use a fast equality test.
var Empty = Cell{glyph: [4]byte{' '}, glyphN: 1}

// Ascii builds a cell from a single ASCII byte.
func Ascii(b byte, fg, bg RGBA) Cell {
	return Cell{glyph: [4]byte{b}, glyphN: 1, Fg: fg, Bg: bg}
}

// Unicode builds a cell from a rune's UTF-8 encoding (1-4 bytes).
func Unicode(r rune, fg, bg RGBA) Cell {
	var c Cell
	n := utf8.EncodeRune(c.glyph[:], r)
	c.glyphN = uint8(n)
	c.Fg = fg
	c.Bg = bg
	return c
}

// Rune decodes the cell's glyph back to a rune.
func (c Cell) Rune() rune {
	if c.glyphN == 0 {
		return ' '
	}
	r, _ := utf8.DecodeRune(c.glyph[:c.glyphN])
	return r
}

// Glyph returns the raw inline UTF-8 bytes.
func (c Cell) Glyph() []byte { return c.glyph[:c.glyphN] }

// IsDefault reports whether the cell is a space with zero-value colors, in
// which case it must equal Empty.
func (c Cell) IsDefault() bool {
	return c.Rune() == ' ' && c.Fg == (RGBA{}) && c.Bg == (RGBA{})
}

// Equal is full structural equality (glyph + both colors); encoding flags
// are emission bookkeeping and excluded so cache/diff comparisons are not
// perturbed by them.
func (c Cell) Equal(o Cell) bool {
	return c.glyphN == o.glyphN && c.glyph == o.glyph && c.Fg.Equal(o.Fg) && c.Bg.Equal(o.Bg)
}

// Compose layers src over dst: if src's background is fully opaque, src
// replaces dst outright; if fully transparent, dst's background is kept;
// otherwise both background layers are alpha-mixed.
// Glyph replacement is independent of the background rule: src's glyph (and
// its foreground, blended into dst's) lands whenever src carries a
// non-default glyph, so a bordered child with a transparent background still
// nests its border runes into the parent.
func Compose(dst, src Cell) Cell {
	if src.Bg.A == 255 {
		return src
	}
	out := dst
	if src.Bg.A > 0 {
		out.Bg = Composite(dst.Bg, src.Bg)
	}
	if src.Rune() != ' ' || src.Fg.A != 0 {
		out.glyph = src.glyph
		out.glyphN = src.glyphN
		out.Fg = Composite(dst.Fg, src.Fg)
	}
	return out
}

// Escape emits the SGR sequence transitioning from prevFg/prevBg to cell's
// colors, followed by the glyph bytes. SGR updates are only emitted when a
// color actually changed, which is what lets the frame compositor skip
// redundant escape sequences across a run of identically colored cells.
func (c Cell) Escape(prevFg, prevBg RGBA, buf []byte) []byte {
	if !c.Fg.Equal(prevFg) {
		buf = appendSGRFg(buf, c.Fg)
	}
	if !c.Bg.Equal(prevBg) {
		buf = appendSGRBg(buf, c.Bg)
	}
	if c.glyphN == 0 {
		return append(buf, ' ')
	}
	return append(buf, c.glyph[:c.glyphN]...)
}

func appendSGRFg(buf []byte, c RGBA) []byte {
	buf = append(buf, "\x1b[38;2;"...)
	buf = strconv.AppendInt(buf, int64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(c.B), 10)
	return append(buf, 'm')
}

func appendSGRBg(buf []byte, c RGBA) []byte {
	buf = append(buf, "\x1b[48;2;"...)
	buf = strconv.AppendInt(buf, int64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(c.B), 10)
	return append(buf, 'm')
}

// ResetSGR is CSI 0m, the attribute-reset sequence terminating a span.
const ResetSGR = "\x1b[0m"
