// Package stain defines the dirty-bit vocabulary shared by style embedding
// and the element tree.
package stain

// Mask is a bitfield of dirty reasons. It is monotone within a frame:
// handlers and style embedding only add dirt; the render pipeline is the
// only agent that clears it.
type Mask uint16

const (
	Clean Mask = 0

	Color    Mask = 1 << 0 // recolor-only
	Edge     Mask = 1 << 1 // border glyphs/title changed
	Deep     Mask = 1 << 2 // children changed, identity or z-order
	Stretch  Mask = 1 << 3 // dimensions changed
	State    Mask = 1 << 4 // display flag changed
	Move     Mask = 1 << 5 // absolute-position cache invalid
	Finalize Mask = 1 << 6 // element has been finalized
	Reset    Mask = 1 << 7 // clears redundant STRETCH propagation
)

// Has reports whether all bits in want are set.
func (m Mask) Has(want Mask) bool { return m&want == want }

// Any reports whether any bit in want is set.
func (m Mask) Any(want Mask) bool { return m&want != 0 }
