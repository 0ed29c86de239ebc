package style

import (
	"ggui/color"
	"ggui/stain"
)

// Order is the embed order an attribute kind carries: INSTANT attributes
// settle geometry/colors before DELAYED ones (node/childs) are linked, so a
// container's add-child sees final dimensions.
type Order int

const (
	Instant Order = iota
	Delayed
)

// Attr is the capability set every attribute variant implements: evaluate
// relative units against a parent, embed the settled value into a host
// Values bundle (returning the stain bits the owning element must mark
// dirty), and clone itself for reuse across many owners.
type Attr interface {
	Order() Order
	Evaluate(self, parent *Values)
	Embed(host *Values) stain.Mask
	Clone() Attr
}

// --- position ---

type attrPosition struct{ X, Y, Z int }

func Position(x, y, z int) Attr { return attrPosition{x, y, z} }

func (a attrPosition) Order() Order { return Instant }
func (a attrPosition) Evaluate(self, parent *Values) {}
func (a attrPosition) Embed(host *Values) stain.Mask {
	host.Position.X, host.Position.Y, host.Position.Z = a.X, a.Y, a.Z
	return stain.Move
}
func (a attrPosition) Clone() Attr { return a }

// --- width / height ---

type attrWidth struct{ L Length }

// Width sets the width attribute.
func Width(l Length) Attr { return attrWidth{l} }

func (a attrWidth) Order() Order { return Instant }

// Evaluate resolves the settled width, not a.L: a later same-axis attribute
// may have won the status race, in which case this instance's captured
// length lost and must not clobber the winner.
func (a attrWidth) Evaluate(self, parent *Values) {
	l := self.Width.val
	if l.IsPercentage() && parent != nil {
		basis := parent.Width.val.Evaluate(0)
		if parent.EnableBorder.val {
			basis -= 2
		}
		self.Width.val = Px(l.Evaluate(basis))
	}
}
func (a attrWidth) Embed(host *Values) stain.Mask {
	host.Width.set(a.L, Value)
	if a.L.IsPercentage() {
		// Percentage wins over dynamic sizing for this axis.
		host.AllowDynamicSize.set(false, Value)
	}
	return stain.Stretch
}
func (a attrWidth) Clone() Attr { return a }

type attrHeight struct{ L Length }

// Height sets the height attribute.
func Height(l Length) Attr { return attrHeight{l} }

func (a attrHeight) Order() Order { return Instant }

func (a attrHeight) Evaluate(self, parent *Values) {
	l := self.Height.val
	if l.IsPercentage() && parent != nil {
		basis := parent.Height.val.Evaluate(0)
		if parent.EnableBorder.val {
			basis -= 2
		}
		self.Height.val = Px(l.Evaluate(basis))
	}
}
func (a attrHeight) Embed(host *Values) stain.Mask {
	host.Height.set(a.L, Value)
	if a.L.IsPercentage() {
		host.AllowDynamicSize.set(false, Value)
	}
	return stain.Stretch
}
func (a attrHeight) Clone() Attr { return a }

// --- border ---

type attrEnableBorder struct{ On bool }

// EnableBorder toggles the element's border.
func EnableBorder(on bool) Attr { return attrEnableBorder{on} }

func (a attrEnableBorder) Order() Order { return Instant }
func (a attrEnableBorder) Evaluate(self, parent *Values) {}
func (a attrEnableBorder) Embed(host *Values) stain.Mask {
	host.EnableBorder.set(a.On, Value)
	if a.On && host.BorderBackground.status == Uninitialized {
		host.BorderBackground.val = host.BackgroundColor.val
	}
	return stain.Edge
}
func (a attrEnableBorder) Clone() Attr { return a }

type attrStyledBorder struct{ G BorderGlyphs }

// StyledBorder sets the border glyph set.
func StyledBorder(g BorderGlyphs) Attr { return attrStyledBorder{g} }

func (a attrStyledBorder) Order() Order { return Instant }
func (a attrStyledBorder) Evaluate(self, parent *Values) {}
func (a attrStyledBorder) Embed(host *Values) stain.Mask {
	host.Border.set(a.G, Value)
	return stain.Edge
}
func (a attrStyledBorder) Clone() Attr { return a }

// --- colors ---

type colorKind int

const (
	colorText colorKind = iota
	colorBackground
	colorBorder
	colorBorderBackground
	colorHoverText
	colorHoverBackground
	colorFocusText
	colorFocusBackground
)

type attrColor struct {
	kind colorKind
	c    color.RGBA
}

func (a attrColor) field(host *Values) *statusField[color.RGBA] {
	switch a.kind {
	case colorText:
		return &host.TextColor
	case colorBackground:
		return &host.BackgroundColor
	case colorBorder:
		return &host.BorderColor
	case colorBorderBackground:
		return &host.BorderBackground
	case colorHoverText:
		return &host.HoverTextColor
	case colorHoverBackground:
		return &host.HoverBackgroundColor
	case colorFocusText:
		return &host.FocusTextColor
	case colorFocusBackground:
		return &host.FocusBackgroundColor
	}
	return &host.TextColor
}

func (a attrColor) Order() Order { return Instant }
func (a attrColor) Evaluate(self, parent *Values) {}
func (a attrColor) Embed(host *Values) stain.Mask {
	a.field(host).set(a.c, Value)
	return stain.Color
}
func (a attrColor) Clone() Attr { return a }

// TextColor, BackgroundColor, BorderColor, BorderBackgroundColor and their
// Hover/Focus counterparts are the color attribute factories.
func TextColor(c color.RGBA) Attr { return attrColor{colorText, c} }
func BackgroundColor(c color.RGBA) Attr { return attrColor{colorBackground, c} }
func BorderColor(c color.RGBA) Attr { return attrColor{colorBorder, c} }
func BorderBackgroundColor(c color.RGBA) Attr { return attrColor{colorBorderBackground, c} }
func HoverTextColor(c color.RGBA) Attr { return attrColor{colorHoverText, c} }
func HoverBackgroundColor(c color.RGBA) Attr { return attrColor{colorHoverBackground, c} }
func FocusTextColor(c color.RGBA) Attr { return attrColor{colorFocusText, c} }
func FocusBackgroundColor(c color.RGBA) Attr { return attrColor{colorFocusBackground, c} }
