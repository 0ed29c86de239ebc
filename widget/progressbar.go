package widget

import (
	"ggui/color"
	"ggui/element"
	"ggui/style"
)

// ProgressBar renders a percentage-driven fill as two stacked child
// elements: a track spanning the full width behind a filled segment whose
// width is a Percentage length, re-resolved on every SetPercent.
type ProgressBar struct {
	*element.Element
	fill    *element.Element
	track   *element.Element
	percent float64
}

// NewProgressBar builds a width x 1 ProgressBar, initially empty. Extra
// style attributes are appended after the widget's own chain.
func NewProgressBar(width int, extra ...style.Attr) *ProgressBar {
	p := &ProgressBar{}
	chain := style.New(
		style.Width(style.Px(float64(width))),
		style.Height(style.Px(1)),
		style.EnableBorder(false),
	)
	for _, a := range extra {
		chain.And(a)
	}
	p.Element = element.New(chain, nil)
	p.Element.Finalize()

	p.track = element.New(style.New(
		style.Position(0, 0, 0),
		style.Width(style.Pct(1)),
		style.Height(style.Px(1)),
		style.BackgroundColor(color.Opaque(color.RGB{R: 40, G: 40, B: 40})),
	), p.Element)
	p.track.Finalize()
	p.Element.AddChild(p.track)

	// The fill sits above the track (higher z) and covers it from the left.
	p.fill = element.New(style.New(
		style.Position(0, 0, 1),
		style.Width(style.Pct(0)),
		style.Height(style.Px(1)),
		style.BackgroundColor(color.Opaque(color.RGB{G: 200})),
	), p.Element)
	p.fill.Finalize()
	p.Element.AddChild(p.fill)

	return p
}

// SetPercent updates the fill width; v is clamped to [0, 1].
func (p *ProgressBar) SetPercent(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.percent = v
	p.fill.SetWidth(style.Pct(v))
}

// Percent returns the current fill fraction.
func (p *ProgressBar) Percent() float64 { return p.percent }
