package style

import "ggui/stain"

// Owner is the minimal capability Embed needs from the element that is
// receiving a style chain: the official add-child path (so growth/clipping
// rules run for delayed children) and a way to mark the accumulated stain
// mask dirty. The element package's *Element implements this; kept as an
// interface here to avoid an import cycle (element depends on style, not
// the reverse).
type Owner interface {
	AddChild(child interface{})
	Dirty(m stain.Mask)
}

// Embed applies chain to host in ordered passes, writing settled values
// and linking any queued children into owner. parent is host's parent
// Values, or nil for the root. It returns whether embedding produced any
// stain at all.
func Embed(c *Chain, owner Owner, host *Values, parent *Values) bool {
	var mask stain.Mask

	// Pass 1: INSTANT attributes settle geometry/colors/etc first.
	for _, a := range c.Attrs() {
		if a.Order() == Instant {
			mask |= a.Embed(host)
		}
	}

	// Pass 2: DELAYED attributes (node/childs) buffer children onto host,
	// run only after geometry/colors are final so a container's AddChild
	// sees finished dimensions.
	for _, a := range c.Attrs() {
		if a.Order() == Delayed {
			mask |= a.Embed(host)
		}
	}

	// Pass 3: evaluate dynamic values (position/width/height/border-enable/
	// colors/margin/opacity/allow_scrolling/anchor) against the parent.
	// Attr kinds with no relative component no-op here.
	for _, a := range c.Attrs() {
		a.Evaluate(host, parent)
	}

	// Pass 4: link buffered children through the official AddChild path.
	for _, child := range host.PendingChildren {
		owner.AddChild(child)
	}
	host.PendingChildren = nil

	// Pass 5: dirty the owner with the accumulated mask.
	if mask != stain.Clean {
		owner.Dirty(mask)
	}
	return mask != stain.Clean
}
