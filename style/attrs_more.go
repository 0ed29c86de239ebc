package style

import (
	"ggui/color"
	"ggui/stain"
)

// --- flow / wrap ---

type attrFlowPriority struct{ P FlowPriority }

// FlowPriorityAttr sets row/column flow.
func FlowPriorityAttr(p FlowPriority) Attr { return attrFlowPriority{p} }

func (a attrFlowPriority) Order() Order { return Instant }
func (a attrFlowPriority) Evaluate(self, parent *Values) {}
func (a attrFlowPriority) Embed(host *Values) stain.Mask {
	host.FlowPriority.set(a.P, Value)
	return stain.Deep
}
func (a attrFlowPriority) Clone() Attr { return a }

type attrWrap struct{ On bool }

// Wrap toggles flow wrapping: with it on, auto-flow starts a new line of
// children once the next child would exceed the content area. Text is not
// wrapped.
func Wrap(on bool) Attr { return attrWrap{on} }

func (a attrWrap) Order() Order { return Instant }
func (a attrWrap) Evaluate(self, parent *Values) {}
func (a attrWrap) Embed(host *Values) stain.Mask {
	host.Wrap.set(a.On, Value)
	return stain.Deep
}
func (a attrWrap) Clone() Attr { return a }

// --- overflow / dynamic size / scrolling ---

type attrAllowOverflow struct{ On bool }

// AllowOverflow makes the element refuse to be shrunk into a parent whose
// content area it exceeds (ResizeTo returns false), so such an insertion is
// abandoned.
func AllowOverflow(on bool) Attr { return attrAllowOverflow{on} }

func (a attrAllowOverflow) Order() Order { return Instant }
func (a attrAllowOverflow) Evaluate(self, parent *Values) {}
func (a attrAllowOverflow) Embed(host *Values) stain.Mask {
	host.AllowOverflow.set(a.On, Value)
	return stain.Clean
}
func (a attrAllowOverflow) Clone() Attr { return a }

type attrAllowDynamicSize struct{ On bool }

// AllowDynamicSize toggles whether the element grows to fit its children.
func AllowDynamicSize(on bool) Attr { return attrAllowDynamicSize{on} }

func (a attrAllowDynamicSize) Order() Order { return Instant }
func (a attrAllowDynamicSize) Evaluate(self, parent *Values) {}
func (a attrAllowDynamicSize) Embed(host *Values) stain.Mask {
	host.AllowDynamicSize.set(a.On, Value)
	return stain.Clean
}
func (a attrAllowDynamicSize) Clone() Attr { return a }

type attrAllowScrolling struct{ On bool }

// AllowScrolling marks the element as scrollable. The core does not read
// it; widget.ScrollBox keeps its own scroll offset.
func AllowScrolling(on bool) Attr { return attrAllowScrolling{on} }

func (a attrAllowScrolling) Order() Order { return Instant }
func (a attrAllowScrolling) Evaluate(self, parent *Values) {}
func (a attrAllowScrolling) Embed(host *Values) stain.Mask {
	host.AllowScrolling.set(a.On, Value)
	return stain.Clean
}
func (a attrAllowScrolling) Clone() Attr { return a }

// --- margin ---

type attrMargin struct{ M Margin }

// MarginAttr sets the four-sided margin.
func MarginAttr(m Margin) Attr { return attrMargin{m} }

func (a attrMargin) Order() Order { return Instant }
func (a attrMargin) Evaluate(self, parent *Values) {}
func (a attrMargin) Embed(host *Values) stain.Mask {
	host.Margin.set(a.M, Value)
	return stain.Clean
}
func (a attrMargin) Clone() Attr { return a }

// --- opacity ---

type attrOpacity struct{ V float64 }

// Opacity sets the element's opacity multiplier (0.0-1.0).
func Opacity(v float64) Attr { return attrOpacity{v} }

func (a attrOpacity) Order() Order { return Instant }
func (a attrOpacity) Evaluate(self, parent *Values) {}
func (a attrOpacity) Embed(host *Values) stain.Mask {
	host.Opacity.set(a.V, Value)
	return stain.Stretch
}
func (a attrOpacity) Clone() Attr { return a }

// --- shadow ---

type attrShadowAttr struct{ S Shadow }

// ShadowAttr attaches a drop-shadow post-process.
func ShadowAttr(s Shadow) Attr { return attrShadowAttr{s} }

func (a attrShadowAttr) Order() Order { return Instant }
func (a attrShadowAttr) Evaluate(self, parent *Values) {}
func (a attrShadowAttr) Embed(host *Values) stain.Mask {
	host.Shadow.set(a.S, Value)
	return stain.Stretch
}
func (a attrShadowAttr) Clone() Attr { return a }

// --- anchor ---

type attrAnchor struct{ A Anchor }

// AnchorAttr sets child alignment within the fitting area.
func AnchorAttr(a Anchor) Attr { return attrAnchor{a} }

func (a attrAnchor) Order() Order { return Instant }
func (a attrAnchor) Evaluate(self, parent *Values) {}
func (a attrAnchor) Embed(host *Values) stain.Mask {
	host.Anchor.set(a.A, Value)
	return stain.Clean
}
func (a attrAnchor) Clone() Attr { return a }

// --- identity / text ---

type attrName struct{ S string }

// Name sets the element's debug/lookup name.
func Name(s string) Attr { return attrName{s} }

func (a attrName) Order() Order { return Instant }
func (a attrName) Evaluate(self, parent *Values) {}
func (a attrName) Embed(host *Values) stain.Mask {
	host.Name.set(a.S, Value)
	return stain.Clean
}
func (a attrName) Clone() Attr { return a }

type attrTitle struct{ S string }

// Title sets the element's border title.
func Title(s string) Attr { return attrTitle{s} }

func (a attrTitle) Order() Order { return Instant }
func (a attrTitle) Evaluate(self, parent *Values) {}
func (a attrTitle) Embed(host *Values) stain.Mask {
	host.Title.set(a.S, Value)
	return stain.Edge
}
func (a attrTitle) Clone() Attr { return a }

type attrDisplay struct{ On bool }

// Display sets the initial shown flag.
func Display(on bool) Attr { return attrDisplay{on} }

func (a attrDisplay) Order() Order { return Instant }
func (a attrDisplay) Evaluate(self, parent *Values) {}
func (a attrDisplay) Embed(host *Values) stain.Mask {
	host.Display.set(a.On, Value)
	return stain.State
}
func (a attrDisplay) Clone() Attr { return a }

type attrText struct{ S string }

// Text sets the element's text content.
func Text(s string) Attr { return attrText{s} }

func (a attrText) Order() Order { return Instant }
func (a attrText) Evaluate(self, parent *Values) {}
func (a attrText) Embed(host *Values) stain.Mask {
	host.Text.set(a.S, Value)
	return stain.Color
}
func (a attrText) Clone() Attr { return a }

// --- hooks ---

type attrHook struct {
	attach func(h *Hooks)
}

func (a attrHook) Order() Order { return Instant }
func (a attrHook) Evaluate(self, parent *Values) {}
func (a attrHook) Embed(host *Values) stain.Mask {
	a.attach(&host.Hooks)
	return stain.Clean
}
func (a attrHook) Clone() Attr { return a }

// OnInit, OnDestroy, OnHide, OnShow, OnRender, OnClick, OnInput and OnDraw
// attach lifecycle/event hooks to the owning element.
func OnInit(fn func(owner interface{})) Attr {
	return attrHook{func(h *Hooks) { h.OnInit = fn }}
}
func OnDestroy(fn func(owner interface{})) Attr {
	return attrHook{func(h *Hooks) { h.OnDestroy = fn }}
}
func OnHide(fn func(owner interface{})) Attr {
	return attrHook{func(h *Hooks) { h.OnHide = fn }}
}
func OnShow(fn func(owner interface{})) Attr {
	return attrHook{func(h *Hooks) { h.OnShow = fn }}
}
func OnRender(fn func(owner interface{})) Attr {
	return attrHook{func(h *Hooks) { h.OnRender = fn }}
}
func OnClick(fn func(owner interface{}, x, y int) bool) Attr {
	return attrHook{func(h *Hooks) { h.OnClick = fn }}
}
func OnInput(fn func(owner interface{}, r rune) bool) Attr {
	return attrHook{func(h *Hooks) { h.OnInput = fn }}
}
func OnDraw(fn func(owner interface{}, buf []color.Cell, w, h int)) Attr {
	return attrHook{func(h *Hooks) { h.OnDraw = fn }}
}

// --- node / childs (DELAYED) ---

type attrChildren struct{ nodes []interface{} }

// Node queues a single child to be added once geometry/colors are settled.
func Node(child interface{}) Attr { return attrChildren{[]interface{}{child}} }

// Childs queues multiple children.
func Childs(children ...interface{}) Attr { return attrChildren{children} }

func (a attrChildren) Order() Order { return Delayed }
func (a attrChildren) Evaluate(self, parent *Values) {}
func (a attrChildren) Embed(host *Values) stain.Mask {
	host.PendingChildren = append(host.PendingChildren, a.nodes...)
	return stain.Deep
}
func (a attrChildren) Clone() Attr { return attrChildren{append([]interface{}{}, a.nodes...)} }
