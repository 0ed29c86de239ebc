package style

import "ggui/color"

// Status is the precedence tag every attribute value carries. A higher
// status wins on assignment: a user-set Value cannot be overwritten by a
// defaults-Initialized value, but can be overwritten by another Value.
type Status int

const (
	Uninitialized Status = iota
	Initialized
	Value
)

// FlowPriority is the row/column flow direction.
type FlowPriority int

const (
	Row FlowPriority = iota
	Column
)

// Anchor is the alignment of a child within its parent's fitting area.
type Anchor int

const (
	AnchorUp Anchor = iota
	AnchorDown
	AnchorLeft
	AnchorRight
	AnchorCenter
)

// BorderGlyphs is the styled_border glyph set used for border painting and
// border-merge connector lookup.
type BorderGlyphs struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Vertical, Horizontal                       rune
	ConnectorUp, ConnectorDown                 rune // T-up, T-down
	ConnectorLeft, ConnectorRight              rune // T-left, T-right
	Cross                                      rune
}

// DefaultBorderGlyphs is the classic single-line box-drawing set.
var DefaultBorderGlyphs = BorderGlyphs{
	TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
	Vertical: '│', Horizontal: '─',
	ConnectorUp: '┴', ConnectorDown: '┬',
	ConnectorLeft: '┤', ConnectorRight: '├',
	Cross: '┼',
}

// Margin is the four-sided margin attribute.
type Margin struct {
	Top, Bottom, Left, Right int
}

// Shadow describes the post-process halo; Direction.Z doubles as the
// per-ring decay coefficient (bounded to <= 0.9).
type Shadow struct {
	Enabled   bool
	Length    int
	Color     color.RGBA
	Direction struct{ X, Y, Z float64 }
}

// Decay returns the per-ring alpha falloff coefficient used by the shadow
// post-process, bounded to <= 0.9.
func (s Shadow) Decay() float64 { return s.decay() }

func (s Shadow) decay() float64 {
	d := s.Direction.Z
	if d <= 0 {
		d = 0.6
	}
	if d > 0.9 {
		d = 0.9
	}
	return d
}

// Hooks are the lifecycle/event callbacks. owner is the *element.Element the
// hook fires for; kept as `interface{}` here to avoid an import cycle with
// the element package, narrowed by the caller.
type Hooks struct {
	OnInit    func(owner interface{})
	OnDestroy func(owner interface{})
	OnHide    func(owner interface{})
	OnShow    func(owner interface{})
	OnRender  func(owner interface{})
	OnClick   func(owner interface{}, x, y int) bool
	OnInput   func(owner interface{}, r rune) bool
	OnDraw    func(owner interface{}, buf []color.Cell, w, h int)
}

// statusField pairs a value with its precedence status.
type statusField[T any] struct {
	val    T
	status Status
}

func (f *statusField[T]) set(v T, st Status) {
	if st >= f.status {
		f.val, f.status = v, st
	}
}

// Get returns the field's current settled value.
func (f *statusField[T]) Get() T { return f.val }

// Status returns the field's current precedence status.
func (f *statusField[T]) Status() Status { return f.status }

// Set applies v at status st, honoring the same precedence rule as the
// internal setter. Exported so packages outside style (e.g. element) can
// apply direct mutations (SetWidth, SetColors, ...) through the same
// status-precedence path attribute embedding uses.
func (f *statusField[T]) Set(v T, st Status) { f.set(v, st) }

// Values is the canonical settled-attribute record an embed step produces:
// one instance of every attribute variant, defaulted, plus the queued
// children added via Node/Childs.
type Values struct {
	Position struct{ X, Y, Z int }

	Width  statusField[Length]
	Height statusField[Length]

	EnableBorder statusField[bool]
	Border       statusField[BorderGlyphs]

	TextColor            statusField[color.RGBA]
	BackgroundColor      statusField[color.RGBA]
	BorderColor          statusField[color.RGBA]
	BorderBackground     statusField[color.RGBA]
	HoverTextColor       statusField[color.RGBA]
	HoverBackgroundColor statusField[color.RGBA]
	FocusTextColor       statusField[color.RGBA]
	FocusBackgroundColor statusField[color.RGBA]

	FlowPriority statusField[FlowPriority]
	Wrap         statusField[bool]

	AllowOverflow    statusField[bool]
	AllowDynamicSize statusField[bool]
	AllowScrolling   statusField[bool]

	Margin  statusField[Margin]
	Opacity statusField[float64]
	Anchor  statusField[Anchor]

	Name    statusField[string]
	Title   statusField[string]
	Display statusField[bool]
	Text    statusField[string]

	Shadow statusField[Shadow]

	Hooks Hooks

	// Children queued by node()/childs() attributes, not yet linked into
	// the owner; Embed links them via the official add-child path.
	PendingChildren []interface{}
}

// NewValues returns a Values record with every field defaulted.
func NewValues() *Values {
	v := &Values{}
	v.Width.set(Px(0), Uninitialized)
	v.Height.set(Px(0), Uninitialized)
	v.Opacity.set(1.0, Uninitialized)
	v.Display.set(true, Uninitialized)
	v.Border.set(DefaultBorderGlyphs, Uninitialized)
	v.Anchor.set(AnchorUp, Uninitialized)
	return v
}
