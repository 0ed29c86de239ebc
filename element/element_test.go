package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggui/color"
	"ggui/input"
	"ggui/stain"
	"ggui/style"
)

func TestAddChildSetsParentAndZOrder(t *testing.T) {
	root := New(style.New(style.Width(style.Px(20)), style.Height(style.Px(20))), nil)

	a := New(style.New(style.Width(style.Px(2)), style.Height(style.Px(2))), nil)
	a.SetPosition(0, 0, 5)
	b := New(style.New(style.Width(style.Px(2)), style.Height(style.Px(2))), nil)
	b.SetPosition(0, 0, 1)

	root.AddChild(a)
	root.AddChild(b)

	require.Len(t, root.Children, 2)
	assert.Same(t, root, root.Children[0].Parent)
	assert.Same(t, root, root.Children[1].Parent)
	// z ascending: b (z=1) before a (z=5).
	assert.Equal(t, b, root.Children[0])
	assert.Equal(t, a, root.Children[1])
}

func TestPercentageWidthResolvesAgainstBorderedParent(t *testing.T) {
	// Parent width 20 with border (inset 2): a child width of 0.5 resolves
	// to round((20-2)*0.5) = 9.
	parent := New(style.New(style.Width(style.Px(20)), style.Height(style.Px(5)), style.EnableBorder(true)), nil)
	child := New(style.New(style.Width(style.Pct(0.5)), style.Height(style.Px(1))), parent)

	assert.Equal(t, 9, child.Width())
}

func TestAllowDynamicSizeGrowsParent(t *testing.T) {
	parent := New(style.New(style.Width(style.Px(3)), style.Height(style.Px(3)), style.AllowDynamicSize(true)), nil)
	child := New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10))), nil)

	parent.AddChild(child)

	assert.GreaterOrEqual(t, parent.Width(), 10)
	assert.GreaterOrEqual(t, parent.Height(), 10)
}

func TestStaticOverflowAbandonsInsertionWithoutResize(t *testing.T) {
	parent := New(style.New(style.Width(style.Px(3)), style.Height(style.Px(3))), nil)
	child := New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10)), style.AllowOverflow(true)), nil)

	parent.AddChild(child)

	assert.Empty(t, parent.Children, "overflowing child with allow_overflow must refuse resize and be abandoned")
}

func TestFittingAreaAccountsForParentBorder(t *testing.T) {
	parent := New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10)), style.EnableBorder(true)), nil)
	child := New(style.New(style.Width(style.Px(4)), style.Height(style.Px(2))), nil)
	parent.AddChild(child)

	sx, sy, ex, ey, negX, negY := parent.FittingArea(child)
	assert.Equal(t, 1, sx)
	assert.Equal(t, 1, sy)
	assert.Equal(t, 5, ex)
	assert.Equal(t, 3, ey)
	assert.Equal(t, 0, negX)
	assert.Equal(t, 0, negY)
}

func TestChildDirtPropagatesDeepToAncestors(t *testing.T) {
	root := New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10))), nil)
	mid := New(style.New(style.Width(style.Px(6)), style.Height(style.Px(6))), nil)
	leaf := New(style.New(style.Width(style.Px(2)), style.Height(style.Px(2))), nil)
	root.AddChild(mid)
	mid.AddChild(leaf)

	root.Stain, mid.Stain, leaf.Stain = stain.Clean, stain.Clean, stain.Clean

	leaf.Dirty(stain.Color)

	assert.True(t, leaf.Stain.Has(stain.Color))
	assert.True(t, mid.Stain.Has(stain.Deep), "a dirty descendant must mark its parent DEEP for re-nesting")
	assert.True(t, root.Stain.Has(stain.Deep), "propagation must reach every ancestor")
}

func TestResetAllowsRefinalization(t *testing.T) {
	var inits int
	e := New(style.New(
		style.Width(style.Px(2)), style.Height(style.Px(2)),
		style.OnInit(func(owner interface{}) { inits++ }),
	), nil)
	e.Finalize()
	e.Finalize()
	assert.Equal(t, 1, inits, "finalize is one-shot")

	e.Reset()
	e.Finalize()
	assert.Equal(t, 2, inits, "reset re-arms finalization")
}

func TestDisplayFiresHooksAndDirtiesState(t *testing.T) {
	var hidden, shown bool
	e := New(style.New(
		style.OnHide(func(owner interface{}) { hidden = true }),
		style.OnShow(func(owner interface{}) { shown = true }),
	), nil)
	e.Stain = 0

	e.Display(false)
	assert.True(t, hidden)
	assert.True(t, e.Stain.Has(stain.State))

	e.Display(true)
	assert.True(t, shown)
}

func TestOnDrawOnNonCanvasElementPanicsTypeMismatch(t *testing.T) {
	e := New(style.New(
		style.Width(style.Px(4)), style.Height(style.Px(2)),
		style.OnDraw(func(owner interface{}, buf []color.Cell, w, h int) {}),
	), nil)
	assert.Panics(t, func() { e.Finalize() }, "on_draw on a non-canvas element must be a TYPE_MISMATCH configuration error")
}

func TestOnClickHookFiresOnMouseClickWithinBounds(t *testing.T) {
	var clicked bool
	e := New(style.New(
		style.Width(style.Px(5)), style.Height(style.Px(2)),
		style.OnClick(func(owner interface{}, x, y int) bool { clicked = true; return true }),
	), nil)
	e.Finalize()

	consumed := e.Dispatch(input.Input{Kind: input.MouseLeftClicked, X: 1, Y: 1})
	assert.True(t, clicked)
	assert.True(t, consumed)
}

func TestOnClickHookIgnoredOutsideBounds(t *testing.T) {
	var clicked bool
	e := New(style.New(
		style.Width(style.Px(5)), style.Height(style.Px(2)),
		style.OnClick(func(owner interface{}, x, y int) bool { clicked = true; return true }),
	), nil)
	e.Finalize()

	e.Dispatch(input.Input{Kind: input.MouseLeftClicked, X: 50, Y: 50})
	assert.False(t, clicked)
}

func TestOnInputHookFiresOnlyWhenFocused(t *testing.T) {
	var got rune
	e := New(style.New(
		style.Width(style.Px(5)), style.Height(style.Px(2)),
		style.OnInput(func(owner interface{}, r rune) bool { got = r; return true }),
	), nil)
	e.Finalize()

	e.Dispatch(input.Input{Kind: input.KeyPress, Rune: 'z'})
	assert.Zero(t, got, "unfocused element must not receive on_input")

	e.Focused = true
	e.Dispatch(input.Input{Kind: input.KeyPress, Rune: 'z'})
	assert.Equal(t, 'z', got)
}
