package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggui/color"
	"ggui/element"
	"ggui/stain"
	"ggui/style"
)

func mustRender(t *testing.T, e *element.Element) []color.Cell {
	t.Helper()
	buf := Render(e)
	require.NotNil(t, buf)
	return buf
}

func TestBorderMergeTJunctions(t *testing.T) {
	// Two overlapping bordered siblings, both 6x3, at (0,0) and (3,0). The
	// shared column x=3 gets T-down at y=0, T-up at y=2, and stays plain
	// vertical at y=1.
	root := element.New(style.New(style.Width(style.Px(9)), style.Height(style.Px(3))), nil)

	a := element.New(style.New(style.Width(style.Px(6)), style.Height(style.Px(3)), style.EnableBorder(true)), nil)
	a.SetPosition(0, 0, 0)
	b := element.New(style.New(style.Width(style.Px(6)), style.Height(style.Px(3)), style.EnableBorder(true)), nil)
	b.SetPosition(3, 0, 1)

	root.AddChild(a)
	root.AddChild(b)

	buf := mustRender(t, root)
	w := root.Width()

	assert.Equal(t, style.DefaultBorderGlyphs.ConnectorDown, buf[0*w+3].Rune())
	assert.Equal(t, style.DefaultBorderGlyphs.ConnectorUp, buf[2*w+3].Rune())
	assert.Equal(t, style.DefaultBorderGlyphs.Vertical, buf[1*w+3].Rune())
}

func TestBorderMergeIdempotent(t *testing.T) {
	root := element.New(style.New(style.Width(style.Px(9)), style.Height(style.Px(3))), nil)
	a := element.New(style.New(style.Width(style.Px(6)), style.Height(style.Px(3)), style.EnableBorder(true)), nil)
	a.SetPosition(0, 0, 0)
	b := element.New(style.New(style.Width(style.Px(6)), style.Height(style.Px(3)), style.EnableBorder(true)), nil)
	b.SetPosition(3, 0, 1)
	root.AddChild(a)
	root.AddChild(b)
	mustRender(t, root)

	before := append([]color.Cell(nil), root.Buffer...)
	mergeBorders(root)
	assert.Equal(t, before, root.Buffer, "re-running border merge on the same buffer must be a no-op")
}

func TestOpacityCompositePinkOverWhite(t *testing.T) {
	// A 0.5 opacity red square nested over a white background yields a
	// pink-ish mix, not identical to either endpoint.
	root := element.New(style.New(
		style.Width(style.Px(1)), style.Height(style.Px(1)),
		style.BackgroundColor(color.NewRGBA(255, 255, 255, 255)),
	), nil)
	child := element.New(style.New(
		style.Width(style.Px(1)), style.Height(style.Px(1)),
		style.BackgroundColor(color.NewRGBA(255, 0, 0, 255)),
		style.Opacity(0.5),
	), nil)
	root.AddChild(child)

	buf := mustRender(t, root)
	got := buf[0].Bg
	assert.Equal(t, uint8(255), got.R)
	assert.Less(t, int(got.G), 255)
	assert.Less(t, int(got.B), 255)
	assert.Greater(t, int(got.G), 0)
}

func TestFocusPrecedenceOverHover(t *testing.T) {
	// text color red, hover green, focus blue; when both hovered and
	// focused, focus wins.
	red := color.NewRGBA(255, 0, 0, 255)
	green := color.NewRGBA(0, 255, 0, 255)
	blue := color.NewRGBA(0, 0, 255, 255)

	e := element.New(style.New(
		style.Width(style.Px(1)), style.Height(style.Px(1)),
		style.TextColor(red),
		style.HoverTextColor(green),
		style.FocusTextColor(blue),
	), nil)
	e.Hovered = true
	e.Focused = true

	buf := mustRender(t, e)
	assert.True(t, buf[0].Fg.Equal(blue))
}

func TestOpacityOneIsIdentity(t *testing.T) {
	c := color.Ascii('x', color.NewRGBA(1, 2, 3, 255), color.NewRGBA(4, 5, 6, 200))
	out := processOpacity([]color.Cell{c}, 1.0)
	assert.True(t, out[0].Equal(c))
}

func TestOnDrawHookPaintsOverBaseFill(t *testing.T) {
	e := element.New(style.New(
		style.Width(style.Px(3)), style.Height(style.Px(1)),
		style.OnDraw(func(owner interface{}, buf []color.Cell, w, h int) {
			buf[1] = color.Ascii('X', color.RGBA{}, color.RGBA{})
		}),
	), nil)
	e.Kind = "canvas"

	buf := mustRender(t, e)
	assert.Equal(t, 'X', buf[1].Rune())
	assert.Equal(t, ' ', buf[0].Rune())
}

func TestChildRecolorReflectsAfterParentRerender(t *testing.T) {
	root := element.New(style.New(
		style.Width(style.Px(2)), style.Height(style.Px(1)),
		style.BackgroundColor(color.NewRGBA(0, 0, 0, 255)),
	), nil)
	child := element.New(style.New(
		style.Width(style.Px(1)), style.Height(style.Px(1)),
		style.BackgroundColor(color.NewRGBA(255, 0, 0, 255)),
	), nil)
	root.AddChild(child)

	buf := mustRender(t, root)
	require.Equal(t, uint8(255), buf[0].Bg.R)

	// Mutating only the child must still invalidate the cached parent
	// buffer, through the transitive DEEP propagation.
	child.SetColors(color.RGBA{}, color.NewRGBA(0, 0, 255, 255))
	buf = mustRender(t, root)
	assert.Equal(t, uint8(0), buf[0].Bg.R)
	assert.Equal(t, uint8(255), buf[0].Bg.B)
}

func TestTranslucentElementNeverSettlesClean(t *testing.T) {
	// A translucent element composites against whatever sits behind it, so
	// its cache is untrustworthy: every Render call must repaint it, and
	// OnRender must fire each time.
	var calls int
	e := element.New(style.New(
		style.Width(style.Px(2)), style.Height(style.Px(1)),
		style.Opacity(0.5),
		style.OnRender(func(owner interface{}) { calls++ }),
	), nil)

	mustRender(t, e)
	mustRender(t, e)
	assert.Equal(t, 2, calls)
}

func TestTranslucentDescendantForcesParentRecompute(t *testing.T) {
	var rootPasses int
	root := element.New(style.New(
		style.Width(style.Px(2)), style.Height(style.Px(1)),
		style.BackgroundColor(color.NewRGBA(0, 0, 0, 255)),
		style.OnRender(func(owner interface{}) { rootPasses++ }),
	), nil)
	child := element.New(style.New(
		style.Width(style.Px(1)), style.Height(style.Px(1)),
		style.BackgroundColor(color.NewRGBA(255, 0, 0, 255)),
		style.Opacity(0.5),
	), nil)
	root.AddChild(child)

	mustRender(t, root)
	mustRender(t, root)
	assert.Equal(t, 2, rootPasses, "a translucent descendant keeps the parent repainting")
}

func TestOnRenderFiresOnceElementRepaints(t *testing.T) {
	var calls int
	e := element.New(style.New(
		style.Width(style.Px(2)), style.Height(style.Px(2)),
		style.OnRender(func(owner interface{}) { calls++ }),
	), nil)

	mustRender(t, e)
	assert.Equal(t, 1, calls)

	// Fully clean: the step-1 shortcut returns before on_render fires again.
	mustRender(t, e)
	assert.Equal(t, 1, calls)

	e.Dirty(stain.Color)
	mustRender(t, e)
	assert.Equal(t, 2, calls)
}
