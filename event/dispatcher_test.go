package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggui/element"
	"ggui/input"
	"ggui/style"
)

func TestDispatchReachesDeepestTopmostHandlerFirst(t *testing.T) {
	root := element.New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10))), nil)

	var order []string
	parent := element.New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10))), nil)
	parent.On(input.MouseLeftClicked, func(e *element.Element, in input.Input) bool {
		order = append(order, "parent")
		return true
	}, true)
	child := element.New(style.New(style.Width(style.Px(4)), style.Height(style.Px(4))), nil)
	child.On(input.MouseLeftClicked, func(e *element.Element, in input.Input) bool {
		order = append(order, "child")
		return true
	}, true)

	root.AddChild(parent)
	parent.AddChild(child)

	d := NewDispatcher(root)
	consumed := d.Dispatch(input.Input{Kind: input.MouseLeftClicked, X: 1, Y: 1})

	assert.True(t, consumed)
	require.Len(t, order, 1, "the deepest matching handler consumes the event; the parent's never runs")
	assert.Equal(t, "child", order[0])
}

func TestUpdateHoverTogglesOnEnterAndLeave(t *testing.T) {
	root := element.New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10))), nil)
	box := element.New(style.New(style.Width(style.Px(4)), style.Height(style.Px(4))), nil)
	root.AddChild(box)

	d := NewDispatcher(root)
	d.Dispatch(input.Input{Kind: input.MouseLeftPressed, X: 1, Y: 1})
	assert.True(t, box.Hovered)
	assert.Same(t, box, d.Hovered())

	d.Dispatch(input.Input{Kind: input.MouseLeftPressed, X: 8, Y: 8})
	assert.False(t, box.Hovered)
	assert.Same(t, root, d.Hovered(), "root still collides at (8,8) even though box doesn't")
}

func TestTabCyclesFocusInTreeOrderAndWraps(t *testing.T) {
	root := element.New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10))), nil)
	a := element.New(style.New(style.Width(style.Px(2)), style.Height(style.Px(2))), nil)
	b := element.New(style.New(style.Width(style.Px(2)), style.Height(style.Px(2))), nil)
	root.AddChild(a)
	root.AddChild(b)

	// flatten walks the whole shown tree in order, root included, so the
	// cycle is root -> a -> b -> root.
	d := NewDispatcher(root)
	d.Dispatch(input.Input{Kind: input.Tab})
	assert.Same(t, root, d.Focused())

	d.Dispatch(input.Input{Kind: input.Tab})
	assert.Same(t, a, d.Focused())

	d.Dispatch(input.Input{Kind: input.Tab})
	assert.Same(t, b, d.Focused())

	d.Dispatch(input.Input{Kind: input.Tab})
	assert.Same(t, root, d.Focused(), "cycling past the last focusable element wraps back to the first")
}

func TestDestroyClearsFocusAndHoverReferences(t *testing.T) {
	root := element.New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10))), nil)
	a := element.New(style.New(style.Width(style.Px(4)), style.Height(style.Px(4))), nil)
	root.AddChild(a)

	d := NewDispatcher(root)
	d.SetFocus(a)
	d.Dispatch(input.Input{Kind: input.MouseLeftPressed, X: 1, Y: 1})
	require.Same(t, a, d.Focused())
	require.Same(t, a, d.Hovered())

	a.Destroy()

	assert.Nil(t, d.Focused())
	assert.Nil(t, d.Hovered())
}
