package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ggui/style"
)

func TestApplyFlowRowPacksChildrenLeftToRight(t *testing.T) {
	root := New(style.New(
		style.Width(style.Px(20)), style.Height(style.Px(5)),
		style.FlowPriorityAttr(style.Row),
	), nil)

	a := New(style.New(style.Width(style.Px(3)), style.Height(style.Px(1))), nil)
	b := New(style.New(style.Width(style.Px(4)), style.Height(style.Px(1)), style.MarginAttr(style.Margin{Left: 1})), nil)
	root.AddChild(a)
	root.AddChild(b)

	ApplyFlow(root)

	assert.Equal(t, 0, a.Position.X)
	assert.Equal(t, 3, b.Position.X, "b starts after a's width plus its own left margin")
}

func TestApplyFlowColumnStacksTopToBottom(t *testing.T) {
	root := New(style.New(
		style.Width(style.Px(10)), style.Height(style.Px(20)),
		style.FlowPriorityAttr(style.Column),
	), nil)

	a := New(style.New(style.Width(style.Px(3)), style.Height(style.Px(2))), nil)
	b := New(style.New(style.Width(style.Px(3)), style.Height(style.Px(2))), nil)
	root.AddChild(a)
	root.AddChild(b)

	ApplyFlow(root)

	assert.Equal(t, 0, a.Position.Y)
	assert.Equal(t, 2, b.Position.Y)
}

func TestApplyFlowWrapStartsNewLine(t *testing.T) {
	root := New(style.New(
		style.Width(style.Px(6)), style.Height(style.Px(10)),
		style.FlowPriorityAttr(style.Row), style.Wrap(true),
	), nil)

	a := New(style.New(style.Width(style.Px(4)), style.Height(style.Px(2))), nil)
	b := New(style.New(style.Width(style.Px(4)), style.Height(style.Px(2))), nil)
	root.AddChild(a)
	root.AddChild(b)

	ApplyFlow(root)

	assert.Equal(t, 0, a.Position.X)
	assert.Equal(t, 0, a.Position.Y)
	assert.Equal(t, 0, b.Position.X, "b doesn't fit on a's line so it wraps to a new row")
	assert.Equal(t, 2, b.Position.Y)
}

func TestApplyFlowAnchorCentersCrossAxis(t *testing.T) {
	root := New(style.New(
		style.Width(style.Px(10)), style.Height(style.Px(4)),
		style.FlowPriorityAttr(style.Row),
	), nil)
	a := New(style.New(style.Width(style.Px(2)), style.Height(style.Px(2)), style.AnchorAttr(style.AnchorCenter)), nil)
	root.AddChild(a)

	ApplyFlow(root)

	assert.Equal(t, 1, a.Position.Y, "centered vertically within 4-tall content area")
}

func TestApplyFlowSkipsElementsWithoutFlowPriority(t *testing.T) {
	root := New(style.New(style.Width(style.Px(10)), style.Height(style.Px(10))), nil)
	a := New(style.New(style.Width(style.Px(2)), style.Height(style.Px(2))), nil)
	a.SetPosition(5, 5, 0)
	root.AddChild(a)

	ApplyFlow(root)

	assert.Equal(t, 5, a.Position.X, "no flow_priority set: explicit position() is left untouched")
	assert.Equal(t, 5, a.Position.Y)
}
