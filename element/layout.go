package element

import (
	"ggui/stain"
	"ggui/style"
)

// AddChild implements style.Owner so that the delayed Node/Childs
// attributes can link their buffered children through the exact same path a
// direct AddChild call uses.
func (e *Element) AddChild(childAny interface{}) {
	child, ok := childAny.(*Element)
	if !ok {
		report("add_child: value is not an *element.Element")
		return
	}
	e.insertChild(child)
}

func (e *Element) insertChild(child *Element) {
	child.Parent = e
	e.Children = append(e.Children, child)
	e.resort()

	availW, availH := e.ContentArea()
	cw, ch := child.Width(), child.Height()
	if cw > availW || ch > availH {
		switch {
		case e.Style.AllowDynamicSize.Get():
			e.growToFit(cw, ch)
		case child.ResizeTo(e):
			// child accepted a smaller size; nothing further to do.
		default:
			report("window exceeded static bounds: child %d does not fit parent %d", child.ID, e.ID)
			e.abandon(child)
			return
		}
	}
	e.Dirty(stain.Deep)
}

// abandon removes child from Children without destroying it: the insertion
// never happened from the caller's point of view.
func (e *Element) abandon(child *Element) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			break
		}
	}
	child.Parent = nil
}

func (e *Element) growToFit(cw, ch int) {
	inset := 2 * e.borderInset()
	needW, needH := cw+inset, ch+inset
	if needW > e.Width() {
		e.SetWidth(style.Px(float64(needW)))
	}
	if needH > e.Height() {
		e.SetHeight(style.Px(float64(needH)))
	}
}

// ResizeTo attempts to shrink the element to fit inside parent's content
// area. An element that wants overflow (AllowOverflow) refuses by returning
// false.
func (e *Element) ResizeTo(parent *Element) bool {
	if e.Style.AllowOverflow.Get() {
		return false
	}
	pw, ph := parent.ContentArea()
	if pw < e.Width() {
		e.SetWidth(style.Px(float64(pw)))
	}
	if ph < e.Height() {
		e.SetHeight(style.Px(float64(ph)))
	}
	return true
}

// Remove detaches child from e. When owning is true the child is
// destroyed; otherwise ownership transfers back to the caller.
func (e *Element) Remove(child *Element, owning bool) {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			break
		}
	}
	child.Parent = nil
	if owning {
		child.Destroy()
	}
	e.Dirty(stain.Deep | stain.Color)
}

// FittingArea computes the rectangle in e's buffer where child's buffer
// may be written: e's border inset applies only when e has a border and
// child does not; child's post-processed dimensions (opacity/shadow
// inflated, if any) are used in place of its logical size; the result is
// clipped against e's edges. negOffX/negOffY record how much was clipped
// off the child's top-left, for the nesting copier to skip.
func (e *Element) FittingArea(child *Element) (startX, startY, endX, endY, negOffX, negOffY int) {
	inset := 0
	if e.HasBorder() && !child.HasBorder() {
		inset = 1
	}

	cw, ch := child.Width(), child.Height()
	if child.PostW > 0 {
		cw = child.PostW
	}
	if child.PostH > 0 {
		ch = child.PostH
	}

	startX = inset + child.Position.X
	startY = inset + child.Position.Y
	if startX < inset {
		negOffX = inset - startX
		startX = inset
	}
	if startY < inset {
		negOffY = inset - startY
		startY = inset
	}

	endX = startX + (cw - negOffX)
	endY = startY + (ch - negOffY)

	// A borderless child is confined to the content area; a bordered child
	// may reach the parent's border row/column so border merging can see the
	// crossing.
	selfW, selfH := e.Width()-inset, e.Height()-inset
	if endX > selfW {
		endX = selfW
	}
	if endY > selfH {
		endY = selfH
	}
	if endX < startX {
		endX = startX
	}
	if endY < startY {
		endY = startY
	}
	return
}
