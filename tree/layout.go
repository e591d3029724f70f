package tree

import (
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
)

// Layout recomputes every rectangle for a width x height terminal.
// Nodes whose on-screen rectangle changed are marked dirty.
func (t *Tree) Layout(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width != t.width || height != t.height {
		t.revealPending = true
	}
	t.width, t.height = width, height

	f := t.formatting[Root]
	w := t.resolveWidth(Root, width, height)
	h := t.resolveHeight(Root, w, height)
	t.rects[Root] = layout.Rect{
		X:      layout.Resolve(f.X, width),
		Y:      layout.Resolve(f.Y, height),
		Width:  w,
		Height: h,
	}
	t.layoutChildren(Root)

	screen := layout.Rect{Width: width, Height: height}
	t.derive(Root, 0, 0, screen)
	if t.revealPending {
		t.revealPending = false
		if t.reveal() {
			t.derive(Root, 0, 0, screen)
		}
	}
}

// resolveWidth sizes id's width; Content is measured at the available size
func (t *Tree) resolveWidth(id ID, availW, availH int) int {
	m := t.formatting[id].Width
	if m.Kind == layout.KindContent {
		if availW <= 0 {
			return 0
		}
		w, _ := t.measureBuffer(id, availW, availH).Measure()
		return min(w, availW)
	}
	return layout.Resolve(m, availW)
}

// resolveHeight sizes id's height; Content is measured at the resolved width
func (t *Tree) resolveHeight(id ID, width, availH int) int {
	m := t.formatting[id].Height
	if m.Kind == layout.KindContent {
		if availH <= 0 || width <= 0 {
			return 0
		}
		_, h := t.measureBuffer(id, width, availH).Measure()
		return min(h, availH)
	}
	return layout.Resolve(m, availH)
}

// layoutChildren places id's children inside id's rectangle and recurses
func (t *Tree) layoutChildren(id ID) {
	kids := t.children[id]
	if len(kids) == 0 {
		t.clampScroll(id)
		return
	}

	box := t.rects[id]
	f := t.formatting[id]
	vertical := f.Layout == layout.VerticalSplit

	// Extents along the split axis; the cross axis is sized during placement
	sizes := make([]int, len(kids))
	crossW := make([]int, len(kids))
	used, fills := 0, 0

	for i, k := range kids {
		kf := t.formatting[k]
		if vertical {
			crossW[i] = t.resolveWidth(k, box.Width, box.Height)
			if kf.Height.Kind == layout.KindFill {
				fills++
				continue
			}
			sizes[i] = t.resolveHeight(k, crossW[i], box.Height)
		} else {
			if kf.Width.Kind == layout.KindFill {
				fills++
				continue
			}
			sizes[i] = t.resolveWidth(k, box.Width, box.Height)
		}
		used += sizes[i]
	}

	if fills > 0 {
		avail := box.Height
		if !vertical {
			avail = box.Width
		}
		share := layout.FillShare(avail, used, fills)
		for i, k := range kids {
			kf := t.formatting[k]
			if (vertical && kf.Height.Kind == layout.KindFill) || (!vertical && kf.Width.Kind == layout.KindFill) {
				sizes[i] = share
			}
		}
	}

	if vertical {
		t.placeVertical(id, kids, sizes, crossW)
	} else {
		t.placeHorizontal(id, kids, sizes)
	}
	t.clampScroll(id)
}

// placeVertical stacks children top-to-bottom, starting a new column for
// Wrap children that do not fit, and stops once columns run past the width
func (t *Tree) placeVertical(id ID, kids []ID, heights, widths []int) {
	box := t.rects[id]
	scrolls := t.formatting[id].OverflowY == layout.Scroll
	x, y, colW := 0, 0, 0

	for i, k := range kids {
		kf := t.formatting[k]
		w, h := widths[i], heights[i]

		if y > 0 && y+h > box.Height && kf.OverflowY == layout.Wrap {
			y = 0
			x += max(colW, 1)
			colW = 0
		}
		if x >= box.Width {
			t.unplace(kids[i:])
			return
		}
		if !scrolls {
			h = min(h, max(box.Height-y, 0))
		}

		t.rects[k] = layout.Rect{
			X:      x + layout.Resolve(kf.X, box.Width),
			Y:      y + layout.Resolve(kf.Y, box.Height),
			Width:  w,
			Height: h,
		}
		y += h
		colW = max(colW, w)
		t.layoutChildren(k)
	}
}

// placeHorizontal arranges children left-to-right, starting a new row for
// Wrap children that do not fit, and stops once rows run past the height
func (t *Tree) placeHorizontal(id ID, kids []ID, widths []int) {
	box := t.rects[id]
	scrolls := t.formatting[id].OverflowX == layout.Scroll
	x, y, rowH := 0, 0, 0

	for i, k := range kids {
		kf := t.formatting[k]
		w := widths[i]

		if x > 0 && x+w > box.Width && kf.OverflowX == layout.Wrap {
			x = 0
			y += max(rowH, 1)
			rowH = 0
		}
		if y >= box.Height {
			t.unplace(kids[i:])
			return
		}
		if !scrolls {
			w = min(w, max(box.Width-x, 0))
		}
		// Content heights are measured at the width actually placed
		h := t.resolveHeight(k, w, box.Height)

		t.rects[k] = layout.Rect{
			X:      x + layout.Resolve(kf.X, box.Width),
			Y:      y + layout.Resolve(kf.Y, box.Height),
			Width:  w,
			Height: h,
		}
		x += w
		rowH = max(rowH, h)
		t.layoutChildren(k)
	}
}

// unplace zeroes the rectangles of ids and their subtrees
func (t *Tree) unplace(ids []ID) {
	for _, id := range ids {
		t.rects[id] = layout.Rect{}
		t.unplace(t.children[id])
	}
}

// derive computes absolute and clipped rectangles. originX/Y is where the
// parent's content starts on screen after its scroll. A node whose rect
// changed is marked dirty, and so is its parent, whose redraw erases the cells
// the child left behind. Reports whether id's screen rect changed.
func (t *Tree) derive(id ID, originX, originY int, clip layout.Rect) bool {
	r := t.rects[id]
	sr := r.Offset(originX, originY)
	moved := sr != t.screen[id]
	if moved {
		t.markDirty(id)
	}
	t.screen[id] = sr
	t.clip[id] = sr.Intersect(clip)

	s := t.scroll[id]
	for _, k := range t.children[id] {
		if t.derive(k, sr.X-s.X, sr.Y-s.Y, t.clip[id]) {
			t.markDirty(id)
		}
	}
	return moved
}

// contentHeight is the extent scrolling moves through: the children's
// bottom edge for containers, the wrapped content height for leaves
func (t *Tree) contentHeight(id ID) int {
	kids := t.children[id]
	if len(kids) == 0 {
		r := t.rects[id]
		_, h := t.measureBuffer(id, r.Width, r.Height).Measure()
		return h
	}
	bottom := 0
	for _, k := range kids {
		kr := t.rects[k]
		bottom = max(bottom, kr.Y+kr.Height)
	}
	return bottom
}

// scrollRange returns the legal vertical scroll offsets for id
func (t *Tree) scrollRange(id ID) (int, int) {
	lo, hi := t.components[id].ScrollBounds()
	limit := max(t.contentHeight(id)-t.rects[id].Height, 0)
	hi = min(hi, limit)
	lo = clamp(lo, 0, hi)
	return lo, max(hi, lo)
}

// clampScroll keeps the offset legal after the extent changed
func (t *Tree) clampScroll(id ID) {
	if t.formatting[id].OverflowY != layout.Scroll && t.scroll[id].Y == 0 {
		return
	}
	lo, hi := t.scrollRange(id)
	if y := clamp(t.scroll[id].Y, lo, hi); y != t.scroll[id].Y {
		t.scroll[id].Y = y
		t.markDirty(id)
	}
}

// scrollTo sets id's vertical offset within its legal range.
// The node and its direct children are invalidated
func (t *Tree) scrollTo(id ID, y int) bool {
	if t.formatting[id].OverflowY != layout.Scroll {
		return false
	}
	lo, hi := t.scrollRange(id)
	y = clamp(y, lo, hi)
	if y == t.scroll[id].Y {
		return false
	}
	t.scroll[id].Y = y
	t.markDirty(id)
	for _, k := range t.children[id] {
		t.markDirty(k)
	}
	return true
}

// reveal scrolls the focused node and its Scroll ancestors so the cursor
// row is visible. Reports whether any offset changed
func (t *Tree) reveal() bool {
	id := t.focus
	r := t.rects[id]
	f := t.formatting[id]

	buf := t.measureBuffer(id, r.Width, r.Height)
	_, row := buf.Locate(t.cursor[id].X, t.cursor[id].Y, f.OverflowX == layout.Wrap)

	moved := false
	if f.OverflowY == layout.Scroll {
		moved = t.keepVisible(id, row) || moved
	}

	// row as an offset inside the parent's content
	y := r.Y + row - t.scroll[id].Y
	for p := t.parent[id]; p != NoParent; p = t.parent[p] {
		if t.formatting[p].OverflowY == layout.Scroll {
			moved = t.keepVisible(p, y) || moved
		}
		y = t.rects[p].Y + y - t.scroll[p].Y
	}
	return moved
}

// keepVisible scrolls id so content row y falls inside its box
func (t *Tree) keepVisible(id ID, y int) bool {
	h := t.rects[id].Height
	if h <= 0 {
		return false
	}
	sy := t.scroll[id].Y
	switch {
	case y < sy:
		return t.scrollTo(id, y)
	case y >= sy+h:
		return t.scrollTo(id, y-h+1)
	}
	return false
}

// measureLogical renders id at its box size and measures it unwrapped
func (t *Tree) measureLogical(id ID) (int, int) {
	r := t.rects[id]
	return t.measureBuffer(id, r.Width, r.Height).MeasureAt(render.Unbounded)
}
