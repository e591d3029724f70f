package tree

import (
	"log"

	"github.com/lixenwraith/vi-frame/layout"
)

// CursorBounds returns id's legal cursor rectangle, derived from its content
// measured at unbounded width. A Wrap node is a single logical row.
func (t *Tree) CursorBounds(id ID) Bounds {
	if !t.valid(id) {
		return Bounds{}
	}
	f := t.formatting[id]
	w, h := t.measureLogical(id)
	if f.OverflowX == layout.Wrap {
		h = min(h, 1)
	}
	b := t.components[id].CursorBounds(w, h, f)
	b.MaxCol = max(b.MaxCol, b.MinCol)
	b.MaxRow = max(b.MaxRow, b.MinRow)
	return b
}

// SetCursor moves id's cursor to (col, row), clamped to its bounds
func (t *Tree) SetCursor(id ID, col, row int) bool {
	if !t.valid(id) {
		return false
	}
	col, row = t.CursorBounds(id).Clamp(col, row)
	return t.storeCursor(id, col, row)
}

func (t *Tree) storeCursor(id ID, col, row int) bool {
	if t.cursor[id] == (Point{X: col, Y: row}) {
		return false
	}
	t.cursor[id] = Point{X: col, Y: row}
	t.markDirty(id)
	if id == t.focus {
		t.revealPending = true
	}
	return true
}

// MoveCursor applies a delta to id's cursor. A move that leaves the node's
// bounds transfers focus to the adjacent sibling along the matching split
// axis; if there is none the cursor is clamped in place.
// Reports whether the cursor or focus changed.
func (t *Tree) MoveCursor(id ID, dCol, dRow int) bool {
	if !t.valid(id) || (dCol == 0 && dRow == 0) {
		return false
	}
	b := t.CursorBounds(id)
	cur := t.cursor[id]
	col, row := cur.X+dCol, cur.Y+dRow

	if b.Contains(col, row) {
		return t.storeCursor(id, col, row)
	}

	if id == t.focus {
		if dRow != 0 && (row < b.MinRow || row > b.MaxRow) {
			if t.transfer(id, layout.VerticalSplit, sign(dRow), cur) {
				return true
			}
		}
		if dCol != 0 && (col < b.MinCol || col > b.MaxCol) {
			if t.transfer(id, layout.HorizontalSplit, sign(dCol), cur) {
				return true
			}
		}
	}

	col, row = b.Clamp(col, row)
	if t.storeCursor(id, col, row) {
		return true
	}
	if t.cfg.OnBoundary != nil {
		t.cfg.OnBoundary()
	}
	return false
}

// transfer walks up from id to ancestors splitting along mode and focuses
// the nearest sibling subtree in direction dir that holds a focusable leaf
func (t *Tree) transfer(id ID, mode layout.Mode, dir int, from Point) bool {
	child := id
	for p := t.parent[id]; p != NoParent; child, p = p, t.parent[p] {
		if t.formatting[p].Layout != mode {
			continue
		}
		kids := t.children[p]
		idx := -1
		for i, k := range kids {
			if k == child {
				idx = i
				break
			}
		}
		for j := idx + dir; j >= 0 && j < len(kids); j += dir {
			target, ok := t.entryLeaf(kids[j], dir > 0)
			if !ok {
				continue
			}
			log.Printf("tree: cursor leaves %d for %d via %d", id, target, p)
			t.enter(target, mode, dir, from)
			return true
		}
	}
	return false
}

// enter focuses target and places its cursor at the edge it was entered
// from, keeping the other coordinate where possible
func (t *Tree) enter(target ID, mode layout.Mode, dir int, from Point) {
	t.setFocus(target)
	b := t.CursorBounds(target)

	col, row := from.X, from.Y
	if mode == layout.VerticalSplit {
		row = b.MinRow
		if dir < 0 {
			row = b.MaxRow
		}
	} else {
		col = b.MinCol
		if dir < 0 {
			col = b.MaxCol
		}
	}
	col, row = b.Clamp(col, row)
	t.cursor[target] = Point{X: col, Y: row}
	t.markDirty(target)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
