package tree

import (
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/terminal"
)

// Commands is the tree surface available to one component. It carries the
// node's ID and reaches the arena only through tree methods.
type Commands struct {
	tree *Tree
	id   ID
}

// ID returns the node these commands act for
func (c *Commands) ID() ID { return c.id }

// HasFocus reports whether this node held focus when the current event
// started dispatching
func (c *Commands) HasFocus() bool {
	if c.tree.dispatching {
		return c.tree.eventFocus == c.id
	}
	return c.tree.focus == c.id
}

// OnFocusPath reports whether this node is focused or an ancestor of focus
func (c *Commands) OnFocusPath() bool { return c.tree.OnFocusPath(c.id) }

// Focused returns the currently focused node
func (c *Commands) Focused() ID { return c.tree.focus }

func (c *Commands) Parent() ID                    { return c.tree.Parent(c.id) }
func (c *Commands) Children() []ID                { return c.tree.Children(c.id) }
func (c *Commands) Rect() layout.Rect             { return c.tree.Rect(c.id) }
func (c *Commands) Formatting() layout.Formatting { return c.tree.Formatting(c.id) }

// Cursor returns this node's logical cursor
func (c *Commands) Cursor() (col, row int) { return c.tree.Cursor(c.id) }

// CursorOf returns another node's logical cursor
func (c *Commands) CursorOf(id ID) (col, row int) { return c.tree.Cursor(id) }

// IndexInParent returns id's position among its siblings
func (c *Commands) IndexInParent(id ID) int { return c.tree.IndexInParent(id) }

// ScrollY returns this node's vertical scroll offset
func (c *Commands) ScrollY() int {
	_, y := c.tree.Scroll(c.id)
	return y
}

// AddChild inserts a child under this node
func (c *Commands) AddChild(comp Component, f *layout.Formatting) (ID, error) {
	return c.tree.AddChild(c.id, comp, f)
}

// MoveCursor moves this node's cursor, transferring focus at boundaries
func (c *Commands) MoveCursor(dCol, dRow int) bool {
	return c.tree.MoveCursor(c.id, dCol, dRow)
}

// SetCursor places this node's cursor, clamped to its bounds
func (c *Commands) SetCursor(col, row int) bool {
	return c.tree.SetCursor(c.id, col, row)
}

// SetCursorOf places another node's cursor, clamped to its bounds
func (c *Commands) SetCursorOf(id ID, col, row int) bool {
	return c.tree.SetCursor(id, col, row)
}

// CursorBounds returns this node's legal cursor rectangle
func (c *Commands) CursorBounds() Bounds { return c.tree.CursorBounds(c.id) }

// SetCursorShape selects the hardware cursor shape shown while this node
// has focus
func (c *Commands) SetCursorShape(s terminal.CursorShape) {
	if c.tree.cursorShape[c.id] != s {
		c.tree.cursorShape[c.id] = s
		c.tree.markDirty(c.id)
	}
}

// Focus moves focus to id, resolved to a focusable leaf
func (c *Commands) Focus(id ID) bool { return c.tree.Focus(id) }

// ScrollBy scrolls this node vertically by dy rows within its range
func (c *Commands) ScrollBy(dy int) bool {
	_, y := c.tree.Scroll(c.id)
	return c.tree.scrollTo(c.id, y+dy)
}

// ScrollTo sets this node's vertical scroll offset within its range
func (c *Commands) ScrollTo(y int) bool { return c.tree.scrollTo(c.id, y) }

// MarkDirty schedules this node for redraw
func (c *Commands) MarkDirty() { c.tree.markDirty(c.id) }
