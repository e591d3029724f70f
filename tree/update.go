package tree

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/terminal"
)

// Update handles one input event. Mouse events are resolved by hit testing;
// everything else is offered to every node depth-first from the root.
// Children queued during the pass are expanded afterwards.
func (t *Tree) Update(ev terminal.Event) error {
	if ev.Type == terminal.EventMouse {
		t.handleMouse(ev)
		return nil
	}
	if ev.Type == terminal.EventResize {
		t.Invalidate()
	}

	t.dispatching = true
	t.eventFocus = t.focus
	err := t.dispatch(Root, ev)
	t.dispatching = false
	if err != nil {
		return err
	}
	return t.expand()
}

func (t *Tree) dispatch(id ID, ev terminal.Event) error {
	// Children added during this pass wait for the next event
	kids := slices.Clone(t.children[id])

	changed, err := t.components[id].Update(ev, t.commands(id))
	if err != nil {
		return fmt.Errorf("update %d: %w", id, err)
	}
	if changed {
		t.markDirty(id)
	}
	for _, k := range kids {
		if err := t.dispatch(k, ev); err != nil {
			return err
		}
	}
	return nil
}

// HitTest returns the topmost visible node covering screen cell (x, y)
func (t *Tree) HitTest(x, y int) (ID, bool) {
	hit, found := Root, false
	var walk func(id ID)
	walk = func(id ID) {
		if !t.clip[id].Contains(x, y) {
			return
		}
		hit, found = id, true
		for _, k := range t.children[id] {
			walk(k)
		}
	}
	walk(Root)
	return hit, found
}

func (t *Tree) handleMouse(ev terminal.Event) {
	hit, ok := t.HitTest(ev.MouseX, ev.MouseY)
	if !ok {
		return
	}

	switch {
	case ev.MouseBtn.IsWheel() && ev.MouseAction == terminal.MouseActionPress:
		delta := t.cfg.ScrollStep
		if ev.MouseBtn == terminal.MouseBtnWheelUp {
			delta = -delta
		}
		for id := hit; id != NoParent; id = t.parent[id] {
			if t.formatting[id].OverflowY == layout.Scroll {
				t.scrollTo(id, t.scroll[id].Y+delta)
				return
			}
		}

	case ev.MouseBtn == terminal.MouseBtnLeft && ev.MouseAction == terminal.MouseActionPress:
		target := hit
		for target != NoParent && !t.formatting[target].Focusable {
			target = t.parent[target]
		}
		if target == NoParent {
			return
		}
		if target != hit || !t.isFocusableLeaf(target) {
			// Clicked a container: keep focus if it is already inside
			if !t.isAncestorOrSelf(target, t.focus) {
				t.Focus(target)
			}
			return
		}
		t.setFocus(target)
		col, row := t.localCell(target, ev.MouseX, ev.MouseY)
		t.SetCursor(target, col, row)
	}
}

// localCell maps a screen cell inside id to a logical cursor position
func (t *Tree) localCell(id ID, x, y int) (int, int) {
	sr := t.screen[id]
	lx, ly := x-sr.X, y-sr.Y
	if t.formatting[id].OverflowX == layout.Wrap {
		return ly*max(sr.Width, 1) + lx, 0
	}
	return lx, ly + t.scroll[id].Y
}
