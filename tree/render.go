package tree

import (
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
	"github.com/lixenwraith/vi-frame/terminal"
)

// Render composites dirty nodes pre-order and places the hardware cursor on
// the focused node. A node drawn this frame redraws its descendants, since
// compositing erases its whole box. On error the dirty set is kept for the
// next attempt.
func (t *Tree) Render(term terminal.Terminal) error {
	if err := term.HideCursor(); err != nil {
		return err
	}
	t.rendered = t.rendered[:0]
	if err := t.renderNode(term, Root, false); err != nil {
		return err
	}

	if x, y, ok := t.cursorCell(); ok {
		if err := term.MoveTo(x, y); err != nil {
			return err
		}
		if err := term.SetCursorShape(t.focusShape()); err != nil {
			return err
		}
		if err := term.ShowCursor(); err != nil {
			return err
		}
	}
	if err := term.Flush(); err != nil {
		return err
	}

	for i := range t.dirty {
		t.dirty[i] = false
	}
	return nil
}

func (t *Tree) renderNode(term terminal.Terminal, id ID, force bool) error {
	draw := force || t.dirty[id]
	if draw && !t.clip[id].Empty() {
		if err := t.composite(term, id); err != nil {
			return err
		}
	}
	for _, k := range t.children[id] {
		if err := t.renderNode(term, k, draw); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) composite(term terminal.Terminal, id ID) error {
	r := t.rects[id]
	buf, err := t.renderInto(id, r.Width, r.Height)
	if err != nil {
		return err
	}

	sr, c := t.screen[id], t.clip[id]
	vp := render.Viewport{
		X:        c.X,
		Y:        c.Y,
		SkipRows: c.Y - sr.Y + t.scroll[id].Y,
		SkipCols: c.X - sr.X,
		Rows:     c.Height,
		Cols:     c.Width,
	}
	if err := render.Composite(term, buf, t.formatting[id].OverflowX, vp); err != nil {
		return err
	}
	t.rendered = append(t.rendered, id)
	return nil
}

// focusShape returns the cursor shape of the focused node
func (t *Tree) focusShape() terminal.CursorShape {
	if cs, ok := t.components[t.focus].(CursorStyler); ok {
		return cs.CursorShape()
	}
	return t.cursorShape[t.focus]
}

// cursorCell returns the screen cell of the focused node's cursor, if visible
func (t *Tree) cursorCell() (int, int, bool) {
	id := t.focus
	if !t.formatting[id].Focusable || t.clip[id].Empty() {
		return 0, 0, false
	}
	r := t.rects[id]
	buf := t.measureBuffer(id, r.Width, r.Height)
	bx, by := buf.Locate(t.cursor[id].X, t.cursor[id].Y, t.formatting[id].OverflowX == layout.Wrap)

	sr := t.screen[id]
	x, y := sr.X+bx, sr.Y+by-t.scroll[id].Y
	if !t.clip[id].Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}
