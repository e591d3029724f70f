package component

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/vi-frame/input"
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
	"github.com/lixenwraith/vi-frame/terminal"
	"github.com/lixenwraith/vi-frame/tree"
)

// Line is one editable row of the body. It wraps at its width and is a
// single logical row, so cursor columns are cell offsets that include the
// gutter.
type Line struct {
	tree.Base
	s      *Session
	number int
	text   []rune
}

func NewLine(s *Session, number int, text string) *Line {
	return &Line{s: s, number: number, text: []rune(text)}
}

// Text returns the current row content
func (l *Line) Text() string { return string(l.text) }

func (l *Line) Render(buf *render.Buffer) error {
	th := l.s.Theme
	if g := l.s.Gutter; g > 0 {
		fg := th.Gutter
		if buf.HasFocus() {
			fg = th.GutterActive
		}
		buf.SetForeground(fg).Write(fmt.Sprintf("%*d ", g-1, l.number))
	} else if len(l.text) == 0 {
		buf.Clear()
		return nil
	}
	buf.SetForeground(th.Text).Write(string(l.text))
	return nil
}

// Children adds nothing; it runs once after insertion and moves the cursor
// off the gutter
func (l *Line) Children(cmd *tree.Commands) error {
	cmd.SetCursor(l.s.Gutter, 0)
	return nil
}

func (l *Line) DefaultFormatting() layout.Formatting {
	f := layout.Default()
	f.Width, f.Height = layout.Fill(), layout.Content()
	f.OverflowX = layout.Wrap
	f.Focusable = true
	return f
}

// CursorBounds keeps the cursor off the gutter. Insert mode allows the
// column just past the last character
func (l *Line) CursorBounds(width, _ int, _ layout.Formatting) tree.Bounds {
	last := width - 1
	if l.s.Mode == input.ModeInsert {
		last = width
	}
	return tree.Bounds{MinCol: l.s.Gutter, MaxCol: last}
}

func (l *Line) CursorShape() terminal.CursorShape { return l.s.CursorShape() }

func (l *Line) Update(ev terminal.Event, cmd *tree.Commands) (bool, error) {
	if ev.Type != terminal.EventKey || !cmd.HasFocus() {
		return false, nil
	}
	act, insert := l.s.Lookup(ev)
	col, _ := cmd.Cursor()
	idx := l.indexAt(col - l.s.Gutter)

	if insert {
		l.text = slices.Insert(l.text, idx, ev.Rune)
		cmd.SetCursor(col+terminal.CellWidth(ev.Rune), 0)
		return true, nil
	}

	switch act {
	case input.ActionLeft:
		if idx == 0 {
			cmd.MoveCursor(-1, 0)
		} else {
			cmd.MoveCursor(-terminal.CellWidth(l.text[idx-1]), 0)
		}
	case input.ActionRight:
		step := 1
		if idx < len(l.text) {
			step = terminal.CellWidth(l.text[idx])
		}
		cmd.MoveCursor(step, 0)
	case input.ActionUp:
		cmd.MoveCursor(0, -1)
	case input.ActionDown:
		cmd.MoveCursor(0, 1)
	case input.ActionLineStart:
		cmd.SetCursor(l.s.Gutter, 0)
	case input.ActionLineEnd:
		cmd.SetCursor(render.Unbounded, 0)

	case input.ActionInsert:
		l.s.Mode = input.ModeInsert
		return true, nil
	case input.ActionAppend:
		l.s.Mode = input.ModeInsert
		if idx < len(l.text) {
			cmd.SetCursor(col+terminal.CellWidth(l.text[idx]), 0)
		}
		return true, nil
	case input.ActionNormal:
		l.s.Mode = input.ModeNormal
		if idx > 0 {
			cmd.SetCursor(col-terminal.CellWidth(l.text[idx-1]), 0)
		} else {
			// Re-clamp: the past-the-end column is no longer legal
			cmd.SetCursor(col, 0)
		}
		return true, nil

	case input.ActionBackspace:
		if idx == 0 {
			return false, nil
		}
		w := terminal.CellWidth(l.text[idx-1])
		l.text = slices.Delete(l.text, idx-1, idx)
		cmd.SetCursor(col-w, 0)
		return true, nil
	case input.ActionDelete:
		if idx >= len(l.text) {
			return false, nil
		}
		l.text = slices.Delete(l.text, idx, idx+1)
		cmd.SetCursor(col, 0)
		return true, nil
	}
	return false, nil
}

// indexAt returns the index of the rune covering text column col, or
// len(text) past the end
func (l *Line) indexAt(col int) int {
	x := 0
	for i, r := range l.text {
		w := terminal.CellWidth(r)
		if col < x+w {
			return i
		}
		x += w
	}
	return len(l.text)
}
