package component

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-frame/input"
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
	"github.com/lixenwraith/vi-frame/terminal"
	"github.com/lixenwraith/vi-frame/tree"
)

// Status is the one-row mode, file name and position line
type Status struct {
	tree.Base
	s    *Session
	last statusState
}

type statusState struct {
	mode      input.Mode
	line, col int
}

func NewStatus(s *Session) *Status {
	return &Status{s: s, last: statusState{mode: s.Mode, line: 1, col: 1}}
}

func (st *Status) DefaultFormatting() layout.Formatting {
	f := layout.Default()
	f.Width, f.Height = layout.Fill(), layout.Cell(1)
	return f
}

// Update tracks what the line shows; it runs after the body in dispatch
// order so it sees this event's cursor and mode changes
func (st *Status) Update(_ terminal.Event, cmd *tree.Commands) (bool, error) {
	focused := cmd.Focused()
	col, _ := cmd.CursorOf(focused)
	next := statusState{
		mode: st.s.Mode,
		line: cmd.IndexInParent(focused) + 1,
		col:  max(col-st.s.Gutter, 0) + 1,
	}
	if next == st.last {
		return false, nil
	}
	st.last = next
	return true, nil
}

func (st *Status) Render(buf *render.Buffer) error {
	th := st.s.Theme
	buf.SetForeground(th.StatusFg).SetBackground(th.StatusBg)

	mode := " " + st.last.mode.String() + " "
	pos := fmt.Sprintf(" %d:%d ", st.last.line, st.last.col)

	// Name takes what the mode and position leave
	room := buf.Width() - runewidth.StringWidth(mode) - runewidth.StringWidth(pos)
	name := ""
	if room > 1 {
		name = runewidth.Truncate(st.s.Name, room-1, "…")
	}
	pad := max(room-runewidth.StringWidth(name), 0)

	buf.Write(mode).Write(name)
	for range pad {
		buf.Write(" ")
	}
	buf.Write(pos)
	return nil
}
