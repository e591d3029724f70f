package component

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-frame/input"
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
	"github.com/lixenwraith/vi-frame/terminal"
	"github.com/lixenwraith/vi-frame/tree"
)

// Text is the scrolling document body. It expands into one Line per row
// of its content and handles motions that span lines.
type Text struct {
	tree.Base
	s     *Session
	lines []string
	rows  []*Line
}

// NewText splits content into rows; tabs expand to the session tab width
func NewText(s *Session, content string) *Text {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	tab := strings.Repeat(" ", max(s.TabWidth, 1))
	content = strings.ReplaceAll(content, "\t", tab)
	return &Text{s: s, lines: strings.Split(content, "\n")}
}

// LineCount returns the number of rows
func (t *Text) LineCount() int { return len(t.lines) }

// Line returns row i once the body has expanded
func (t *Text) Line(i int) *Line { return t.rows[i] }

func (t *Text) Render(*render.Buffer) error { return nil }

func (t *Text) DefaultFormatting() layout.Formatting {
	f := layout.Default()
	f.Width, f.Height = layout.Fill(), layout.Fill()
	f.OverflowY = layout.Scroll
	f.Layout = layout.VerticalSplit
	f.Focusable = true
	return f
}

func (t *Text) Children(cmd *tree.Commands) error {
	if t.s.ShowGutter {
		t.s.Gutter = gutterWidth(len(t.lines))
	} else {
		t.s.Gutter = 0
	}
	t.rows = make([]*Line, 0, len(t.lines))
	for i, row := range t.lines {
		l := NewLine(t.s, i+1, row)
		t.rows = append(t.rows, l)
		var f *layout.Formatting
		if i == 0 {
			lf := l.DefaultFormatting()
			lf.RequestFocus = true
			f = &lf
		}
		if _, err := cmd.AddChild(l, f); err != nil {
			return err
		}
	}
	return nil
}

// Update handles motions that pick a line by index
func (t *Text) Update(ev terminal.Event, cmd *tree.Commands) (bool, error) {
	if ev.Type != terminal.EventKey || !cmd.OnFocusPath() {
		return false, nil
	}
	act, _ := t.s.Lookup(ev)

	kids := cmd.Children()
	if len(kids) == 0 {
		return false, nil
	}
	idx := cmd.IndexInParent(cmd.Focused())
	half := max(cmd.Rect().Height/2, 1)

	// Focus and scroll changes mark the affected nodes themselves
	switch act {
	case input.ActionFirstLine:
		t.jump(cmd, kids, 0)
	case input.ActionLastLine:
		t.jump(cmd, kids, len(kids)-1)
	case input.ActionHalfPageUp:
		t.jump(cmd, kids, idx-half)
	case input.ActionHalfPageDown:
		t.jump(cmd, kids, idx+half)
	case input.ActionScrollUp:
		cmd.ScrollBy(-1)
	case input.ActionScrollDown:
		cmd.ScrollBy(1)
	}
	return false, nil
}

// jump focuses the line at index i, clamped, keeping the cursor column
func (t *Text) jump(cmd *tree.Commands, kids []tree.ID, i int) bool {
	i = min(max(i, 0), len(kids)-1)
	from := cmd.Focused()
	if kids[i] == from {
		return false
	}
	col, _ := cmd.CursorOf(from)
	if !cmd.Focus(kids[i]) {
		return false
	}
	cmd.SetCursorOf(kids[i], col, 0)
	return true
}

// gutterWidth is the digit count of n plus a separating space
func gutterWidth(n int) int {
	return len(strconv.Itoa(max(n, 1))) + 1
}
