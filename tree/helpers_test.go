package tree

import (
	"strings"

	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
	"github.com/lixenwraith/vi-frame/terminal"
)

// leaf renders fixed rows and moves its cursor with arrow keys when focused
type leaf struct {
	Base
	rows    []string
	format  layout.Formatting
	renders int
	updates int
}

func newLeaf(text string, f layout.Formatting) *leaf {
	return &leaf{rows: strings.Split(text, "\n"), format: f}
}

func (l *leaf) Render(buf *render.Buffer) error {
	l.renders++
	for i, r := range l.rows {
		if i > 0 {
			buf.Newline()
		}
		buf.Write(r)
	}
	return nil
}

func (l *leaf) DefaultFormatting() layout.Formatting { return l.format }

func (l *leaf) Update(ev terminal.Event, cmd *Commands) (bool, error) {
	l.updates++
	if !cmd.HasFocus() || ev.Type != terminal.EventKey {
		return false, nil
	}
	switch ev.Key {
	case terminal.KeyDown:
		cmd.MoveCursor(0, 1)
	case terminal.KeyUp:
		cmd.MoveCursor(0, -1)
	case terminal.KeyLeft:
		cmd.MoveCursor(-1, 0)
	case terminal.KeyRight:
		cmd.MoveCursor(1, 0)
	default:
		return false, nil
	}
	return true, nil
}

// focusableFill is full-size, focusable, clipped
func focusableFill() layout.Formatting {
	f := layout.Default()
	f.Width, f.Height = layout.Fill(), layout.Fill()
	f.Focusable = true
	return f
}

func sized(w, h layout.Measurement, focusable bool) layout.Formatting {
	f := layout.Default()
	f.Width, f.Height = w, h
	f.Focusable = focusable
	return f
}

// spawner adds its children during expansion
type spawner struct {
	Base
	kids     []Component
	expanded int
}

func (s *spawner) Render(*render.Buffer) error { return nil }

func (s *spawner) Children(cmd *Commands) error {
	s.expanded++
	for _, k := range s.kids {
		if _, err := cmd.AddChild(k, nil); err != nil {
			return err
		}
	}
	return nil
}

func mustAdd(t interface{ Fatalf(string, ...any) }, tr *Tree, parent ID, c Component, f *layout.Formatting) ID {
	id, err := tr.AddChild(parent, c, f)
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	return id
}

func fptr(f layout.Formatting) *layout.Formatting { return &f }
