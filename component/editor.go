package component

import (
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
	"github.com/lixenwraith/vi-frame/tree"
)

// Editor is the root composite: the body (text plus an optional debug
// pane) above the status line
type Editor struct {
	tree.Base
	s       *Session
	content string

	// DebugWidth > 0 adds a debug pane of that many columns right of the text
	DebugWidth int

	text   *Text
	status *Status
}

func NewEditor(s *Session, content string) *Editor {
	return &Editor{s: s, content: content}
}

func (e *Editor) Render(*render.Buffer) error { return nil }

func (e *Editor) DefaultFormatting() layout.Formatting {
	f := layout.Default()
	f.Width, f.Height = layout.Fill(), layout.Fill()
	f.Layout = layout.VerticalSplit
	return f
}

func (e *Editor) Children(cmd *tree.Commands) error {
	e.text = NewText(e.s, e.content)
	e.status = NewStatus(e.s)

	if e.DebugWidth <= 0 {
		if _, err := cmd.AddChild(e.text, nil); err != nil {
			return err
		}
	} else {
		dbg := NewDebug("debug", e.s.Theme.Debug, layout.Cell(e.DebugWidth), layout.Fill())
		if _, err := cmd.AddChild(newSplit(layout.HorizontalSplit, e.text, dbg), nil); err != nil {
			return err
		}
	}

	_, err := cmd.AddChild(e.status, nil)
	return err
}

// Text returns the body once the tree has expanded
func (e *Editor) Text() *Text { return e.text }

// split is a fill-size container that adds fixed children on expansion
type split struct {
	tree.Base
	mode layout.Mode
	kids []tree.Component
}

func newSplit(mode layout.Mode, kids ...tree.Component) *split {
	return &split{mode: mode, kids: kids}
}

func (p *split) Render(*render.Buffer) error { return nil }

func (p *split) DefaultFormatting() layout.Formatting {
	f := layout.Default()
	f.Width, f.Height = layout.Fill(), layout.Fill()
	f.Layout = p.mode
	return f
}

func (p *split) Children(cmd *tree.Commands) error {
	for _, k := range p.kids {
		if _, err := cmd.AddChild(k, nil); err != nil {
			return err
		}
	}
	return nil
}
