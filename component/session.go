// Package component provides the editor's built-in tree components: the
// Text body and its Line rows, the Status line, the Debug filler and the
// Editor composite that arranges them.
package component

import (
	"github.com/lixenwraith/vi-frame/config"
	"github.com/lixenwraith/vi-frame/input"
	"github.com/lixenwraith/vi-frame/terminal"
)

// Session is editor state shared by every component of one tree
type Session struct {
	Mode  input.Mode
	Keys  *input.KeyTable
	Theme config.Theme

	// Name is the file name shown in the status line
	Name string

	ShowGutter bool
	TabWidth   int

	// Gutter is the line-number column width, set when the body expands
	Gutter int
}

// NewSession creates a session with default bindings and colors
func NewSession(name string) *Session {
	cfg := config.Default()
	th, _ := cfg.ResolveTheme()
	return &Session{
		Mode:       input.ModeNormal,
		Keys:       input.DefaultKeyTable(),
		Theme:      th,
		Name:       name,
		ShowGutter: cfg.Editor.ShowGutter,
		TabWidth:   cfg.Editor.TabWidth,
	}
}

// Lookup resolves ev in the current mode
func (s *Session) Lookup(ev terminal.Event) (input.Action, bool) {
	return s.Keys.Lookup(s.Mode, ev)
}

// CursorShape is the cursor for the current mode
func (s *Session) CursorShape() terminal.CursorShape {
	if s.Mode == input.ModeInsert {
		return terminal.CursorBar
	}
	return terminal.CursorBlock
}
