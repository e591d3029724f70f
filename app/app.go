// Package app runs the editor: one blocking event read, then update,
// layout and render, repeated until quit or the terminal closes.
package app

import (
	"errors"
	"log"
	"time"

	"github.com/lixenwraith/vi-frame/bell"
	"github.com/lixenwraith/vi-frame/component"
	"github.com/lixenwraith/vi-frame/config"
	"github.com/lixenwraith/vi-frame/input"
	"github.com/lixenwraith/vi-frame/terminal"
	"github.com/lixenwraith/vi-frame/tree"
)

// App owns the tree and drives it from a terminal
type App struct {
	term    terminal.Terminal
	tree    *tree.Tree
	session *component.Session
	editor  *component.Editor
	bell    *bell.Bell
	mouse   bool

	frames int
}

// New builds the editor tree for content. b may be nil for a silent bell
func New(term terminal.Terminal, cfg *config.Config, name, content string, b *bell.Bell) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	theme, err := cfg.ResolveTheme()
	if err != nil {
		return nil, err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}

	s := component.NewSession(name)
	s.Keys = keys
	s.Theme = theme
	s.ShowGutter = cfg.Editor.ShowGutter
	s.TabWidth = cfg.Editor.TabWidth

	ed := component.NewEditor(s, content)
	ed.DebugWidth = cfg.Editor.DebugPane

	tcfg := &tree.Config{
		ScrollStep: cfg.Editor.ScrollStep,
		OnBoundary: b.Ring,
	}
	tr, err := tree.New(ed, tcfg)
	if err != nil {
		return nil, err
	}

	return &App{
		term:    term,
		tree:    tr,
		session: s,
		editor:  ed,
		bell:    b,
		mouse:   cfg.Editor.Mouse,
	}, nil
}

// Tree exposes the component tree
func (a *App) Tree() *tree.Tree { return a.tree }

// Session exposes the shared editor state
func (a *App) Session() *component.Session { return a.session }

// Editor exposes the root component
func (a *App) Editor() *component.Editor { return a.editor }

// Frames returns how many frames rendered successfully
func (a *App) Frames() int { return a.frames }

// Run draws the first frame and processes events until quit.
// A closed terminal ends the loop without error.
func (a *App) Run() error {
	a.frame()
	for {
		ev, err := a.term.PollEvent()
		if errors.Is(err, terminal.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch ev.Type {
		case terminal.EventClosed:
			return nil
		case terminal.EventMouse:
			if !a.mouse {
				continue
			}
		case terminal.EventKey:
			if act, _ := a.session.Lookup(ev); act == input.ActionQuit {
				log.Printf("app: quit after %d frames", a.frames)
				return nil
			}
		}

		if err := a.tree.Update(ev); err != nil {
			return err
		}
		a.frame()
	}
}

// frame lays out at the current size and renders. Render failures keep
// the dirty set, so the next frame retries them
func (a *App) frame() {
	w, h := a.term.Size()
	start := time.Now()
	a.tree.Layout(w, h)
	if err := a.tree.Render(a.term); err != nil {
		log.Printf("app: render: %v", err)
		return
	}
	a.frames++
	if d := time.Since(start); d > 50*time.Millisecond {
		log.Printf("app: slow frame %d: %v", a.frames, d)
	}
}
