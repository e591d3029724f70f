package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen implements Terminal on top of a tcell.Screen
type Screen struct {
	screen tcell.Screen

	x, y  int
	style tcell.Style

	// buttons held at the previous mouse event, for press/release/drag detection
	buttons tcell.ButtonMask

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewScreen creates a Screen on the controlling terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return WrapScreen(s), nil
}

// WrapScreen adapts an existing tcell screen, e.g. tcell.NewSimulationScreen
func WrapScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s, style: tcell.StyleDefault}
}

// Init enters raw mode and the alternate screen. Mouse reporting is enabled on request
func (s *Screen) Init(mouse bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if mouse {
		s.screen.EnableMouse()
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.finalized = true
	s.screen.Fini()
}

// Tcell exposes the wrapped screen
func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

func (s *Screen) closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalized
}

func (s *Screen) MoveTo(x, y int) error {
	if s.closed() {
		return ErrClosed
	}
	s.x, s.y = x, y
	return nil
}

// Print writes ch and advances by its display width
func (s *Screen) Print(ch rune) error {
	if s.closed() {
		return ErrClosed
	}
	s.screen.SetContent(s.x, s.y, ch, nil, s.style)
	s.x += CellWidth(ch)
	return nil
}

func (s *Screen) SetForeground(c Color) error {
	if s.closed() {
		return ErrClosed
	}
	s.style = s.style.Foreground(c)
	return nil
}

func (s *Screen) SetBackground(c Color) error {
	if s.closed() {
		return ErrClosed
	}
	s.style = s.style.Background(c)
	return nil
}

func (s *Screen) ResetStyle() error {
	if s.closed() {
		return ErrClosed
	}
	s.style = tcell.StyleDefault
	return nil
}

func (s *Screen) ShowCursor() error {
	if s.closed() {
		return ErrClosed
	}
	s.screen.ShowCursor(s.x, s.y)
	return nil
}

func (s *Screen) HideCursor() error {
	if s.closed() {
		return ErrClosed
	}
	s.screen.HideCursor()
	return nil
}

func (s *Screen) SetCursorShape(shape CursorShape) error {
	if s.closed() {
		return ErrClosed
	}
	s.screen.SetCursorStyle(shape.tcellCursor())
	return nil
}

func (s *Screen) Flush() error {
	if s.closed() {
		return ErrClosed
	}
	s.screen.Show()
	return nil
}

func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// PollEvent blocks for the next event the tree understands.
// Interrupts, focus and paste events are skipped.
func (s *Screen) PollEvent() (Event, error) {
	for {
		if s.closed() {
			return Event{Type: EventClosed}, ErrClosed
		}
		tev := s.screen.PollEvent()
		if tev == nil {
			return Event{Type: EventClosed}, ErrClosed
		}
		if ev, ok := s.convert(tev); ok {
			if ev.Type == EventResize {
				s.screen.Sync()
			}
			return ev, nil
		}
	}
}

func (s *Screen) convert(tev tcell.Event) (Event, bool) {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		return convertKey(ev), true
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent(w, h), true
	case *tcell.EventMouse:
		return s.convertMouse(ev), true
	}
	return Event{}, false
}

func convertModifiers(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 || m&tcell.ModMeta != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

// convertKey maps tcell keys onto Key constants.
// tcell aliases Ctrl+H/I/M/[ with Backspace/Tab/Enter/Escape; the named key wins.
func convertKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey, Modifiers: convertModifiers(ev.Modifiers())}

	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
		return out
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyBacktab:
		out.Key = KeyBacktab
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = KeyBackspace
	case tcell.KeyDelete:
		out.Key = KeyDelete
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyHome:
		out.Key = KeyHome
	case tcell.KeyEnd:
		out.Key = KeyEnd
	case tcell.KeyPgUp:
		out.Key = KeyPageUp
	case tcell.KeyPgDn:
		out.Key = KeyPageDown
	case tcell.KeyInsert:
		out.Key = KeyInsert
	default:
		switch {
		case k >= tcell.KeyF1 && k <= tcell.KeyF12:
			out.Key = KeyF1 + Key(k-tcell.KeyF1)
		case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
			out.Key = KeyCtrlA + Key(k-tcell.KeyCtrlA)
			out.Modifiers |= ModCtrl
		default:
			out.Key = KeyNone
		}
	}
	return out
}

// convertMouse derives press/release/drag from the change in held buttons
func (s *Screen) convertMouse(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	btns := ev.Buttons()
	out := Event{
		Type:      EventMouse,
		MouseX:    x,
		MouseY:    y,
		Modifiers: convertModifiers(ev.Modifiers()),
	}

	switch {
	case btns&tcell.WheelUp != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelUp, MouseActionPress
		return out
	case btns&tcell.WheelDown != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelDown, MouseActionPress
		return out
	}

	held := btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	prev := s.buttons
	s.buttons = held

	switch {
	case held == 0 && prev == 0:
		out.MouseAction = MouseActionMove
	case held == 0:
		out.MouseBtn = buttonOf(prev)
		out.MouseAction = MouseActionRelease
	case held == prev:
		out.MouseBtn = buttonOf(held)
		out.MouseAction = MouseActionDrag
	default:
		out.MouseBtn = buttonOf(held &^ prev)
		if out.MouseBtn == MouseBtnNone {
			out.MouseBtn = buttonOf(held)
		}
		out.MouseAction = MouseActionPress
	}
	return out
}

func buttonOf(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return MouseBtnLeft
	case m&tcell.Button3 != 0:
		return MouseBtnMiddle
	case m&tcell.Button2 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}
