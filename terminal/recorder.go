package terminal

// Op identifies a recorded directive
type Op uint8

const (
	OpMoveTo Op = iota
	OpPrint
	OpForeground
	OpBackground
	OpResetStyle
	OpShowCursor
	OpHideCursor
	OpCursorShape
	OpFlush
)

// Directive is one recorded output call
type Directive struct {
	Op    Op
	X, Y  int
	Rune  rune
	Color Color
	Shape CursorShape
}

// RecordedCell is the last glyph and colors written to a grid position
type RecordedCell struct {
	Rune   rune
	Fg, Bg Color
}

// Recorder is an in-memory Terminal. It records every directive, mirrors
// prints onto a cell grid and serves queued events from PollEvent.
type Recorder struct {
	Directives []Directive

	// Fail, when set, is returned by every output directive
	Fail error

	width, height int
	grid          []RecordedCell
	x, y          int
	fg, bg        Color

	cursorX, cursorY int
	cursorVisible    bool
	cursorShape      CursorShape

	events []Event
}

// NewRecorder creates a recorder with a blank width x height grid
func NewRecorder(width, height int) *Recorder {
	r := &Recorder{fg: ColorDefault, bg: ColorDefault}
	r.Resize(width, height)
	return r
}

// Resize replaces the grid with a blank one of the new size
func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.grid = make([]RecordedCell, width*height)
	for i := range r.grid {
		r.grid[i] = RecordedCell{Rune: ' ', Fg: ColorDefault, Bg: ColorDefault}
	}
}

// Queue appends events to be returned by PollEvent
func (r *Recorder) Queue(evs ...Event) {
	r.events = append(r.events, evs...)
}

// Reset drops recorded directives, keeping the grid
func (r *Recorder) Reset() {
	r.Directives = r.Directives[:0]
}

// Count returns how many directives of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, d := range r.Directives {
		if d.Op == op {
			n++
		}
	}
	return n
}

// Cell returns the grid content at (x, y)
func (r *Recorder) Cell(x, y int) RecordedCell {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return RecordedCell{}
	}
	return r.grid[y*r.width+x]
}

// Row returns the runes of grid row y as a string
func (r *Recorder) Row(y int) string {
	if y < 0 || y >= r.height {
		return ""
	}
	out := make([]rune, r.width)
	for x := 0; x < r.width; x++ {
		out[x] = r.grid[y*r.width+x].Rune
	}
	return string(out)
}

// Cursor returns the hardware cursor state
func (r *Recorder) Cursor() (x, y int, visible bool, shape CursorShape) {
	return r.cursorX, r.cursorY, r.cursorVisible, r.cursorShape
}

func (r *Recorder) record(d Directive) error {
	if r.Fail != nil {
		return r.Fail
	}
	r.Directives = append(r.Directives, d)
	return nil
}

func (r *Recorder) MoveTo(x, y int) error {
	if err := r.record(Directive{Op: OpMoveTo, X: x, Y: y}); err != nil {
		return err
	}
	r.x, r.y = x, y
	return nil
}

func (r *Recorder) Print(ch rune) error {
	if err := r.record(Directive{Op: OpPrint, X: r.x, Y: r.y, Rune: ch}); err != nil {
		return err
	}
	if r.x >= 0 && r.y >= 0 && r.x < r.width && r.y < r.height {
		r.grid[r.y*r.width+r.x] = RecordedCell{Rune: ch, Fg: r.fg, Bg: r.bg}
	}
	r.x += CellWidth(ch)
	return nil
}

func (r *Recorder) SetForeground(c Color) error {
	if err := r.record(Directive{Op: OpForeground, Color: c}); err != nil {
		return err
	}
	r.fg = c
	return nil
}

func (r *Recorder) SetBackground(c Color) error {
	if err := r.record(Directive{Op: OpBackground, Color: c}); err != nil {
		return err
	}
	r.bg = c
	return nil
}

func (r *Recorder) ResetStyle() error {
	if err := r.record(Directive{Op: OpResetStyle}); err != nil {
		return err
	}
	r.fg, r.bg = ColorDefault, ColorDefault
	return nil
}

func (r *Recorder) ShowCursor() error {
	if err := r.record(Directive{Op: OpShowCursor, X: r.x, Y: r.y}); err != nil {
		return err
	}
	r.cursorX, r.cursorY, r.cursorVisible = r.x, r.y, true
	return nil
}

func (r *Recorder) HideCursor() error {
	if err := r.record(Directive{Op: OpHideCursor}); err != nil {
		return err
	}
	r.cursorVisible = false
	return nil
}

func (r *Recorder) SetCursorShape(s CursorShape) error {
	if err := r.record(Directive{Op: OpCursorShape, Shape: s}); err != nil {
		return err
	}
	r.cursorShape = s
	return nil
}

func (r *Recorder) Flush() error {
	return r.record(Directive{Op: OpFlush})
}

// PollEvent pops the next queued event, or reports ErrClosed when none remain
func (r *Recorder) PollEvent() (Event, error) {
	if len(r.events) == 0 {
		return Event{Type: EventClosed}, ErrClosed
	}
	ev := r.events[0]
	r.events = r.events[1:]
	if ev.Type == EventResize {
		r.Resize(ev.Width, ev.Height)
	}
	return ev, nil
}

func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}
