package render

import (
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/terminal"
)

// Viewport places a buffer on screen. The first SkipRows rows and SkipCols
// columns of content are scrolled or clipped away; Rows x Cols cells starting
// at (X, Y) are owned by the node and all of them are written.
type Viewport struct {
	X, Y     int
	SkipRows int
	SkipCols int
	Rows     int
	Cols     int
}

// FullViewport shows a whole buffer at (x, y) with no skip
func FullViewport(x, y int, buf *Buffer) Viewport {
	return Viewport{X: x, Y: y, Rows: buf.Height(), Cols: buf.Width()}
}

// Composite writes buf to term. Under layout.Wrap a character that would pass
// the buffer width starts a new row; under any other policy it is dropped.
func Composite(term terminal.Terminal, buf *Buffer, policy layout.Overflow, vp Viewport) error {
	if vp.Rows <= 0 || vp.Cols <= 0 {
		return nil
	}
	c := &compositor{
		term:  term,
		vp:    vp,
		width: buf.Width(),
		wrap:  policy == layout.Wrap,
		next:  vp.SkipCols,
	}
	return c.run(buf.Commands())
}

type compositor struct {
	term  terminal.Terminal
	vp    Viewport
	width int
	wrap  bool

	row, col int
	// next is the buffer column the write head sits at on the current row
	next    int
	started bool
}

func (c *compositor) lastRow() int {
	return c.vp.SkipRows + c.vp.Rows
}

func (c *compositor) rowVisible() bool {
	return c.row >= c.vp.SkipRows && c.row < c.lastRow()
}

func (c *compositor) run(cmds []Command) error {
	if err := c.term.ResetStyle(); err != nil {
		return err
	}

	for _, cmd := range cmds {
		if c.row >= c.lastRow() {
			break
		}
		var err error
		switch cmd.Kind {
		case CmdForeground:
			err = c.term.SetForeground(cmd.Color)
		case CmdBackground:
			err = c.term.SetBackground(cmd.Color)
		case CmdNewline:
			err = c.endRow()
		case CmdPrint:
			err = c.print(cmd.Rune)
		}
		if err != nil {
			return err
		}
	}

	// Erase what a previous, taller frame left behind
	for c.row < c.lastRow() {
		if err := c.endRow(); err != nil {
			return err
		}
	}
	return nil
}

func (c *compositor) print(r rune) error {
	w := terminal.CellWidth(r)
	if c.col+w > c.width {
		if !c.wrap || c.col == 0 {
			c.col += w
			return nil
		}
		if err := c.endRow(); err != nil {
			return err
		}
		if c.row >= c.lastRow() {
			return nil
		}
	}

	start := c.col
	c.col += w
	if !c.rowVisible() {
		return nil
	}

	lo, hi := c.vp.SkipCols, c.vp.SkipCols+c.vp.Cols
	if start < lo || start >= hi {
		return nil
	}
	if err := c.padTo(start); err != nil {
		return err
	}
	if start+w > hi {
		// Wide glyph straddles the clip edge
		return c.padTo(hi)
	}
	if err := c.term.Print(r); err != nil {
		return err
	}
	c.next = start + w
	return nil
}

// begin moves the write head to the start of the current visible row
func (c *compositor) begin() error {
	if c.started {
		return nil
	}
	c.started = true
	c.next = c.vp.SkipCols
	return c.term.MoveTo(c.vp.X, c.vp.Y+c.row-c.vp.SkipRows)
}

// padTo writes spaces in the current style up to buffer column col
func (c *compositor) padTo(col int) error {
	if err := c.begin(); err != nil {
		return err
	}
	for ; c.next < col; c.next++ {
		if err := c.term.Print(' '); err != nil {
			return err
		}
	}
	return nil
}

// endRow pads the visible remainder of the current row and advances
func (c *compositor) endRow() error {
	if c.rowVisible() {
		if err := c.padTo(c.vp.SkipCols + c.vp.Cols); err != nil {
			return err
		}
	}
	c.row++
	c.col = 0
	c.started = false
	c.next = c.vp.SkipCols
	return nil
}
