package render

import (
	"math"

	"github.com/lixenwraith/vi-frame/terminal"
)

// Unbounded is a measuring width large enough that no content wraps
const Unbounded = math.MaxInt32

// CommandKind identifies a recorded draw operation
type CommandKind uint8

const (
	CmdPrint CommandKind = iota
	CmdNewline
	CmdForeground
	CmdBackground
	// CmdClear is inert; it marks an intentionally empty row
	CmdClear
)

// Command is one recorded draw operation
type Command struct {
	Kind  CommandKind
	Rune  rune
	Color terminal.Color
}

// Buffer records draw commands for one node
type Buffer struct {
	width, height int
	commands      []Command

	scrollX, scrollY     int
	cursorCol, cursorRow int
	focus                bool
}

// NewBuffer creates an empty buffer with a fixed declared size
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:    max(width, 0),
		height:   max(height, 0),
		commands: make([]Command, 0, 64),
	}
}

// Write appends one print command per character
func (b *Buffer) Write(s string) *Buffer {
	for _, r := range s {
		b.commands = append(b.commands, Command{Kind: CmdPrint, Rune: r})
	}
	return b
}

// Writeln writes s followed by a row-break
func (b *Buffer) Writeln(s string) *Buffer {
	return b.Write(s).Newline()
}

// Newline appends a row-break
func (b *Buffer) Newline() *Buffer {
	b.commands = append(b.commands, Command{Kind: CmdNewline})
	return b
}

func (b *Buffer) SetForeground(c terminal.Color) *Buffer {
	b.commands = append(b.commands, Command{Kind: CmdForeground, Color: c})
	return b
}

func (b *Buffer) SetBackground(c terminal.Color) *Buffer {
	b.commands = append(b.commands, Command{Kind: CmdBackground, Color: c})
	return b
}

// Clear appends an inert marker
func (b *Buffer) Clear() *Buffer {
	b.commands = append(b.commands, Command{Kind: CmdClear})
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Commands returns the recorded commands. Callers must not modify the slice
func (b *Buffer) Commands() []Command { return b.commands }

// Scroll returns the owning node's scroll offset
func (b *Buffer) Scroll() (x, y int) { return b.scrollX, b.scrollY }

func (b *Buffer) SetScroll(x, y int) { b.scrollX, b.scrollY = x, y }

// Cursor returns the owning node's logical cursor
func (b *Buffer) Cursor() (col, row int) { return b.cursorCol, b.cursorRow }

func (b *Buffer) SetCursor(col, row int) { b.cursorCol, b.cursorRow = col, row }

// HasFocus reports whether the owning node holds focus
func (b *Buffer) HasFocus() bool { return b.focus }

func (b *Buffer) SetFocus(f bool) { b.focus = f }

// Measure returns the extent of the content wrapped at the declared width
func (b *Buffer) Measure() (width, height int) {
	return MeasureCommands(b.commands, b.width)
}

// MeasureAt returns the extent of the content wrapped at width.
// MeasureAt(Unbounded) yields the logical, unwrapped extent.
func (b *Buffer) MeasureAt(width int) (int, int) {
	return MeasureCommands(b.commands, width)
}

// MeasureCommands replays cmds with a running column that wraps when a
// character would pass width; row-breaks also start a new row.
// Returns (widest row, row count), or (0, 0) for no commands.
func MeasureCommands(cmds []Command, width int) (int, int) {
	if len(cmds) == 0 || width <= 0 {
		return 0, 0
	}

	maxWidth, rows, col := 0, 1, 0
	for _, c := range cmds {
		switch c.Kind {
		case CmdPrint:
			w := terminal.CellWidth(c.Rune)
			if col > 0 && col+w > width {
				rows++
				col = 0
			}
			col += w
			maxWidth = max(maxWidth, min(col, width))
		case CmdNewline:
			rows++
			col = 0
		}
	}
	return maxWidth, rows
}

// Locate maps a logical (col, row) to the buffer-relative cell where it is
// drawn. With wrap set, rows fold at the declared width as the compositor
// folds them. Positions past the end of a row extend it.
func (b *Buffer) Locate(col, row int, wrap bool) (x, y int) {
	width := b.width
	if !wrap || width <= 0 {
		width = Unbounded
	}

	fold := func(vx, vy int) (int, int) {
		if vx >= width {
			vy += vx / width
			vx %= width
		}
		return vx, vy
	}

	lrow, lcol, vx, vy := 0, 0, 0, 0
	for _, c := range b.commands {
		switch c.Kind {
		case CmdPrint:
			w := terminal.CellWidth(c.Rune)
			if vx > 0 && vx+w > width {
				vx = 0
				vy++
			}
			if lrow == row && col >= lcol && col < lcol+w {
				return vx + (col - lcol), vy
			}
			lcol += w
			vx += w
		case CmdNewline:
			if lrow == row {
				return fold(vx+(col-lcol), vy)
			}
			lrow++
			lcol, vx = 0, 0
			vy++
		}
	}
	if lrow == row {
		return fold(vx+(col-lcol), vy)
	}
	return fold(col, vy+(row-lrow))
}
