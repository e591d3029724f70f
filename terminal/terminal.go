package terminal

import "errors"

// ErrClosed is returned by a backend after Fini or once input is exhausted
var ErrClosed = errors.New("terminal closed")

// Terminal is the output and input surface the component tree needs.
// Output directives are buffered until Flush.
type Terminal interface {
	// MoveTo positions the write head (0-indexed)
	MoveTo(x, y int) error

	// Print writes one character at the write head and advances it
	Print(ch rune) error

	SetForeground(c Color) error
	SetBackground(c Color) error

	// ResetStyle restores default colors
	ResetStyle() error

	// ShowCursor shows the hardware cursor at the write head
	ShowCursor() error
	HideCursor() error
	SetCursorShape(s CursorShape) error

	// Flush presents buffered output
	Flush() error

	// PollEvent blocks until the next input event
	PollEvent() (Event, error)

	// Size returns current terminal dimensions
	Size() (width, height int)
}
