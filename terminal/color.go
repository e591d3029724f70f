package terminal

import "github.com/gdamore/tcell/v2"

// Color is a terminal color, shared with the tcell backend
type Color = tcell.Color

// Named colors used by built-in components and themes
const (
	ColorDefault = tcell.ColorDefault
	ColorBlack   = tcell.ColorBlack
	ColorWhite   = tcell.ColorWhite
	ColorRed     = tcell.ColorRed
	ColorGreen   = tcell.ColorGreen
	ColorYellow  = tcell.ColorYellow
	ColorBlue    = tcell.ColorBlue
	ColorGray    = tcell.ColorGray
	ColorTeal    = tcell.ColorTeal
)

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// CursorShape selects the hardware cursor glyph
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorBar
	CursorUnderscore
)

// String returns human-readable shape name
func (s CursorShape) String() string {
	switch s {
	case CursorBar:
		return "bar"
	case CursorUnderscore:
		return "underscore"
	default:
		return "block"
	}
}

// tcellCursor maps a shape onto the steady tcell cursor styles
func (s CursorShape) tcellCursor() tcell.CursorStyle {
	switch s {
	case CursorBar:
		return tcell.CursorStyleSteadyBar
	case CursorUnderscore:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}
