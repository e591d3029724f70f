package tree

import (
	"math"

	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
	"github.com/lixenwraith/vi-frame/terminal"
)

// ID addresses a node in the arena. IDs are never reused
type ID int

const (
	// Root is the ID of the node passed to New
	Root ID = 0
	// NoParent is the parent of Root
	NoParent ID = -1
)

// Bounds is an inclusive legal cursor rectangle in logical coordinates
type Bounds struct {
	MinCol, MaxCol int
	MinRow, MaxRow int
}

// Contains reports whether (col, row) is legal
func (b Bounds) Contains(col, row int) bool {
	return col >= b.MinCol && col <= b.MaxCol && row >= b.MinRow && row <= b.MaxRow
}

// Clamp returns the nearest legal position
func (b Bounds) Clamp(col, row int) (int, int) {
	return clamp(col, b.MinCol, b.MaxCol), clamp(row, b.MinRow, b.MaxRow)
}

// Component is the contract every node implements
type Component interface {
	// Render draws the component's current state. It must not depend on
	// screen position
	Render(buf *render.Buffer) error

	// Update reacts to an input event and reports whether the node must be
	// redrawn. Cross-node effects go through cmd
	Update(ev terminal.Event, cmd *Commands) (bool, error)

	// Children is called once after insertion to add descendants
	Children(cmd *Commands) error

	// DefaultFormatting is used unless formatting is given at insertion
	DefaultFormatting() layout.Formatting

	// CursorBounds returns the legal cursor rectangle for content of the
	// given logical extent
	CursorBounds(width, height int, f layout.Formatting) Bounds

	// ScrollBounds limits the vertical scroll offset
	ScrollBounds() (min, max int)
}

// CursorStyler is implemented by components whose cursor shape follows
// state outside the tree, such as an editing mode. It takes precedence over
// the shape set through Commands.SetCursorShape
type CursorStyler interface {
	CursorShape() terminal.CursorShape
}

// Base provides the optional parts of Component. Embed it and implement Render
type Base struct{}

func (Base) Update(terminal.Event, *Commands) (bool, error) { return false, nil }

func (Base) Children(*Commands) error { return nil }

func (Base) DefaultFormatting() layout.Formatting { return layout.Default() }

func (Base) CursorBounds(width, height int, _ layout.Formatting) Bounds {
	return Bounds{MaxCol: max(width-1, 0), MaxRow: max(height-1, 0)}
}

func (Base) ScrollBounds() (int, int) { return 0, math.MaxInt }

// Frame arranges its children and draws nothing itself
type Frame struct {
	Base
	mode layout.Mode
}

// NewFrame creates a layout-only node splitting along mode
func NewFrame(mode layout.Mode) *Frame {
	return &Frame{mode: mode}
}

func (f *Frame) Render(*render.Buffer) error { return nil }

func (f *Frame) DefaultFormatting() layout.Formatting {
	fm := layout.Default()
	fm.Layout = f.mode
	return fm
}

func isFrame(c Component) bool {
	_, ok := c.(*Frame)
	return ok
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
