package layout

import "fmt"

// Kind selects how a Measurement resolves
type Kind uint8

const (
	KindCell Kind = iota
	KindPercent
	KindContent
	KindFill
)

// Measurement is a sizing policy for one dimension
type Measurement struct {
	Kind  Kind
	Value int
}

// Cell is an exact cell count
func Cell(n int) Measurement { return Measurement{Kind: KindCell, Value: n} }

// Percent is a share of the available space, 0-100
func Percent(p int) Measurement { return Measurement{Kind: KindPercent, Value: p} }

// Content sizes to the measured rendered output
func Content() Measurement { return Measurement{Kind: KindContent} }

// Fill shares leftover space evenly with other Fill siblings
func Fill() Measurement { return Measurement{Kind: KindFill} }

func (m Measurement) String() string {
	switch m.Kind {
	case KindCell:
		return fmt.Sprintf("Cell(%d)", m.Value)
	case KindPercent:
		return fmt.Sprintf("Percent(%d)", m.Value)
	case KindContent:
		return "Content"
	case KindFill:
		return "Fill"
	default:
		return "Unknown"
	}
}

// Overflow is the per-axis overflow policy
type Overflow uint8

const (
	Wrap Overflow = iota
	Hide
	Scroll
)

func (o Overflow) String() string {
	switch o {
	case Wrap:
		return "Wrap"
	case Hide:
		return "Hide"
	case Scroll:
		return "Scroll"
	default:
		return "Unknown"
	}
}

// Mode is the axis along which a node arranges its children
type Mode uint8

const (
	// VerticalSplit stacks children top-to-bottom
	VerticalSplit Mode = iota
	// HorizontalSplit arranges children left-to-right
	HorizontalSplit
)

func (m Mode) String() string {
	if m == HorizontalSplit {
		return "HorizontalSplit"
	}
	return "VerticalSplit"
}

// Formatting is the declarative sizing, overflow and focus policy of a node.
// X and Y are offsets applied after flow placement.
type Formatting struct {
	X, Y          Measurement
	Width, Height Measurement
	OverflowX     Overflow
	OverflowY     Overflow
	RequestFocus  bool
	Layout        Mode
	Focusable     bool
}

// Default returns the formatting used when a component declares nothing:
// full size, clipped, not focusable
func Default() Formatting {
	return Formatting{
		X:         Cell(0),
		Y:         Cell(0),
		Width:     Percent(100),
		Height:    Percent(100),
		OverflowX: Hide,
		OverflowY: Hide,
		Layout:    VerticalSplit,
	}
}

// Resolve computes a non-Fill, non-Content measurement against available space.
// Content and Fill resolve to the full available space; the layout engine
// substitutes their real values.
func Resolve(m Measurement, available int) int {
	if available <= 0 {
		return 0
	}
	switch m.Kind {
	case KindCell:
		return clamp(m.Value, 0, available)
	case KindPercent:
		return available * clamp(m.Value, 0, 100) / 100
	default:
		return available
	}
}

// FillShare splits leftover space among count Fill siblings.
// The remainder of the integer division is dropped.
func FillShare(available, used, count int) int {
	if count <= 0 {
		return 0
	}
	left := available - used
	if left <= 0 {
		return 0
	}
	return left / count
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
