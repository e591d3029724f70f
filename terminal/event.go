package terminal

// EventType discriminates the Event union
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventClosed // Input closed
)

// String returns human-readable event type
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	case EventMouse:
		return "Mouse"
	case EventClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int // For EventResize
	Height    int // For EventResize

	// Mouse event fields
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// KeyEvent builds a key event for a named key
func KeyEvent(k Key, mod Modifier) Event {
	return Event{Type: EventKey, Key: k, Modifiers: mod}
}

// RuneEvent builds a key event for a printable character
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// MouseEvent builds a mouse event at screen cell (x, y)
func MouseEvent(btn MouseButton, action MouseAction, x, y int) Event {
	return Event{Type: EventMouse, MouseBtn: btn, MouseAction: action, MouseX: x, MouseY: y}
}

// ResizeEvent builds a resize event
func ResizeEvent(w, h int) Event {
	return Event{Type: EventResize, Width: w, Height: h}
}
