package input

import "sort"

// Action is an editor command bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit

	// Motions
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionLineStart
	ActionLineEnd
	ActionFirstLine
	ActionLastLine
	ActionHalfPageUp
	ActionHalfPageDown
	ActionScrollUp
	ActionScrollDown

	// Mode switches
	ActionInsert
	ActionAppend
	ActionNormal

	// Editing, insert mode only
	ActionBackspace
	ActionDelete
)

// actionRegistry maps canonical action names used in config files to actions
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"quit": ActionQuit,

	"motion_left":           ActionLeft,
	"motion_right":          ActionRight,
	"motion_up":             ActionUp,
	"motion_down":           ActionDown,
	"motion_line_start":     ActionLineStart,
	"motion_line_end":       ActionLineEnd,
	"motion_first_line":     ActionFirstLine,
	"motion_last_line":      ActionLastLine,
	"motion_half_page_up":   ActionHalfPageUp,
	"motion_half_page_down": ActionHalfPageDown,
	"scroll_up":             ActionScrollUp,
	"scroll_down":           ActionScrollDown,

	"mode_insert": ActionInsert,
	"mode_append": ActionAppend,
	"mode_normal": ActionNormal,

	"delete_back": ActionBackspace,
	"delete":      ActionDelete,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// String returns the canonical config name
func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// ActionNames returns all config action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
