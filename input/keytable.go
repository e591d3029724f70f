package input

import (
	"maps"

	"github.com/lixenwraith/vi-frame/terminal"
)

// Mode is the editing mode that selects a binding set
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
)

// String returns human-readable mode name
func (m Mode) String() string {
	if m == ModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// KeyTable maps keys to actions for each mode
type KeyTable struct {
	// Normal mode rune bindings
	NormalRunes map[rune]Action

	// Normal mode special keys (Ctrl+*, arrows, function keys)
	NormalKeys map[terminal.Key]Action

	// Insert mode special keys; printable runes always insert
	InsertKeys map[terminal.Key]Action
}

// DefaultKeyTable returns the default vi-style bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		NormalRunes: map[rune]Action{
			'h': ActionLeft,
			'j': ActionDown,
			'k': ActionUp,
			'l': ActionRight,
			'0': ActionLineStart,
			'$': ActionLineEnd,
			'g': ActionFirstLine,
			'G': ActionLastLine,
			'i': ActionInsert,
			'a': ActionAppend,
		},
		NormalKeys: map[terminal.Key]Action{
			terminal.KeyCtrlQ:     ActionQuit,
			terminal.KeyCtrlC:     ActionQuit,
			terminal.KeyUp:        ActionUp,
			terminal.KeyDown:      ActionDown,
			terminal.KeyLeft:      ActionLeft,
			terminal.KeyRight:     ActionRight,
			terminal.KeyHome:      ActionLineStart,
			terminal.KeyEnd:       ActionLineEnd,
			terminal.KeyPageUp:    ActionHalfPageUp,
			terminal.KeyPageDown:  ActionHalfPageDown,
			terminal.KeyCtrlU:     ActionHalfPageUp,
			terminal.KeyCtrlD:     ActionHalfPageDown,
			terminal.KeyCtrlY:     ActionScrollUp,
			terminal.KeyCtrlE:     ActionScrollDown,
			terminal.KeyBackspace: ActionLeft,
		},
		InsertKeys: map[terminal.Key]Action{
			terminal.KeyCtrlQ:     ActionQuit,
			terminal.KeyEscape:    ActionNormal,
			terminal.KeyUp:        ActionUp,
			terminal.KeyDown:      ActionDown,
			terminal.KeyLeft:      ActionLeft,
			terminal.KeyRight:     ActionRight,
			terminal.KeyHome:      ActionLineStart,
			terminal.KeyEnd:       ActionLineEnd,
			terminal.KeyBackspace: ActionBackspace,
			terminal.KeyDelete:    ActionDelete,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		NormalRunes: maps.Clone(kt.NormalRunes),
		NormalKeys:  maps.Clone(kt.NormalKeys),
		InsertKeys:  maps.Clone(kt.InsertKeys),
	}
}

// Lookup resolves ev in mode. In insert mode a printable rune without
// Ctrl/Alt resolves to ActionNone with insert reported true.
func (kt *KeyTable) Lookup(mode Mode, ev terminal.Event) (act Action, insert bool) {
	if ev.Type != terminal.EventKey {
		return ActionNone, false
	}
	plain := ev.Key == terminal.KeyRune && ev.Modifiers&(terminal.ModCtrl|terminal.ModAlt) == 0

	if mode == ModeInsert {
		if plain {
			return ActionNone, true
		}
		return kt.InsertKeys[ev.Key], false
	}
	if plain {
		return kt.NormalRunes[ev.Rune], false
	}
	return kt.NormalKeys[ev.Key], false
}

// MergeKeyTable returns base with override entries applied.
// Override entries bound to ActionNone ("none") delete the key.
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.NormalRunes, override.NormalRunes)
	mergeMap(result.NormalKeys, override.NormalKeys)
	mergeMap(result.InsertKeys, override.InsertKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
