package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-frame/terminal"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"dollar":    '$',
}

// Section names accepted under [keys]
const (
	SectionNormal     = "normal"
	SectionNormalKeys = "normal_keys"
	SectionInsertKeys = "insert_keys"
)

// ParseKeyTable builds a sparse override KeyTable from decoded config
// sections (section → key → action name). Only sections present are set.
// Returns error on unknown sections, key names or action names.
func ParseKeyTable(sections map[string]map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}
	for name, data := range sections {
		var err error
		switch name {
		case SectionNormal:
			kt.NormalRunes, err = parseRuneSection(name, data)
		case SectionNormalKeys:
			kt.NormalKeys, err = parseKeySection(name, data)
		case SectionInsertKeys:
			kt.InsertKeys, err = parseKeySection(name, data)
		default:
			err = fmt.Errorf("unknown keymap section [%s]", name)
		}
		if err != nil {
			return nil, err
		}
	}
	return kt, nil
}

// parseRuneSection parses rune key → action name bindings
func parseRuneSection(section string, data map[string]string) (map[rune]Action, error) {
	result := make(map[rune]Action, len(data))
	for keyStr, actionName := range data {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}
		act, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}
		result[r] = act
	}
	return result, nil
}

// parseKeySection parses terminal.Key name → action name bindings
func parseKeySection(section string, data map[string]string) (map[terminal.Key]Action, error) {
	result := make(map[terminal.Key]Action, len(data))
	for keyStr, actionName := range data {
		k, ok := terminal.KeyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}
		act, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}
		result[k] = act
	}
	return result, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	act, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return act, nil
}
