// Package config loads the editor's TOML configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-frame/input"
	"github.com/lixenwraith/vi-frame/terminal"
)

var (
	ErrUnknownKeys = errors.New("unknown config keys")
	ErrInvalid     = errors.New("invalid config value")
)

// Config is the decoded configuration file
type Config struct {
	Editor Editor                       `toml:"editor"`
	Theme  ThemeConfig                  `toml:"theme"`
	Bell   BellConfig                   `toml:"bell"`
	Keys   map[string]map[string]string `toml:"keys"`
	Log    LogConfig                    `toml:"log"`
}

type Editor struct {
	ShowGutter bool `toml:"show_gutter"`
	ScrollStep int  `toml:"scroll_step"`
	Mouse      bool `toml:"mouse"`
	TabWidth   int  `toml:"tab_width"`

	// DebugPane is the width of a debug filler right of the text; 0 hides it
	DebugPane int `toml:"debug_pane"`
}

// ThemeConfig holds hex colors; empty means terminal default
type ThemeConfig struct {
	Text         string `toml:"text"`
	Gutter       string `toml:"gutter"`
	GutterActive string `toml:"gutter_active"`
	StatusFg     string `toml:"status_fg"`
	StatusBg     string `toml:"status_bg"`
	Debug        string `toml:"debug"`
}

type BellConfig struct {
	Enabled    bool    `toml:"enabled"`
	Frequency  float64 `toml:"frequency"`
	DurationMs int     `toml:"duration_ms"`
}

// Duration is the tone length
func (b BellConfig) Duration() time.Duration {
	return time.Duration(b.DurationMs) * time.Millisecond
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Theme is the resolved color set
type Theme struct {
	Text         terminal.Color
	Gutter       terminal.Color
	GutterActive terminal.Color
	StatusFg     terminal.Color
	StatusBg     terminal.Color
	Debug        terminal.Color
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Editor: Editor{
			ShowGutter: true,
			ScrollStep: 3,
			Mouse:      true,
			TabWidth:   4,
		},
		Theme: ThemeConfig{
			Gutter:       "#808080",
			GutterActive: "#e5c07b",
			StatusFg:     "#ffffff",
			StatusBg:     "#000000",
			Debug:        "#008080",
		},
		Bell: BellConfig{
			Enabled:    true,
			Frequency:  880,
			DurationMs: 50,
		},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vi-frame", "config.toml")
}

// Load reads path over the defaults. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and that theme colors and keys parse
func (c *Config) Validate() error {
	if c.Editor.ScrollStep < 1 {
		return fmt.Errorf("%w: editor.scroll_step must be >= 1, got %d", ErrInvalid, c.Editor.ScrollStep)
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("%w: editor.tab_width must be 1..16, got %d", ErrInvalid, c.Editor.TabWidth)
	}
	if c.Editor.DebugPane < 0 {
		return fmt.Errorf("%w: editor.debug_pane must not be negative", ErrInvalid)
	}
	if c.Bell.Frequency <= 0 {
		return fmt.Errorf("%w: bell.frequency must be positive", ErrInvalid)
	}
	if c.Bell.DurationMs < 0 {
		return fmt.Errorf("%w: bell.duration_ms must not be negative", ErrInvalid)
	}
	if _, err := c.ResolveTheme(); err != nil {
		return err
	}
	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return nil
}

// ResolveTheme parses the hex theme colors
func (c *Config) ResolveTheme() (Theme, error) {
	var th Theme
	fields := []struct {
		name string
		hex  string
		dst  *terminal.Color
	}{
		{"text", c.Theme.Text, &th.Text},
		{"gutter", c.Theme.Gutter, &th.Gutter},
		{"gutter_active", c.Theme.GutterActive, &th.GutterActive},
		{"status_fg", c.Theme.StatusFg, &th.StatusFg},
		{"status_bg", c.Theme.StatusBg, &th.StatusBg},
		{"debug", c.Theme.Debug, &th.Debug},
	}
	for _, f := range fields {
		col, err := ParseColor(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: theme.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = col
	}
	return th, nil
}

// KeyTable returns the default bindings with [keys] applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	if len(c.Keys) == 0 {
		return input.DefaultKeyTable(), nil
	}
	override, err := input.ParseKeyTable(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: keys: %v", ErrInvalid, err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// ParseColor converts "#rrggbb" (or "#rgb") to a terminal color.
// Empty or "default" is the terminal default color.
func ParseColor(s string) (terminal.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "default") {
		return terminal.ColorDefault, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return terminal.ColorDefault, err
	}
	r, g, b := c.RGB255()
	return terminal.RGB(r, g, b), nil
}
