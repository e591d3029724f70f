package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-frame/input"
	"github.com/lixenwraith/vi-frame/terminal"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.ScrollStep != 3 || !cfg.Editor.ShowGutter || !cfg.Bell.Enabled {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[editor]
show_gutter = false
scroll_step = 5

[theme]
status_bg = "#102030"

[bell]
enabled = false

[keys.normal]
q = "quit"
h = "none"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.ShowGutter || cfg.Editor.ScrollStep != 5 {
		t.Errorf("Editor section not applied: %+v", cfg.Editor)
	}
	if !cfg.Editor.Mouse || cfg.Editor.TabWidth != 4 {
		t.Errorf("Unset editor fields must keep defaults: %+v", cfg.Editor)
	}
	if cfg.Bell.Enabled || cfg.Bell.Frequency != 880 {
		t.Errorf("Bell section not applied: %+v", cfg.Bell)
	}

	th, err := cfg.ResolveTheme()
	if err != nil {
		t.Fatal(err)
	}
	if th.StatusBg != terminal.RGB(0x10, 0x20, 0x30) {
		t.Errorf("Expected parsed status_bg, got %v", th.StatusBg)
	}
	if th.Text != terminal.ColorDefault {
		t.Errorf("Expected default text color, got %v", th.Text)
	}

	kt, err := cfg.KeyTable()
	if err != nil {
		t.Fatal(err)
	}
	if act, _ := kt.Lookup(input.ModeNormal, terminal.RuneEvent('q')); act != input.ActionQuit {
		t.Errorf("Expected q bound to quit, got %v", act)
	}
	if act, _ := kt.Lookup(input.ModeNormal, terminal.RuneEvent('h')); act != input.ActionNone {
		t.Errorf("Expected h unbound, got %v", act)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor]\nshow_guter = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownKeys) {
		t.Fatalf("Expected ErrUnknownKeys, got %v", err)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Expected decode error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"scroll step", "[editor]\nscroll_step = 0\n"},
		{"tab width", "[editor]\ntab_width = 40\n"},
		{"debug pane", "[editor]\ndebug_pane = -1\n"},
		{"frequency", "[bell]\nfrequency = -1.0\n"},
		{"duration", "[bell]\nduration_ms = -5\n"},
		{"bad color", "[theme]\ngutter = \"#zzzzzz\"\n"},
		{"bad action", "[keys.normal]\nx = \"explode\"\n"},
		{"bad section", "[keys.visual]\nx = \"quit\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want terminal.Color
	}{
		{"", terminal.ColorDefault},
		{"default", terminal.ColorDefault},
		{"#ff0000", terminal.RGB(255, 0, 0)},
		{"#00ff80", terminal.RGB(0, 255, 128)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("red"); err == nil {
		t.Error("Expected error for non-hex color")
	}
}
