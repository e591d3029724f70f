package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-frame/config"
	"github.com/lixenwraith/vi-frame/input"
	"github.com/lixenwraith/vi-frame/terminal"
)

func newApp(t *testing.T, rec *terminal.Recorder, cfg *config.Config, content string) *App {
	t.Helper()
	a, err := New(rec, cfg, "test.txt", content, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestRunUntilQuit(t *testing.T) {
	rec := terminal.NewRecorder(30, 6)
	a := newApp(t, rec, nil, "one\ntwo\nthree")
	rec.Queue(
		terminal.RuneEvent('j'),
		terminal.RuneEvent('j'),
		terminal.KeyEvent(terminal.KeyCtrlQ, terminal.ModCtrl),
		terminal.RuneEvent('k'),
	)

	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Initial frame plus one per handled event; the event after quit is never read
	if a.Frames() != 3 {
		t.Errorf("Expected 3 frames, got %d", a.Frames())
	}
	if x, y, _, _ := rec.Cursor(); x != 2 || y != 2 {
		t.Errorf("Expected cursor on third line, got (%d,%d)", x, y)
	}
	if !strings.HasSuffix(rec.Row(5), " 3:1 ") {
		t.Errorf("Status = %q", rec.Row(5))
	}
}

func TestRunEndsWhenTerminalCloses(t *testing.T) {
	rec := terminal.NewRecorder(20, 4)
	a := newApp(t, rec, nil, "x")

	if err := a.Run(); err != nil {
		t.Fatalf("Expected clean exit on closed terminal, got %v", err)
	}
	if a.Frames() != 1 {
		t.Errorf("Expected only the initial frame, got %d", a.Frames())
	}
}

func TestRunResize(t *testing.T) {
	rec := terminal.NewRecorder(20, 4)
	a := newApp(t, rec, nil, "hello")
	rec.Queue(terminal.ResizeEvent(40, 8))

	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if r := a.Tree().ScreenRect(2); r.Y != 7 || r.Width != 40 {
		t.Errorf("Expected status on new last row, got %+v", r)
	}
	if got := rec.Row(0); !strings.HasPrefix(got, "1 hello") || len(got) != 40 {
		t.Errorf("Row 0 = %q", got)
	}
}

func TestRunMouseDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.Mouse = false
	rec := terminal.NewRecorder(20, 4)
	a := newApp(t, rec, cfg, "a\nb")
	first := a.Tree().Focused()
	rec.Queue(terminal.MouseEvent(terminal.MouseBtnLeft, terminal.MouseActionPress, 2, 1))

	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if a.Tree().Focused() != first {
		t.Error("Mouse events must be ignored when disabled")
	}
	if a.Frames() != 1 {
		t.Errorf("Expected no frame for an ignored event, got %d", a.Frames())
	}
}

func TestRunKeepsGoingAfterRenderFailure(t *testing.T) {
	rec := terminal.NewRecorder(20, 4)
	rec.Fail = errors.New("write failed")
	a := newApp(t, rec, nil, "a")

	if err := a.Run(); err != nil {
		t.Fatalf("Render failures must not end the loop: %v", err)
	}
	if a.Frames() != 0 {
		t.Errorf("Expected no successful frame, got %d", a.Frames())
	}
}

func TestNewAppliesConfig(t *testing.T) {
	cfg, err := config.Parse(`
[editor]
show_gutter = false
debug_pane = 5

[keys.normal]
x = "quit"
`)
	if err != nil {
		t.Fatal(err)
	}
	rec := terminal.NewRecorder(20, 4)
	a := newApp(t, rec, cfg, "abc")

	if act, _ := a.Session().Lookup(terminal.RuneEvent('x')); act != input.ActionQuit {
		t.Errorf("Expected x bound to quit, got %v", act)
	}
	if a.Session().Gutter != 0 {
		t.Errorf("Expected no gutter, got %d", a.Session().Gutter)
	}

	rec.Queue(terminal.RuneEvent('x'))
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if got := rec.Row(0); got != "abc            debug" {
		t.Errorf("Row 0 = %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("line\n\xffbad"), 0o644); err != nil {
		t.Fatal(err)
	}

	content, name, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if name != "doc.txt" || content != "line\n�bad" {
		t.Errorf("LoadFile = (%q, %q)", content, name)
	}

	content, name, err = LoadFile(filepath.Join(dir, "new.txt"))
	if err != nil || content != "" || name != "new.txt" {
		t.Errorf("Expected empty new file, got (%q, %q, %v)", content, name, err)
	}

	if _, name, _ := LoadFile(""); name != NoName {
		t.Errorf("Expected %q, got %q", NoName, name)
	}

	if _, _, err := LoadFile(dir); err == nil {
		t.Error("Expected error reading a directory")
	}
}

func TestReportCrash(t *testing.T) {
	var buf bytes.Buffer
	restored := false
	reportCrash(&buf, "boom", func() { restored = true })

	if !restored {
		t.Error("Expected terminal restore before report")
	}
	out := buf.String()
	if !strings.Contains(out, "VI-FRAME CRASHED: boom") || !strings.Contains(out, "Stack Trace:") {
		t.Errorf("Unexpected report %q", out)
	}

	// nil panics are ignored without exiting
	HandleCrash(nil, func() { t.Error("restore called for nil panic") })
}
