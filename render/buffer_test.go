package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/vi-frame/terminal"
)

func TestBufferRecordsCommands(t *testing.T) {
	b := NewBuffer(10, 2)
	b.SetForeground(terminal.ColorRed).Write("ab").Newline().Clear()

	want := []Command{
		{Kind: CmdForeground, Color: terminal.ColorRed},
		{Kind: CmdPrint, Rune: 'a'},
		{Kind: CmdPrint, Rune: 'b'},
		{Kind: CmdNewline},
		{Kind: CmdClear},
	}
	if diff := cmp.Diff(want, b.Commands()); diff != "" {
		t.Errorf("Commands mismatch (-want +got):\n%s", diff)
	}
}

func TestMeasureEmpty(t *testing.T) {
	if w, h := NewBuffer(10, 10).Measure(); w != 0 || h != 0 {
		t.Errorf("Expected (0,0) for empty buffer, got (%d,%d)", w, h)
	}
	// Style markers alone still count as one row
	if w, h := NewBuffer(10, 10).Clear().Measure(); w != 0 || h != 1 {
		t.Errorf("Expected (0,1) for a cleared row, got (%d,%d)", w, h)
	}
}

func TestMeasureContentRoundTrip(t *testing.T) {
	text := "the quick brown fox"
	n := len(text)

	for _, width := range []int{n, n + 1, 100, Unbounded} {
		b := NewBuffer(width, 1).Write(text)
		if w, h := b.Measure(); w != n || h != 1 {
			t.Errorf("width %d: expected (%d,1), got (%d,%d)", width, n, w, h)
		}
	}

	for _, width := range []int{1, 3, 7, n - 1} {
		b := NewBuffer(width, 1).Write(text)
		wantH := (n + width - 1) / width
		if w, h := b.Measure(); w != width || h != wantH {
			t.Errorf("width %d: expected (%d,%d), got (%d,%d)", width, width, wantH, w, h)
		}
	}
}

func TestMeasureRowBreaks(t *testing.T) {
	b := NewBuffer(80, 10).Writeln("short").Writeln("a longer row").Write("x")
	if w, h := b.Measure(); w != 12 || h != 3 {
		t.Errorf("Expected (12,3), got (%d,%d)", w, h)
	}
	if w, h := b.MeasureAt(4); w != 4 || h != 6 {
		t.Errorf("Expected (4,6) at width 4, got (%d,%d)", w, h)
	}
}

func TestLocate(t *testing.T) {
	b := NewBuffer(4, 3).Writeln("abcdefghij").Write("xy")

	tests := []struct {
		col, row int
		wrap     bool
		x, y     int
	}{
		{0, 0, false, 0, 0},
		{6, 0, false, 6, 0},
		{6, 0, true, 2, 1},
		{9, 0, true, 1, 2},
		{10, 0, true, 2, 2},
		{1, 1, true, 1, 3},
		{2, 1, false, 2, 1},
	}
	for _, tt := range tests {
		x, y := b.Locate(tt.col, tt.row, tt.wrap)
		if x != tt.x || y != tt.y {
			t.Errorf("Locate(%d,%d,%v) = (%d,%d), expected (%d,%d)", tt.col, tt.row, tt.wrap, x, y, tt.x, tt.y)
		}
	}
}

func TestBufferState(t *testing.T) {
	b := NewBuffer(-3, 2)
	if b.Width() != 0 {
		t.Errorf("Expected negative width clamped to 0, got %d", b.Width())
	}
	b.SetCursor(3, 1)
	b.SetScroll(0, 4)
	b.SetFocus(true)
	if col, row := b.Cursor(); col != 3 || row != 1 {
		t.Errorf("Cursor mismatch: (%d,%d)", col, row)
	}
	if _, y := b.Scroll(); y != 4 {
		t.Errorf("Scroll mismatch: %d", y)
	}
	if !b.HasFocus() {
		t.Error("Expected focus flag")
	}
	if got := len(NewBuffer(1, 1).Write("héllo").Commands()); got != 5 {
		t.Errorf("Expected one print command per character, got %d", got)
	}
}
