package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/terminal"
)

func rows(r *terminal.Recorder, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = r.Row(i)
	}
	return out
}

func TestCompositeHideClips(t *testing.T) {
	rec := terminal.NewRecorder(8, 3)
	buf := NewBuffer(5, 2).Writeln("abcdefg").Write("xy")

	if err := Composite(rec, buf, layout.Hide, FullViewport(1, 0, buf)); err != nil {
		t.Fatal(err)
	}

	want := []string{" abcde  ", " xy     ", "        "}
	for i, got := range rows(rec, 3) {
		if got != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], got)
		}
	}
}

func TestCompositeWrapFolds(t *testing.T) {
	rec := terminal.NewRecorder(3, 3)
	buf := NewBuffer(3, 3).Write("abcdefg")

	if err := Composite(rec, buf, layout.Wrap, FullViewport(0, 0, buf)); err != nil {
		t.Fatal(err)
	}

	want := []string{"abc", "def", "g  "}
	for i, got := range rows(rec, 3) {
		if got != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], got)
		}
	}
}

func TestCompositeErasesStaleContent(t *testing.T) {
	rec := terminal.NewRecorder(4, 3)

	tall := NewBuffer(4, 3).Writeln("####").Writeln("####").Write("####")
	Composite(rec, tall, layout.Hide, FullViewport(0, 0, tall))

	short := NewBuffer(4, 3).Write("x")
	rec.Reset()
	if err := Composite(rec, short, layout.Hide, FullViewport(0, 0, short)); err != nil {
		t.Fatal(err)
	}

	want := []string{"x   ", "    ", "    "}
	for i, got := range rows(rec, 3) {
		if got != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], got)
		}
	}
	if n := rec.Count(terminal.OpPrint); n != 12 {
		t.Errorf("Expected every one of 12 cells written, got %d prints", n)
	}
}

func TestCompositeSkipAndBudget(t *testing.T) {
	rec := terminal.NewRecorder(3, 4)
	buf := NewBuffer(3, 2).Writeln("a").Writeln("b").Writeln("c").Write("d")

	vp := Viewport{X: 0, Y: 1, SkipRows: 2, Rows: 2, Cols: 3}
	if err := Composite(rec, buf, layout.Hide, vp); err != nil {
		t.Fatal(err)
	}

	want := []string{"   ", "c  ", "d  ", "   "}
	for i, got := range rows(rec, 4) {
		if got != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], got)
		}
	}

	// Budget of one row stops after the first visible row
	rec = terminal.NewRecorder(3, 4)
	vp = Viewport{Rows: 1, Cols: 3}
	Composite(rec, buf, layout.Hide, vp)
	if rec.Row(0) != "a  " || rec.Row(1) != "   " {
		t.Errorf("Expected only first row written, got %q / %q", rec.Row(0), rec.Row(1))
	}
	if n := rec.Count(terminal.OpPrint); n != 3 {
		t.Errorf("Expected 3 prints within budget, got %d", n)
	}
}

func TestCompositeSkipCols(t *testing.T) {
	rec := terminal.NewRecorder(3, 1)
	buf := NewBuffer(6, 1).Write("abcdef")

	vp := Viewport{X: 0, Y: 0, SkipCols: 2, Rows: 1, Cols: 3}
	Composite(rec, buf, layout.Hide, vp)
	if got := rec.Row(0); got != "cde" {
		t.Errorf("Expected %q, got %q", "cde", got)
	}
}

func TestCompositePadsWithCurrentStyle(t *testing.T) {
	rec := terminal.NewRecorder(5, 2)
	buf := NewBuffer(5, 2).SetBackground(terminal.ColorBlue).Write("hi")

	Composite(rec, buf, layout.Hide, FullViewport(0, 0, buf))

	for x := 0; x < 5; x++ {
		for y := 0; y < 2; y++ {
			if c := rec.Cell(x, y); c.Bg != terminal.ColorBlue {
				t.Errorf("Expected blue background at (%d,%d), got %v", x, y, c.Bg)
			}
		}
	}
}

func TestCompositeEmptyViewport(t *testing.T) {
	rec := terminal.NewRecorder(2, 2)
	buf := NewBuffer(2, 2).Write("ab")
	if err := Composite(rec, buf, layout.Hide, Viewport{Rows: 0, Cols: 2}); err != nil {
		t.Fatal(err)
	}
	if len(rec.Directives) != 0 {
		t.Errorf("Expected no directives for empty viewport, got %d", len(rec.Directives))
	}
}

// TestCompositeOnScreen drives the compositor through the tcell backend
func TestCompositeOnScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(10, 3)
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	term := terminal.WrapScreen(screen)
	buf := NewBuffer(4, 2).SetForeground(terminal.ColorYellow).Write("wrapped")
	if err := Composite(term, buf, layout.Wrap, FullViewport(2, 1, buf)); err != nil {
		t.Fatal(err)
	}
	term.Flush()

	mainc, _, style, _ := screen.GetContent(2, 1)
	if mainc != 'w' {
		t.Errorf("Expected 'w' at (2,1), got '%c'", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != terminal.ColorYellow {
		t.Errorf("Expected yellow foreground, got %v", fg)
	}
	if mainc, _, _, _ = screen.GetContent(2, 2); mainc != 'p' {
		t.Errorf("Expected wrapped 'p' at (2,2), got '%c'", mainc)
	}
	if mainc, _, _, _ = screen.GetContent(4, 2); mainc != 'd' {
		t.Errorf("Expected 'd' at (4,2), got '%c'", mainc)
	}
}
