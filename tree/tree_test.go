package tree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
)

func TestArenaIntegrity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr, err := New(NewFrame(layout.VerticalSplit))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 200; i++ {
		parent := ID(rng.Intn(tr.Len()))
		var c Component = newLeaf("x", layout.Default())
		if rng.Intn(3) == 0 {
			c = NewFrame(layout.HorizontalSplit)
		}
		mustAdd(t, tr, parent, c, nil)
	}

	roots := 0
	for id := ID(0); int(id) < tr.Len(); id++ {
		p := tr.Parent(id)
		if p == NoParent {
			roots++
			if id != Root {
				t.Errorf("Node %d has no parent but is not root", id)
			}
			continue
		}
		n := 0
		for _, k := range tr.Children(p) {
			if k == id {
				n++
			}
		}
		if n != 1 {
			t.Errorf("Node %d appears %d times in parent %d", id, n, p)
		}
	}
	if roots != 1 {
		t.Errorf("Expected exactly one root, got %d", roots)
	}
}

func TestAddChildUnknownParent(t *testing.T) {
	tr, _ := New(NewFrame(layout.VerticalSplit))
	_, err := tr.AddChild(5, newLeaf("x", layout.Default()), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if tr.Len() != 1 {
		t.Errorf("Expected arena unchanged, got %d nodes", tr.Len())
	}
	if _, err := tr.AddChild(-1, newLeaf("x", layout.Default()), nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for negative id, got %v", err)
	}
}

func TestNewNodesDirtyExceptFrames(t *testing.T) {
	tr, _ := New(NewFrame(layout.VerticalSplit))
	frame := mustAdd(t, tr, Root, NewFrame(layout.HorizontalSplit), nil)
	l := mustAdd(t, tr, frame, newLeaf("x", layout.Default()), nil)

	if tr.IsDirty(Root) || tr.IsDirty(frame) {
		t.Error("Frames must not start dirty")
	}
	if !tr.IsDirty(l) {
		t.Error("New leaf must start dirty")
	}
	if r := tr.Rect(l); r != (layout.Rect{}) {
		t.Errorf("Expected zero rect before layout, got %+v", r)
	}
}

func TestExpansionFixedPoint(t *testing.T) {
	inner := &spawner{kids: []Component{newLeaf("a", layout.Default()), newLeaf("b", layout.Default())}}
	outer := &spawner{kids: []Component{inner, newLeaf("c", layout.Default())}}

	tr, err := New(outer)
	if err != nil {
		t.Fatal(err)
	}
	if outer.expanded != 1 || inner.expanded != 1 {
		t.Errorf("Expected one expansion each, got outer=%d inner=%d", outer.expanded, inner.expanded)
	}
	if tr.Len() != 5 {
		t.Errorf("Expected 5 nodes, got %d", tr.Len())
	}
	if diff := cmp.Diff([]ID{1, 2}, tr.Children(Root)); diff != "" {
		t.Errorf("Root children mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ID{3, 4}, tr.Children(1)); diff != "" {
		t.Errorf("Inner children mismatch (-want +got):\n%s", diff)
	}
}

func TestExpansionError(t *testing.T) {
	boom := errors.New("boom")
	tr, _ := New(NewFrame(layout.VerticalSplit))
	_, err := tr.AddChild(Root, &failingChildren{err: boom}, nil)
	if !errors.Is(err, boom) {
		t.Errorf("Expected expansion error, got %v", err)
	}
}

type failingChildren struct {
	Base
	err error
}

func (f *failingChildren) Render(*render.Buffer) error { return nil }
func (f *failingChildren) Children(*Commands) error    { return f.err }

func TestReadHelpersNeverFail(t *testing.T) {
	tr, _ := New(NewFrame(layout.VerticalSplit))
	if r := tr.Rect(99); r != (layout.Rect{}) {
		t.Errorf("Expected zero rect, got %+v", r)
	}
	if f := tr.Formatting(99); f != layout.Default() {
		t.Errorf("Expected default formatting, got %+v", f)
	}
	if p := tr.Parent(99); p != NoParent {
		t.Errorf("Expected NoParent, got %d", p)
	}
	if tr.Children(99) != nil {
		t.Error("Expected nil children")
	}
	if tr.Focus(99) {
		t.Error("Expected focus of unknown node to fail")
	}
	if !slices.Equal(tr.FocusPath(), []ID{Root}) {
		t.Errorf("Expected focus on root with nothing focusable, got %v", tr.FocusPath())
	}
}
