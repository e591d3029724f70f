package tree

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
	"github.com/lixenwraith/vi-frame/terminal"
)

// ErrNotFound is returned when an ID is outside the arena
var ErrNotFound = errors.New("component not found")

// Point is a column/row pair in a node's own coordinates
type Point struct {
	X, Y int
}

// Config tunes tree behavior
type Config struct {
	// ScrollStep is the number of rows one wheel notch scrolls
	ScrollStep int

	// OnBoundary is called when a cursor move is blocked with no focus transfer
	OnBoundary func()
}

// DefaultConfig returns the settings used when New gets no config
func DefaultConfig() *Config {
	return &Config{ScrollStep: 3}
}

// Tree owns all nodes in parallel tables indexed by ID
type Tree struct {
	cfg Config

	components  []Component
	parent      []ID
	children    [][]ID
	rects       []layout.Rect // parent-relative, from Layout
	screen      []layout.Rect // absolute, ancestor scroll applied
	clip        []layout.Rect // visible part of screen
	formatting  []layout.Formatting
	scroll      []Point
	cursor      []Point
	cursorShape []terminal.CursorShape
	dirty       []bool
	onPath      []bool

	focus     ID
	focusPath []ID

	// focus sampled at the start of dispatch, so a key that moves focus is
	// not handled again by the node receiving it
	eventFocus  ID
	dispatching bool
	expanding   bool
	pending     []ID

	revealPending bool
	width, height int
	rendered      []ID
}

// New creates a tree with root as node 0 and runs its expansion
func New(root Component, cfg ...*Config) (*Tree, error) {
	c := DefaultConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		c = cfg[0]
	}
	if c.ScrollStep <= 0 {
		c.ScrollStep = 1
	}

	t := &Tree{cfg: *c, focus: Root, eventFocus: Root}
	t.insert(root, NoParent, root.DefaultFormatting())
	t.focusPath = []ID{Root}
	t.onPath[Root] = true

	if err := t.expand(); err != nil {
		return t, err
	}
	return t, nil
}

// insert appends a node to every table and queues its expansion
func (t *Tree) insert(c Component, parent ID, f layout.Formatting) ID {
	id := ID(len(t.components))
	t.components = append(t.components, c)
	t.parent = append(t.parent, parent)
	t.children = append(t.children, nil)
	t.rects = append(t.rects, layout.Rect{})
	t.screen = append(t.screen, layout.Rect{})
	t.clip = append(t.clip, layout.Rect{})
	t.formatting = append(t.formatting, f)
	t.scroll = append(t.scroll, Point{})
	t.cursor = append(t.cursor, Point{})
	t.cursorShape = append(t.cursorShape, terminal.CursorBlock)
	t.dirty = append(t.dirty, !isFrame(c))
	t.onPath = append(t.onPath, false)

	if parent != NoParent {
		t.children[parent] = append(t.children[parent], id)
	}
	t.pending = append(t.pending, id)
	return id
}

func (t *Tree) valid(id ID) bool {
	return id >= 0 && int(id) < len(t.components)
}

// AddChild inserts c under parent. f overrides c's default formatting when
// non-nil. Outside of Update the new subtree is expanded before returning.
func (t *Tree) AddChild(parent ID, c Component, f *layout.Formatting) (ID, error) {
	if !t.valid(parent) {
		return 0, fmt.Errorf("add child to %d: %w", parent, ErrNotFound)
	}
	fm := c.DefaultFormatting()
	if f != nil {
		fm = *f
	}

	id := t.insert(c, parent, fm)
	if fm.RequestFocus {
		t.setFocus(id)
	}

	if !t.dispatching && !t.expanding {
		if err := t.expand(); err != nil {
			return id, err
		}
	}
	return id, nil
}

// expand runs queued Children calls until no more nodes are added
func (t *Tree) expand() error {
	if t.expanding {
		return nil
	}
	t.expanding = true
	defer func() { t.expanding = false }()

	for len(t.pending) > 0 {
		id := t.pending[0]
		t.pending = t.pending[1:]
		if err := t.components[id].Children(t.commands(id)); err != nil {
			return fmt.Errorf("expand %d: %w", id, err)
		}
	}
	t.settleFocus()
	return nil
}

func (t *Tree) commands(id ID) *Commands {
	return &Commands{tree: t, id: id}
}

// markDirty flags id for re-render
func (t *Tree) markDirty(id ID) {
	if t.valid(id) {
		t.dirty[id] = true
	}
}

// Invalidate marks every node dirty, frames included
func (t *Tree) Invalidate() {
	for i := range t.dirty {
		t.dirty[i] = true
	}
	t.revealPending = true
}

// Len returns the number of nodes
func (t *Tree) Len() int {
	return len(t.components)
}

// Parent returns the parent of id, NoParent for the root or unknown IDs
func (t *Tree) Parent(id ID) ID {
	if !t.valid(id) {
		return NoParent
	}
	return t.parent[id]
}

// Children returns a copy of id's children
func (t *Tree) Children(id ID) []ID {
	if !t.valid(id) {
		return nil
	}
	return slices.Clone(t.children[id])
}

// IndexInParent returns id's position among its siblings, -1 for the root
func (t *Tree) IndexInParent(id ID) int {
	p := t.Parent(id)
	if p == NoParent {
		return -1
	}
	return slices.Index(t.children[p], id)
}

// Rect returns id's parent-relative rectangle from the last Layout
func (t *Tree) Rect(id ID) layout.Rect {
	if !t.valid(id) {
		return layout.Rect{}
	}
	return t.rects[id]
}

// ScreenRect returns id's absolute rectangle with ancestor scroll applied
func (t *Tree) ScreenRect(id ID) layout.Rect {
	if !t.valid(id) {
		return layout.Rect{}
	}
	return t.screen[id]
}

// Formatting returns id's formatting, the default for unknown IDs
func (t *Tree) Formatting(id ID) layout.Formatting {
	if !t.valid(id) {
		return layout.Default()
	}
	return t.formatting[id]
}

// Cursor returns id's logical cursor
func (t *Tree) Cursor(id ID) (col, row int) {
	if !t.valid(id) {
		return 0, 0
	}
	return t.cursor[id].X, t.cursor[id].Y
}

// Scroll returns id's scroll offset
func (t *Tree) Scroll(id ID) (x, y int) {
	if !t.valid(id) {
		return 0, 0
	}
	return t.scroll[id].X, t.scroll[id].Y
}

// Focused returns the focused node
func (t *Tree) Focused() ID {
	return t.focus
}

// FocusPath returns the chain of IDs from the root to the focused node
func (t *Tree) FocusPath() []ID {
	return slices.Clone(t.focusPath)
}

// OnFocusPath reports whether id is the focused node or one of its ancestors
func (t *Tree) OnFocusPath(id ID) bool {
	return t.valid(id) && t.onPath[id]
}

// IsDirty reports whether id will be redrawn by the next Render
func (t *Tree) IsDirty(id ID) bool {
	return t.valid(id) && t.dirty[id]
}

// Dirty returns the IDs that will be redrawn by the next Render
func (t *Tree) Dirty() []ID {
	var ids []ID
	for i, d := range t.dirty {
		if d {
			ids = append(ids, ID(i))
		}
	}
	return ids
}

// Rendered returns the IDs composited by the last Render
func (t *Tree) Rendered() []ID {
	return slices.Clone(t.rendered)
}

// renderInto draws id into a fresh buffer of the given size
func (t *Tree) renderInto(id ID, width, height int) (*render.Buffer, error) {
	buf := render.NewBuffer(width, height)
	buf.SetFocus(id == t.focus)
	buf.SetCursor(t.cursor[id].X, t.cursor[id].Y)
	buf.SetScroll(t.scroll[id].X, t.scroll[id].Y)
	if err := t.components[id].Render(buf); err != nil {
		return buf, fmt.Errorf("render %d: %w", id, err)
	}
	return buf, nil
}

// measureBuffer renders id for measurement; failures measure as empty
func (t *Tree) measureBuffer(id ID, width, height int) *render.Buffer {
	buf, err := t.renderInto(id, width, height)
	if err != nil {
		log.Printf("tree: measure: %v", err)
		return render.NewBuffer(width, height)
	}
	return buf
}
