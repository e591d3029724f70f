package tree

import (
	"log"
	"slices"
)

// Focus moves focus to id, resolved depth-first to its first focusable leaf.
// Returns false when id is unknown or has nothing focusable.
func (t *Tree) Focus(id ID) bool {
	if !t.valid(id) {
		return false
	}
	leaf, ok := t.entryLeaf(id, true)
	if !ok {
		return false
	}
	t.setFocus(leaf)
	return true
}

// setFocus records id as focused without resolution, invalidating the old
// and new holders
func (t *Tree) setFocus(id ID) {
	if id == t.focus {
		return
	}
	log.Printf("tree: focus %d -> %d", t.focus, id)

	t.markDirty(t.focus)
	t.markDirty(id)
	for _, p := range t.focusPath {
		t.onPath[p] = false
	}

	t.focus = id
	t.focusPath = t.pathTo(id)
	for _, p := range t.focusPath {
		t.onPath[p] = true
	}
	t.revealPending = true
}

// pathTo returns the root-to-id parent chain
func (t *Tree) pathTo(id ID) []ID {
	var path []ID
	for n := id; n != NoParent; n = t.parent[n] {
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}

// entryLeaf finds the first (forward) or last focusable leaf at or below id.
// A focusable node without focusable descendants is its own entry leaf.
func (t *Tree) entryLeaf(id ID, forward bool) (ID, bool) {
	kids := t.children[id]
	for i := range kids {
		k := kids[i]
		if !forward {
			k = kids[len(kids)-1-i]
		}
		if leaf, ok := t.entryLeaf(k, forward); ok {
			return leaf, true
		}
	}
	if t.formatting[id].Focusable {
		return id, true
	}
	return 0, false
}

// isFocusableLeaf reports whether id can hold focus as-is
func (t *Tree) isFocusableLeaf(id ID) bool {
	leaf, ok := t.entryLeaf(id, true)
	return ok && leaf == id
}

// settleFocus resolves focus to a focusable leaf after the tree changed
func (t *Tree) settleFocus() {
	if t.isFocusableLeaf(t.focus) {
		return
	}
	if leaf, ok := t.entryLeaf(t.focus, true); ok {
		t.setFocus(leaf)
		return
	}
	if leaf, ok := t.entryLeaf(Root, true); ok {
		t.setFocus(leaf)
		return
	}
	t.setFocus(Root)
}

// isAncestorOrSelf reports whether a is id or one of id's ancestors
func (t *Tree) isAncestorOrSelf(a, id ID) bool {
	for n := id; n != NoParent; n = t.parent[n] {
		if n == a {
			return true
		}
	}
	return false
}
