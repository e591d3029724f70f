// Package tree is the arena that owns every node of the interface: its
// component, parent and children, laid-out rectangle, formatting, scroll
// offset, cursor and dirty flag, all kept in parallel tables indexed by ID.
//
// A frame is Update (input), Layout (full recompute) and Render (dirty nodes
// only). Components never hold references into the arena; they act through
// a Commands value scoped to their own ID.
package tree
