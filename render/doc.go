// Package render holds the per-node virtual drawing surface and the
// compositor that maps it onto absolute terminal cells.
//
// A component never writes to the terminal. It records commands into a
// Buffer sized to its box; Composite replays them at the node's screen
// position under a Wrap or Hide policy, erasing every cell it owns.
package render
