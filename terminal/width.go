package terminal

import "github.com/mattn/go-runewidth"

// CellWidth returns the number of columns r occupies, at least 1
func CellWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// StringWidth returns the display width of s using CellWidth per rune
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += CellWidth(r)
	}
	return n
}
