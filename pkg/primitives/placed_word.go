package primitives

import (
	"fmt"
	"strings"
)

// PlacedWord records one word committed to a grid: its text, the coordinate
// of its first letter, and its orientation.
type PlacedWord struct {
	Word     string
	X, Y     int
	Vertical bool
}

// Length returns the number of cells the word covers.
func (p PlacedWord) Length() int {
	return len(p.Word)
}

func (p PlacedWord) String() string {
	dir := "across"
	if p.Vertical {
		dir = "down"
	}
	return fmt.Sprintf("%s@(%d,%d) %s", strings.ToUpper(p.Word), p.X, p.Y, dir)
}
