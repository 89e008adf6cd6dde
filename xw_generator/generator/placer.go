package generator

import (
	"crosswarped.com/weave/pkg/primitives"
)

// Placements enumerates every legal insertion of word into grid: one
// candidate per (anchor, matching letter index) pair that survives bounds
// and compatibility checks. Distinct anchors can produce identical grids;
// they are kept as distinct candidates on purpose, weighting the random
// pick toward well-connected spots.
func Placements(grid *primitives.Grid, word string) []*primitives.Grid {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}
	// Cheap reject: a word sharing no letter with the grid cannot cross it.
	if !grid.Letters().ContainsAny(primitives.CharSetOf(word)) {
		return nil
	}

	anchors := grid.Anchors()
	var out []*primitives.Grid
	for i, r := range runes {
		for _, a := range anchors[r] {
			x, y := a.X-i, a.Y
			if a.Vertical {
				x, y = a.X, a.Y-i
			}
			if !spanInBounds(grid, len(runes), a.Vertical, x, y) {
				continue
			}
			if !Fits(grid, word, a.Vertical, x, y) {
				continue
			}
			out = append(out, grid.WithWordPlaced(x, y, a.Vertical, word))
		}
	}
	return out
}

// spanInBounds rejects placements whose span would leave the grid. Vertical
// words never wrap; horizontal words may wrap across the side edges when the
// grid is cylindrical, so any start column is fine as long as the word fits
// in one circumference.
func spanInBounds(grid *primitives.Grid, length int, vertical bool, x, y int) bool {
	if vertical {
		return y >= 0 && y+length <= grid.Height() &&
			x >= 0 && x < grid.Width()
	}
	if y < 0 || y >= grid.Height() {
		return false
	}
	if grid.Config().Wrap {
		return length <= grid.Width()
	}
	return x >= 0 && x+length <= grid.Width()
}

// Fits is the compatibility check for inserting word at (x, y) in the given
// orientation. It passes only when every cell on the span is empty or
// already holds the matching letter, at least one cell is a true crossing,
// every newly filled cell has unobstructed perpendicular neighbors, and the
// cells just before and after the span are unobstructed so words cannot
// merge end-to-end.
//
// The very first word of a trial is placed without consulting Fits; a
// placement with zero crossings is always rejected here.
func Fits(grid *primitives.Grid, word string, vertical bool, x, y int) bool {
	dx, dy := 1, 0
	if vertical {
		dx, dy = 0, 1
	}

	runes := []rune(word)
	if !grid.IsOpenAt(x-dx, y-dy) || !grid.IsOpenAt(x+len(runes)*dx, y+len(runes)*dy) {
		return false
	}

	crossed := false
	for i, r := range runes {
		lx, ly := x+i*dx, y+i*dy
		switch c := grid.CharAt(lx, ly); {
		case c == r:
			crossed = true
		case c != primitives.EmptyCell:
			// A different letter, or a cell off the grid.
			return false
		default:
			// A new letter may not sit beside an unrelated word.
			if !grid.IsOpenAt(lx-dy, ly-dx) || !grid.IsOpenAt(lx+dy, ly+dx) {
				return false
			}
		}
	}
	return crossed
}
