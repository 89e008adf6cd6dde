package primitives

// Anchor is a filled cell from which a new word may legally cross, tagged
// with the single orientation currently open there. Anchors are ephemeral:
// they are derived from one Grid value's occupancy and never survive it.
type Anchor struct {
	Char     rune
	X, Y     int
	Vertical bool
}

// AnchorIndex maps each letter on the grid to the anchors bearing it.
type AnchorIndex map[rune][]Anchor

// Anchors scans every filled cell once and indexes the ones a new word can
// cross through. The result is cached for the lifetime of this Grid value;
// grids are confined to one trial goroutine, so no locking is needed.
//
// A cell is open horizontally when both horizontal neighbors are empty and
// at least one diagonal corner is unobstructed, so a new across word can run
// through it. The vertical check is symmetric. A cell open both ways is
// recorded as horizontal only; this keeps branching down at the cost of a
// few crossing opportunities.
func (g *Grid) Anchors() AnchorIndex {
	if g.anchors != nil {
		return g.anchors
	}

	idx := make(AnchorIndex)
	for i, r := range g.cells {
		if r == EmptyCell {
			continue
		}
		x, y := g.Coords(i)
		switch {
		case g.openAcross(x, y):
			idx[r] = append(idx[r], Anchor{Char: r, X: x, Y: y})
		case g.openDown(x, y):
			idx[r] = append(idx[r], Anchor{Char: r, X: x, Y: y, Vertical: true})
		}
	}
	g.anchors = idx
	return idx
}

// openAcross reports whether a new horizontal word may cross the filled cell
// at (x, y): both horizontal neighbors must be empty (edges count as
// blocked, so the new word has room on the grid), and at least one diagonal
// corner must be unobstructed (edges count as open) so the word's adjacent
// letters are not walled in on both rows.
func (g *Grid) openAcross(x, y int) bool {
	if !g.IsEmptyAt(x-1, y) || !g.IsEmptyAt(x+1, y) {
		return false
	}
	return g.IsOpenAt(x-1, y-1) || g.IsOpenAt(x-1, y+1) ||
		g.IsOpenAt(x+1, y-1) || g.IsOpenAt(x+1, y+1)
}

// openDown is the vertical counterpart of openAcross.
func (g *Grid) openDown(x, y int) bool {
	if !g.IsEmptyAt(x, y-1) || !g.IsEmptyAt(x, y+1) {
		return false
	}
	return g.IsOpenAt(x-1, y-1) || g.IsOpenAt(x+1, y-1) ||
		g.IsOpenAt(x-1, y+1) || g.IsOpenAt(x+1, y+1)
}
