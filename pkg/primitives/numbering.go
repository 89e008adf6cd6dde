package primitives

// Label numbers one cell where at least one word starts. When both an across
// and a down word start at the same cell they share a single number.
type Label struct {
	Number int
	X, Y   int
	Across bool
	Down   bool
}

// hasLetter reports whether the cell at (x, y) holds a letter. Off-grid
// coordinates hold none.
func (g *Grid) hasLetter(x, y int) bool {
	r := g.charAt(x, y)
	return r != EmptyCell && r != blocked
}

// StartsWordAt reports whether a word of length > 1 starts at (x, y) in the
// given orientation: the cell holds a letter, the cell before it along the
// axis does not, and the cell after it does. Single-letter runs are not
// word starts.
func (g *Grid) StartsWordAt(x, y int, vertical bool) bool {
	if !g.hasLetter(x, y) {
		return false
	}
	dx, dy := 1, 0
	if vertical {
		dx, dy = 0, 1
	}
	return !g.hasLetter(x-dx, y-dy) && g.hasLetter(x+dx, y+dy)
}

// Numbering assigns clue numbers left-to-right, top-to-bottom, one per cell
// where a word starts, shared between orientations. Annotation and rendering
// layers consume this to label the finished grid.
func (g *Grid) Numbering() []Label {
	var labels []Label
	n := 0
	for y := range g.cfg.Height {
		for x := range g.cfg.Width {
			across := g.StartsWordAt(x, y, false)
			down := g.StartsWordAt(x, y, true)
			if !across && !down {
				continue
			}
			n++
			labels = append(labels, Label{Number: n, X: x, Y: y, Across: across, Down: down})
		}
	}
	return labels
}
