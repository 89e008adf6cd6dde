package primitives

import (
	"errors"
	"strings"
)

// EmptyCell is the marker stored in cells no word covers.
const EmptyCell = ' '

// blocked is returned by charAt for coordinates outside the grid, so that a
// probe off the edge never matches a letter and never reads as empty.
const blocked = rune(0)

// ErrBadDimensions indicates a configuration with a non-positive width or height.
var ErrBadDimensions = errors.New("primitives: grid width and height must be positive")

// Config describes the geometry of a grid.
type Config struct {
	Width  int
	Height int
	// Wrap enables cylindrical topology: horizontal neighbor queries wrap
	// modulo Width. Vertical queries never wrap.
	Wrap bool
}

// Validate rejects non-positive dimensions before any generation starts.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return ErrBadDimensions
	}
	return nil
}

// Grid is a rectangular array of cells, each empty or holding one letter.
// A Grid is immutable once created: placements produce new Grid values, so
// sibling candidate states can be explored from the same parent safely.
type Grid struct {
	cfg     Config
	cells   []rune
	placed  []PlacedWord
	letters CharSet

	// anchors is built lazily on first use and reused for the lifetime of
	// this Grid value. Grids are confined to a single trial goroutine.
	anchors AnchorIndex
}

// Empty creates an all-blank grid for the given configuration.
func Empty(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cells := make([]rune, cfg.Width*cfg.Height)
	for i := range cells {
		cells[i] = EmptyCell
	}
	return &Grid{cfg: cfg, cells: cells}, nil
}

// Config returns the grid's geometry.
func (g *Grid) Config() Config { return g.cfg }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cfg.Width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cfg.Height }

// Index maps (x, y) to the linear cell index y*width + x.
func (g *Grid) Index(x, y int) int { return y*g.cfg.Width + x }

// Coords inverts Index.
func (g *Grid) Coords(i int) (x, y int) { return i % g.cfg.Width, i / g.cfg.Width }

// normX maps x into [0, width) when wrapping is enabled. The second return
// is false when x is out of range and wrapping cannot save it.
func (g *Grid) normX(x int) (int, bool) {
	if x >= 0 && x < g.cfg.Width {
		return x, true
	}
	if !g.cfg.Wrap {
		return 0, false
	}
	x %= g.cfg.Width
	if x < 0 {
		x += g.cfg.Width
	}
	return x, true
}

// charAt returns the cell content, or blocked for coordinates off the grid
// (after horizontal wrapping, when enabled).
func (g *Grid) charAt(x, y int) rune {
	if y < 0 || y >= g.cfg.Height {
		return blocked
	}
	x, ok := g.normX(x)
	if !ok {
		return blocked
	}
	return g.cells[g.Index(x, y)]
}

// CharAt returns the letter at (x, y), or EmptyCell if the cell is empty.
// Out-of-range coordinates read as a blocked non-letter.
func (g *Grid) CharAt(x, y int) rune {
	return g.charAt(x, y)
}

// IsEmptyAt reports whether the cell at (x, y) is empty. Out-of-range
// coordinates report false, so words cannot run off the grid or wrap
// vertically.
func (g *Grid) IsEmptyAt(x, y int) bool {
	return g.charAt(x, y) == EmptyCell
}

// IsOpenAt reports whether a new letter adjacent to (x, y) would be
// unobstructed. Unlike IsEmptyAt, coordinates beyond a hard edge count as
// open: there is nothing past the edge to conflict with.
func (g *Grid) IsOpenAt(x, y int) bool {
	if y < 0 || y >= g.cfg.Height {
		return true
	}
	x, ok := g.normX(x)
	if !ok {
		return true
	}
	return g.cells[g.Index(x, y)] == EmptyCell
}

// WithWordPlaced returns a new Grid with word written starting at (x, y),
// advancing down when vertical, right otherwise. The caller must have
// validated the placement already; no bounds or compatibility checks happen
// here.
func (g *Grid) WithWordPlaced(x, y int, vertical bool, word string) *Grid {
	cells := make([]rune, len(g.cells))
	copy(cells, g.cells)

	dx, dy := 1, 0
	if vertical {
		dx, dy = 0, 1
	}
	for i, r := range word {
		cx, _ := g.normX(x + i*dx)
		cells[g.Index(cx, y+i*dy)] = r
	}

	placed := make([]PlacedWord, len(g.placed), len(g.placed)+1)
	copy(placed, g.placed)
	placed = append(placed, PlacedWord{Word: word, X: x, Y: y, Vertical: vertical})

	next := &Grid{cfg: g.cfg, cells: cells, placed: placed}
	next.letters = *g.letters.Clone()
	next.letters.AddAll(CharSetOf(word))
	return next
}

// Has reports whether word has already been committed to this grid.
func (g *Grid) Has(word string) bool {
	for _, p := range g.placed {
		if p.Word == word {
			return true
		}
	}
	return false
}

// PlacedWords returns the words committed so far, in placement order.
func (g *Grid) PlacedWords() []PlacedWord {
	out := make([]PlacedWord, len(g.placed))
	copy(out, g.placed)
	return out
}

// Letters returns the set of distinct letters currently on the grid.
func (g *Grid) Letters() *CharSet {
	return g.letters.Clone()
}

// Density is the quality metric trials compete on: the sum of the lengths of
// all placed words over the cell count, in [0, 1].
func (g *Grid) Density() float64 {
	total := 0
	for _, p := range g.placed {
		total += len(p.Word)
	}
	return float64(total) / float64(g.cfg.Width*g.cfg.Height)
}

// Repr renders the grid one row per line, empty cells as '.'.
func (g *Grid) Repr() string {
	var sb strings.Builder
	for y := range g.cfg.Height {
		for x := range g.cfg.Width {
			r := g.cells[g.Index(x, y)]
			if r == EmptyCell {
				r = '.'
			}
			sb.WriteRune(r)
		}
		if y != g.cfg.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Cells returns a copy of the raw cell array in linear index order.
func (g *Grid) Cells() []rune {
	out := make([]rune, len(g.cells))
	copy(out, g.cells)
	return out
}
