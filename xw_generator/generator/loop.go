package generator

import (
	"math/rand/v2"
	"slices"

	"crosswarped.com/weave/pkg/primitives"
)

// runLoop drives one trial from a seeded grid to exhaustion. Words are
// processed head-first: a word with no legal placement is deferred, and
// every successful placement requeues all deferred words behind the
// remaining tail, giving them a fresh chance on the grown grid. Each
// iteration either places a word or shrinks the live queue, so the loop is
// finite. Words still deferred at the end are simply unused.
func runLoop(grid *primitives.Grid, pending []string, rng *rand.Rand) *primitives.Grid {
	var deferred []string
	for len(pending) > 0 {
		word := pending[0]
		tail := pending[1:]

		// Duplicate inputs are tolerated silently.
		if grid.Has(word) {
			pending = tail
			continue
		}

		candidates := Placements(grid, word)
		if len(candidates) == 0 {
			deferred = append(deferred, word)
			pending = tail
			continue
		}

		grid = candidates[rng.IntN(len(candidates))]
		pending = append(deferred, tail...)
		deferred = nil
	}
	return grid
}

// seedRun places the first rankable word unconditionally, centered in the
// given orientation, then runs the loop over the rest. Words too long for
// the orientation are skipped as seeds but stay in the queue; if nothing can
// seed, the empty grid comes straight back.
func seedRun(words []string, empty *primitives.Grid, vertical bool, rng *rand.Rand) *primitives.Grid {
	cfg := empty.Config()
	for i, w := range words {
		n := len([]rune(w))
		if n == 0 {
			continue
		}

		var x, y int
		if vertical {
			if n > cfg.Height {
				continue
			}
			x, y = cfg.Width/2, (cfg.Height-n)/2
		} else {
			if n > cfg.Width {
				continue
			}
			x, y = (cfg.Width-n)/2, cfg.Height/2
		}

		seeded := empty.WithWordPlaced(x, y, vertical, w)
		pending := slices.Delete(slices.Clone(words), i, i+1)
		return runLoop(seeded, pending, rng)
	}
	return empty
}

// runTrial executes one full trial: two independent runs seeded from the
// first placeable word, one across and one down, keeping the denser result.
// A trial never fails; degenerate inputs yield a sparse or empty grid.
func runTrial(words []string, cfg primitives.Config, rng *rand.Rand) *primitives.Grid {
	empty, err := primitives.Empty(cfg)
	if err != nil {
		// Configuration is validated before any trial starts.
		panic(err)
	}
	across := seedRun(words, empty, false, rng)
	down := seedRun(words, empty, true, rng)
	if down.Density() > across.Density() {
		return down
	}
	return across
}
