package generator

import (
	"context"
	"iter"
	"sync"

	"crosswarped.com/weave/pkg/primitives"
)

// Generator bundles a ranked word list, a grid configuration, and a search
// budget into a reusable search handle.
type Generator struct {
	ranked []string
	cfg    primitives.Config
	params Params
	seed   uint64
}

// CreateGenerator validates the configuration and budget, ranks the words,
// and fixes the random seed. Invalid configuration is the only failure the
// engine ever surfaces; everything after this point terminates normally.
func CreateGenerator(words []string, cfg primitives.Config, params Params) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		ranked: Rank(words),
		cfg:    cfg,
		params: params,
		seed:   params.resolveSeed(),
	}, nil
}

// Best runs the whole trial budget and returns the densest grid found.
func (g *Generator) Best(ctx context.Context) (*primitives.Grid, error) {
	return searchBest(ctx, g.ranked, g.cfg, g.params, g.seed)
}

// PossibleGrids yields grids of strictly increasing density as the search
// progresses, ending when the budget is spent, the context is done, or the
// consumer stops. The last grid yielded is the best the search found.
// Unlike Best, the sequence depends on worker scheduling; only the fact that
// each grid beats its predecessor is guaranteed.
func (g *Generator) PossibleGrids(ctx context.Context) iter.Seq[*primitives.Grid] {
	return func(yield func(*primitives.Grid) bool) {
		found := make(chan *primitives.Grid)
		done := make(chan struct{})

		var wg sync.WaitGroup
		for w := range g.params.Workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				localBest := -1.0
				for t := range g.params.Trials {
					if ctx.Err() != nil {
						return
					}
					trial := w*g.params.Trials + t
					grid := runTrial(g.ranked, g.cfg, trialRand(g.seed, trial))
					if grid.Density() <= localBest {
						continue
					}
					localBest = grid.Density()
					select {
					case found <- grid:
					case <-done:
						return
					}
				}
			}()
		}
		go func() {
			wg.Wait()
			close(found)
		}()
		defer close(done)

		best := -1.0
		for grid := range found {
			// Workers only pre-filter against their own batch; the global
			// cutoff happens here.
			if grid.Density() <= best {
				continue
			}
			best = grid.Density()
			if !yield(grid) {
				return
			}
		}
	}
}
