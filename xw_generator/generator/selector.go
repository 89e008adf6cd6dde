package generator

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"crosswarped.com/weave/pkg/primitives"
)

// Sentinel errors for search budget validation.
var (
	// ErrNoTrials indicates a non-positive per-worker trial budget.
	ErrNoTrials = errors.New("generator: trials per worker must be positive")
	// ErrNoWorkers indicates a non-positive worker count.
	ErrNoWorkers = errors.New("generator: worker count must be positive")
)

// Params controls the Monte-Carlo search budget.
type Params struct {
	// Trials is the number of independent trials each worker runs.
	Trials int
	// Workers is the number of concurrent workers.
	Workers int
	// Seed is the base seed for per-trial randomness. Zero picks a
	// time-based seed; any other value makes the search reproducible.
	Seed uint64
}

// DefaultParams returns the reference search budget: 1000 trials on each of
// 4 workers.
func DefaultParams() Params {
	return Params{Trials: 1000, Workers: 4}
}

// Validate rejects a useless budget before any work starts.
func (p Params) Validate() error {
	if p.Trials < 1 {
		return ErrNoTrials
	}
	if p.Workers < 1 {
		return ErrNoWorkers
	}
	return nil
}

// resolveSeed turns the zero "pick for me" seed into a concrete one.
func (p Params) resolveSeed() uint64 {
	if p.Seed != 0 {
		return p.Seed
	}
	return uint64(time.Now().UnixNano())
}

// trialRand derives the independent random source for one trial. Every
// trial index gets its own PCG stream off the base seed, so outcomes are
// uncorrelated across trials and reproducible for a fixed seed.
func trialRand(seed uint64, trial int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(trial)))
}

// Select runs the full search over words and returns the densest grid found.
// Trials share nothing but the ranked word list and the configuration, so
// workers run them without synchronization and only the final reduction
// compares results. Ties go to the earliest trial index, which keeps the
// outcome independent of worker scheduling.
func Select(ctx context.Context, words []string, cfg primitives.Config, p Params) (*primitives.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return searchBest(ctx, Rank(words), cfg, p, p.resolveSeed())
}

// batchBest is one worker's local winner.
type batchBest struct {
	grid  *primitives.Grid
	trial int
}

// searchBest fans the trial budget out across workers and folds their local
// bests into the global maximum by density. Cancellation is honored at trial
// boundaries; whatever completed before the cutoff still competes.
func searchBest(ctx context.Context, ranked []string, cfg primitives.Config, p Params, seed uint64) (*primitives.Grid, error) {
	results := make(chan batchBest, p.Workers)

	var wg sync.WaitGroup
	for w := range p.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var best *primitives.Grid
			bestTrial := 0
			for t := range p.Trials {
				if ctx.Err() != nil {
					break
				}
				trial := w*p.Trials + t
				grid := runTrial(ranked, cfg, trialRand(seed, trial))
				if best == nil || grid.Density() > best.Density() {
					best, bestTrial = grid, trial
				}
			}
			if best != nil {
				results <- batchBest{grid: best, trial: bestTrial}
			}
		}()
	}
	wg.Wait()
	close(results)

	var best batchBest
	for r := range results {
		switch {
		case best.grid == nil:
			best = r
		case r.grid.Density() > best.grid.Density():
			best = r
		case r.grid.Density() == best.grid.Density() && r.trial < best.trial:
			best = r
		}
	}
	if best.grid == nil {
		// Cancelled before a single trial completed.
		return nil, ctx.Err()
	}
	return best.grid, nil
}
