package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/weave/pkg/primitives"
)

func TestCreateGeneratorValidates(t *testing.T) {
	cfg := primitives.Config{Width: 9, Height: 9}

	_, err := CreateGenerator(testWords, primitives.Config{}, DefaultParams())
	require.ErrorIs(t, err, primitives.ErrBadDimensions)

	_, err = CreateGenerator(testWords, cfg, Params{Trials: 1, Workers: -1})
	require.ErrorIs(t, err, ErrNoWorkers)

	gen, err := CreateGenerator(testWords, cfg, Params{Trials: 10, Workers: 2, Seed: 1})
	require.NoError(t, err)
	require.NotNil(t, gen)
}

func TestGeneratorBestMatchesSelect(t *testing.T) {
	ctx := context.Background()
	cfg := primitives.Config{Width: 9, Height: 9}
	p := Params{Trials: 30, Workers: 2, Seed: 11}

	gen, err := CreateGenerator(testWords, cfg, p)
	require.NoError(t, err)
	fromGen, err := gen.Best(ctx)
	require.NoError(t, err)

	fromSelect, err := Select(ctx, testWords, cfg, p)
	require.NoError(t, err)

	assert.Equal(t, fromSelect.Repr(), fromGen.Repr())
}

func TestPossibleGridsDensitiesStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	cfg := primitives.Config{Width: 9, Height: 9}
	gen, err := CreateGenerator(testWords, cfg, Params{Trials: 40, Workers: 3, Seed: 13})
	require.NoError(t, err)

	last := -1.0
	count := 0
	for grid := range gen.PossibleGrids(ctx) {
		require.Greater(t, grid.Density(), last)
		last = grid.Density()
		count++
	}
	require.Positive(t, count, "the search must surface at least one grid")
}

func TestPossibleGridsConsumerCanStopEarly(t *testing.T) {
	ctx := context.Background()
	cfg := primitives.Config{Width: 9, Height: 9}
	gen, err := CreateGenerator(testWords, cfg, Params{Trials: 40, Workers: 3, Seed: 17})
	require.NoError(t, err)

	for range gen.PossibleGrids(ctx) {
		break
	}
	// Reaching here without deadlocking is the assertion.
}

func TestPossibleGridsStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := primitives.Config{Width: 9, Height: 9}
	gen, err := CreateGenerator(testWords, cfg, Params{Trials: 40, Workers: 2, Seed: 19})
	require.NoError(t, err)

	count := 0
	for range gen.PossibleGrids(ctx) {
		count++
	}
	assert.Zero(t, count)
}
