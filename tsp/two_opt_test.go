package tsp_test

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoOpt_FourVertex(t *testing.T) {
	// The identity route is already optimal.
	res, err := tsp.TwoOpt(square4(), nil)
	require.NoError(t, err)
	assert.Equal(t, tsp.Route{0, 1, 2, 3}, res.Route)
	assert.EqualValues(t, 12, res.Cost)

	// 0-2-1-3 (cost 14) is one reversal away from the optimum.
	initial := tsp.Route{0, 2, 1, 3}
	res, err = tsp.TwoOpt(square4(), initial)
	require.NoError(t, err)
	assert.Equal(t, tsp.Route{0, 1, 2, 3}, res.Route)
	assert.EqualValues(t, 12, res.Cost)
	assert.Equal(t, tsp.Route{0, 2, 1, 3}, initial, "input route must not change")
}

func TestTwoOpt_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var trial int
	for trial = 0; trial < 10; trial++ {
		g := metricPoints(rng, 8)
		opt, err := tsp.BruteForce(g)
		require.NoError(t, err)
		identity, err := g.RouteCost([]int{0, 1, 2, 3, 4, 5, 6, 7})
		require.NoError(t, err)

		res, err := tsp.TwoOpt(g, nil)
		require.NoError(t, err)
		requireTour(t, g, res)
		assert.GreaterOrEqual(t, res.Cost, opt.Cost)
		assert.LessOrEqual(t, res.Cost, identity)
	}
}

func TestTwoOpt_LocalOptimum(t *testing.T) {
	g := metricPoints(rand.New(rand.NewSource(12)), 12)
	res, err := tsp.TwoOpt(g, nil)
	require.NoError(t, err)

	n := len(res.Route)
	var i, j int
	for i = 1; i <= n-2; i++ {
		for j = i + 2; j <= n; j++ {
			cand := slices.Clone(res.Route)
			slices.Reverse(cand[i:j])
			cost, err := g.RouteCost(cand)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, cost, res.Cost, "reversal [%d,%d) improves", i, j)
		}
	}
}

func TestTwoOpt_Asymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	var trial int
	for trial = 0; trial < 10; trial++ {
		g := randomComplete(rng, 7, false)
		opt, err := tsp.BruteForce(g)
		require.NoError(t, err)

		res, err := tsp.TwoOpt(g, nil)
		require.NoError(t, err)
		requireTour(t, g, res)
		assert.GreaterOrEqual(t, res.Cost, opt.Cost)
	}
}

func TestTwoOpt_FirstImprovement(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	g := metricPoints(rng, 10)
	initial := tsp.RandomRoute(10, 99)
	start, err := g.RouteCost(initial)
	require.NoError(t, err)

	res, err := tsp.TwoOpt(g, initial, tsp.WithFirstImprovement())
	require.NoError(t, err)
	requireTour(t, g, res)
	assert.LessOrEqual(t, res.Cost, start)
}

func TestTwoOpt_MaxMovesAndProgress(t *testing.T) {
	var seen []tsp.Progress
	res, err := tsp.TwoOpt(square4(), tsp.Route{0, 2, 1, 3},
		tsp.WithMaxMoves(1),
		tsp.WithProgress(1, func(p tsp.Progress) { seen = append(seen, p) }),
	)
	require.NoError(t, err)
	assert.EqualValues(t, 12, res.Cost)
	require.Len(t, seen, 1)
	assert.EqualValues(t, 1, seen[0].Iteration)
	assert.EqualValues(t, 12, seen[0].BestCost)
}

func TestTwoOpt_Errors(t *testing.T) {
	_, err := tsp.TwoOpt(square4(), tsp.Route{0, 1, 1, 3})
	assert.ErrorIs(t, err, tsp.ErrInvalidRoute)

	_, err = tsp.TwoOpt(square4(), tsp.Route{0, 1, 2})
	assert.ErrorIs(t, err, tsp.ErrInvalidRoute)

	// Route 0-1-3-2 needs the missing 1-3 edge.
	g := core.From(labels(4), [][]int64{
		{0, 5, 1, 5},
		{5, 0, 5, 0},
		{1, 5, 0, 5},
		{5, 0, 5, 0},
	})
	_, err = tsp.TwoOpt(g, tsp.Route{0, 1, 3, 2})
	assert.ErrorIs(t, err, tsp.ErrNoTour)

	_, err = tsp.TwoOpt(square4(), nil, tsp.WithMaxMoves(-1))
	assert.ErrorIs(t, err, tsp.ErrBadOption)
}

func TestTwoOpt_CancelledKeepsRoute(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	initial := tsp.Route{0, 2, 1, 3}
	res, err := tsp.TwoOpt(square4(), initial, tsp.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, initial, res.Route)
	assert.EqualValues(t, 14, res.Cost)
}
