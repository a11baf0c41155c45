package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeldKarp_FourVertex(t *testing.T) {
	res, err := tsp.HeldKarp(square4())
	require.NoError(t, err)
	assert.EqualValues(t, 12, res.Cost)
	assert.True(t, tsp.Equal(tsp.Route{0, 1, 2, 3}, res.Route))
}

func TestHeldKarp_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	var n int
	for n = 1; n <= 8; n++ {
		for _, symmetric := range []bool{true, false} {
			g := randomComplete(rng, n, symmetric)
			want, err := tsp.BruteForce(g)
			require.NoError(t, err)
			got, err := tsp.HeldKarp(g)
			require.NoError(t, err)
			assert.Equal(t, want.Cost, got.Cost, "n=%d symmetric=%v", n, symmetric)
			requireTour(t, g, got)
		}
	}
}

func TestHeldKarp_Errors(t *testing.T) {
	star := core.From(labels(4), [][]int64{
		{0, 1, 1, 1},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	})
	_, err := tsp.HeldKarp(star)
	assert.ErrorIs(t, err, tsp.ErrNoTour)

	big := randomComplete(rand.New(rand.NewSource(1)), tsp.MaxHeldKarpVertices+1, true)
	_, err = tsp.HeldKarp(big)
	assert.ErrorIs(t, err, tsp.ErrTooLarge)

	_, err = tsp.HeldKarp(core.New[string]())
	assert.ErrorIs(t, err, tsp.ErrEmptyGraph)
}

func TestExactSolvers_NotStronglyConnected(t *testing.T) {
	// 0 reaches 1 and 2, but nothing leads back to 0.
	g := core.From(labels(3), [][]int64{
		{0, 1, 1},
		{0, 0, 1},
		{0, 1, 0},
	})
	_, err := tsp.BruteForce(g)
	assert.ErrorIs(t, err, tsp.ErrNoTour)
	assert.ErrorContains(t, err, "not strongly connected")

	_, err = tsp.HeldKarp(g)
	assert.ErrorIs(t, err, tsp.ErrNoTour)
	assert.ErrorContains(t, err, "not strongly connected")
}
