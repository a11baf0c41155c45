// Package tsp_test verifies the TSP solvers through the public API.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/require"
)

// square4 is the 4-vertex graph whose optimal tour costs 12 (0-1-2-3).
func square4() *core.Graph[int] {
	return core.From([]int{0, 1, 2, 3}, [][]int64{
		{0, 1, 4, 3},
		{1, 0, 2, 5},
		{4, 2, 0, 6},
		{3, 5, 6, 0},
	})
}

// labels returns 0..n-1.
func labels(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// randomComplete returns a complete graph with weights in [1, 100].
func randomComplete(rng *rand.Rand, n int, symmetric bool) *core.Graph[int] {
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if symmetric && j < i {
				w[i][j] = w[j][i]
				continue
			}
			w[i][j] = 1 + rng.Int63n(100)
		}
	}

	return core.From(labels(n), w)
}

// metricPoints returns a symmetric complete graph of rounded Manhattan distances
// between random points, which satisfies the triangle inequality.
func metricPoints(rng *rand.Rand, n int) *core.Graph[int] {
	xs := make([]int64, n)
	ys := make([]int64, n)
	var i, j int
	for i = 0; i < n; i++ {
		xs[i] = rng.Int63n(100)
		ys[i] = rng.Int63n(100)
	}
	w := make([][]int64, n)
	for i = 0; i < n; i++ {
		w[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			if i != j {
				w[i][j] = 1 + abs(xs[i]-xs[j]) + abs(ys[i]-ys[j])
			}
		}
	}

	return core.From(labels(n), w)
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// requireTour asserts res is a valid route of g priced correctly.
func requireTour(t *testing.T, g *core.Graph[int], res tsp.Result) {
	t.Helper()
	require.NoError(t, tsp.ValidateRoute(res.Route, g.NumVertices()))
	require.Equal(t, 0, res.Route[0])
	cost, err := g.RouteCost(res.Route)
	require.NoError(t, err)
	require.Equal(t, cost, res.Cost)
}
