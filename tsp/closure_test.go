package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/dijkstra"
	"github.com/katalvlaran/salesman/tsp"
)

// hubAndSpokes has no Hamiltonian cycle of its own: every spoke meets only the hub.
func hubAndSpokes() *core.Graph[int] {
	return core.From(labels(4), [][]int64{
		{0, 1, 2, 3},
		{1, 0, 0, 0},
		{2, 0, 0, 0},
		{3, 0, 0, 0},
	})
}

func TestMetricClosure_Distances(t *testing.T) {
	cl, err := tsp.MetricClosure(hubAndSpokes())
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 1, 2, 3},
		{1, 0, 3, 4},
		{2, 3, 0, 5},
		{3, 4, 5, 0},
	}, cl.Graph.Matrix())
	assert.Equal(t, labels(4), cl.Graph.Vertices())
}

func TestMetricClosure_SolveAndExpand(t *testing.T) {
	g := hubAndSpokes()
	_, err := tsp.BruteForce(g)
	require.ErrorIs(t, err, tsp.ErrNoTour)

	cl, err := tsp.MetricClosure(g)
	require.NoError(t, err)
	res, err := tsp.BruteForce(cl.Graph)
	require.NoError(t, err)
	assert.EqualValues(t, 12, res.Cost)
	assert.Equal(t, tsp.Route{0, 1, 2, 3}, res.Route)

	walk, err := cl.Expand(res.Route)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 2, 0, 3, 0}, walk)

	// The walk prices to the same cost over the original edges.
	var (
		cost int64
		w    int64
	)
	for i := 0; i+1 < len(walk); i++ {
		w, err = g.EdgeWeight(walk[i], walk[i+1])
		require.NoError(t, err)
		require.Positive(t, w)
		cost += w
	}
	assert.Equal(t, res.Cost, cost)
}

func TestMetricClosure_Errors(t *testing.T) {
	// Vertex 2 is isolated.
	g := core.From(labels(3), [][]int64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	})
	_, err := tsp.MetricClosure(g)
	assert.ErrorIs(t, err, tsp.ErrNoTour)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, err = tsp.MetricClosure[int](nil)
	assert.ErrorIs(t, err, tsp.ErrNilGraph)

	neg := core.From(labels(2), [][]int64{{0, -1}, {1, 0}})
	_, err = tsp.MetricClosure(neg)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	cl, err := tsp.MetricClosure(square4())
	require.NoError(t, err)
	_, err = cl.Expand(tsp.Route{0, 1, 1, 3})
	assert.ErrorIs(t, err, tsp.ErrInvalidRoute)

	one, err := tsp.MetricClosure(core.From(labels(1), [][]int64{{0}}))
	require.NoError(t, err)
	walk, err := one.Expand(tsp.Route{0})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, walk)
}
