package tsp_test

import (
	"testing"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestNeighbor(t *testing.T) {
	res, err := tsp.NearestNeighbor(square4())
	require.NoError(t, err)
	assert.Equal(t, tsp.Route{0, 1, 2, 3}, res.Route)
	assert.EqualValues(t, 12, res.Cost)
}

func TestNearestNeighbor_TiesGoToLowestIndex(t *testing.T) {
	g := core.From(labels(4), [][]int64{
		{0, 2, 2, 2},
		{2, 0, 3, 3},
		{2, 3, 0, 3},
		{2, 3, 3, 0},
	})
	res, err := tsp.NearestNeighbor(g)
	require.NoError(t, err)
	assert.Equal(t, tsp.Route{0, 1, 2, 3}, res.Route)
	assert.EqualValues(t, 10, res.Cost)
}

func TestNearestNeighbor_NoTour(t *testing.T) {
	star := core.From(labels(4), [][]int64{
		{0, 1, 1, 1},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	})
	_, err := tsp.NearestNeighbor(star)
	assert.ErrorIs(t, err, tsp.ErrNoTour)

	// A path visits every vertex but cannot close.
	path := core.From(labels(4), [][]int64{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	})
	_, err = tsp.NearestNeighbor(path)
	assert.ErrorIs(t, err, tsp.ErrNoTour)
}

func TestNearestNeighbor_Errors(t *testing.T) {
	_, err := tsp.NearestNeighbor[int](nil)
	assert.ErrorIs(t, err, tsp.ErrNilGraph)

	_, err = tsp.NearestNeighbor(core.From([]int{0, 1}, [][]int64{{0, -3}, {3, 0}}))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}
