// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in vertex/edge lifecycle, including the atomic row+column drop of RemoveVertex.
//   - Validate sentinel errors and the "no partial mutation" rule on failure.
package core_test

import (
	"testing"

	"github.com/katalvlaran/salesman/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square4 is the 4-vertex symmetric matrix reused across core tests.
func square4() *core.Graph[string] {
	return core.From([]string{"A", "B", "C", "D"}, [][]int64{
		{0, 1, 4, 3},
		{1, 0, 2, 5},
		{4, 2, 0, 6},
		{3, 5, 6, 0},
	})
}

func TestGraph_InsertVertex_GrowsMatrix(t *testing.T) {
	g := core.New[string]()
	require.True(t, g.IsSquared(), "empty graph is trivially square")

	i := g.InsertVertex("A")
	j := g.InsertVertex("B")
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
	assert.Equal(t, 2, g.NumVertices())
	assert.True(t, g.IsSquared())

	// New cells start at zero (no edge).
	w, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	assert.Zero(t, w)

	// Duplicate labels are allowed and get distinct indices.
	k := g.InsertVertex("A")
	assert.Equal(t, 2, k)
	assert.Equal(t, []string{"A", "B", "A"}, g.Vertices())
}

func TestGraph_RemoveVertex_DropsRowAndColumn(t *testing.T) {
	g := square4()

	require.NoError(t, g.RemoveVertex(1)) // drop "B"

	assert.Equal(t, []string{"A", "C", "D"}, g.Vertices())
	assert.True(t, g.IsSquared())
	assert.Equal(t, [][]int64{
		{0, 4, 3},
		{4, 0, 6},
		{3, 6, 0},
	}, g.Matrix())
}

func TestGraph_RemoveVertex_OutOfRange(t *testing.T) {
	g := square4()
	before := g.Matrix()

	assert.ErrorIs(t, g.RemoveVertex(4), core.ErrOutOfRange)
	assert.ErrorIs(t, g.RemoveVertex(-1), core.ErrOutOfRange)

	// Failure leaves the graph untouched.
	assert.Equal(t, before, g.Matrix())
	assert.Equal(t, 4, g.NumVertices())
}

func TestGraph_InsertEdge_SymmetricAndDirected(t *testing.T) {
	g := core.New[int]()
	for i := 0; i < 3; i++ {
		g.InsertVertex(i)
	}

	require.NoError(t, g.InsertEdge(0, 1, 7, false))
	w, _ := g.EdgeWeight(0, 1)
	assert.EqualValues(t, 7, w)
	w, _ = g.EdgeWeight(1, 0)
	assert.Zero(t, w, "directed write must not mirror")
	assert.False(t, g.IsSymmetric())

	require.NoError(t, g.InsertEdge(1, 2, 3, true))
	w, _ = g.EdgeWeight(2, 1)
	assert.EqualValues(t, 3, w)

	require.NoError(t, g.RemoveEdge(0, 1, false))
	assert.True(t, g.IsSymmetric())
}

func TestGraph_EdgeErrors(t *testing.T) {
	g := square4()
	before := g.Matrix()

	assert.ErrorIs(t, g.InsertEdge(0, 9, 1, true), core.ErrOutOfRange)
	assert.ErrorIs(t, g.InsertEdge(-1, 0, 1, false), core.ErrOutOfRange)
	assert.ErrorIs(t, g.RemoveEdge(5, 0, false), core.ErrOutOfRange)
	_, err := g.EdgeWeight(4, 0)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = g.AdjacentVertices(4)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = g.Vertex(4)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	assert.Equal(t, before, g.Matrix())
}

func TestGraph_AdjacentVertices(t *testing.T) {
	g := core.From([]int{0, 1, 2, 3}, [][]int64{
		{0, 2, 0, 1},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
	})

	adj, err := g.AdjacentVertices(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, adj)

	adj, err = g.AdjacentVertices(2)
	require.NoError(t, err)
	assert.Empty(t, adj)
}

func TestGraph_Predicates(t *testing.T) {
	assert.True(t, square4().IsSquared())
	assert.True(t, square4().IsSymmetric())

	ragged := core.From([]int{0, 1}, [][]int64{{0, 1}, {1}})
	assert.False(t, ragged.IsSquared())
	assert.False(t, ragged.IsSymmetric(), "non-square is never symmetric")

	short := core.From([]int{0, 1, 2}, [][]int64{{0, 1, 1}, {1, 0, 1}})
	assert.False(t, short.IsSquared(), "row count must equal n")

	_, err := core.NewSquare([]int{0, 1}, [][]int64{{0, 1}, {1}})
	assert.ErrorIs(t, err, core.ErrNotSquare)
}

func TestGraph_DegreeAndOddVertices(t *testing.T) {
	// Path 0-1-2-3: endpoints have degree 1, inner vertices degree 2.
	g := core.From([]int{0, 1, 2, 3}, [][]int64{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	})

	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.Equal(t, []int{0, 3}, g.OddDegreeVertices())

	_, err = g.Degree(9)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestGraph_RouteCost(t *testing.T) {
	g := square4()

	cost, err := g.RouteCost([]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.EqualValues(t, 1+2+6+3, cost)

	_, err = g.RouteCost(nil)
	assert.ErrorIs(t, err, core.ErrEmptyRoute)

	_, err = g.RouteCost([]int{0, 7})
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	ragged := core.From([]int{0, 1}, [][]int64{{0, 1}, {1}})
	_, err = ragged.RouteCost([]int{0, 1})
	assert.ErrorIs(t, err, core.ErrNotSquare)
}

// Rotating or reversing a route must not change its cost on a symmetric graph.
func TestGraph_RouteCost_RotationReflectionInvariant(t *testing.T) {
	g := core.From([]int{0, 1, 2, 3, 4}, [][]int64{
		{0, 3, 8, 2, 7},
		{3, 0, 4, 9, 1},
		{8, 4, 0, 5, 6},
		{2, 9, 5, 0, 11},
		{7, 1, 6, 11, 0},
	})
	route := []int{0, 3, 2, 1, 4}
	base, err := g.RouteCost(route)
	require.NoError(t, err)

	for shift := 1; shift < len(route); shift++ {
		rot := append(append([]int(nil), route[shift:]...), route[:shift]...)
		c, err := g.RouteCost(rot)
		require.NoError(t, err)
		assert.Equal(t, base, c, "rotation by %d", shift)
	}

	rev := make([]int, len(route))
	for i, v := range route {
		rev[len(route)-1-i] = v
	}
	c, err := g.RouteCost(rev)
	require.NoError(t, err)
	assert.Equal(t, base, c)
}

func TestGraph_HasNegativeWeight(t *testing.T) {
	_, neg := square4().HasNegativeWeight()
	assert.False(t, neg)

	g := core.From([]int{0, 1}, [][]int64{{0, 2}, {-3, 0}})
	e, neg := g.HasNegativeWeight()
	require.True(t, neg)
	assert.Equal(t, core.Edge{Src: 1, Dst: 0, Weight: -3}, e)
}
