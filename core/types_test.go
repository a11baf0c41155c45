// Package core_test verifies construction, copy and union semantics.
package core_test

import (
	"testing"

	"github.com/katalvlaran/salesman/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// From must deep-copy: later edits to the caller's matrix do not leak in.
func TestFrom_NoAliasing(t *testing.T) {
	m := [][]int64{{0, 1}, {1, 0}}
	g := core.From([]string{"x", "y"}, m)

	m[0][1] = 99
	w, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, w)

	out := g.Matrix()
	out[1][0] = 42
	w, _ = g.EdgeWeight(1, 0)
	assert.EqualValues(t, 1, w, "Matrix must return a copy")
}

func TestClone_Independent(t *testing.T) {
	g := square4()
	c := g.Clone()
	require.NoError(t, c.InsertEdge(0, 1, 50, true))

	w, _ := g.EdgeWeight(0, 1)
	assert.EqualValues(t, 1, w)
	assert.Equal(t, g.Vertices(), c.Vertices())
}

func TestEmptyClone_SameVerticesNoEdges(t *testing.T) {
	e := square4().EmptyClone()
	assert.Equal(t, 4, e.NumVertices())
	assert.True(t, e.IsSquared())
	assert.Empty(t, e.Edges(false))
}

func TestEdges_UndirectedUpperTriangle(t *testing.T) {
	edges := square4().Edges(true)
	require.Len(t, edges, 6)
	assert.Equal(t, core.Edge{Src: 0, Dst: 1, Weight: 1}, edges[0])
	assert.Equal(t, core.Edge{Src: 2, Dst: 3, Weight: 6}, edges[5])

	assert.Len(t, square4().Edges(false), 12)
}

func TestUnion_MergesEdgesAtSharedIndices(t *testing.T) {
	g := core.From([]string{"A", "B", "C"}, [][]int64{
		{0, 5, 0},
		{5, 0, 0},
		{0, 0, 0},
	})
	other := core.From([]string{"A", "C"}, [][]int64{{0, 2}, {0, 0}})

	require.NoError(t, g.Union(other))

	// Labels are not deduplicated; other's 0→1 edge overwrites g's 0→1 and
	// its zero cells leave 1→0 in place.
	assert.Equal(t, []string{"A", "B", "C", "A", "C"}, g.Vertices())
	assert.True(t, g.IsSquared())
	assert.Equal(t, [][]int64{
		{0, 2, 0, 0, 0},
		{5, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}, g.Matrix())
}

func TestUnion_LargerOtherIsOutOfRange(t *testing.T) {
	g := core.From([]string{"A"}, [][]int64{{0}})
	other := core.From([]string{"x", "y"}, [][]int64{{0, 1}, {1, 0}})

	assert.ErrorIs(t, g.Union(other), core.ErrOutOfRange)
	assert.Equal(t, []string{"A"}, g.Vertices())
	assert.Equal(t, [][]int64{{0}}, g.Matrix())
}

func TestUnion_NotSquareLeavesReceiverUnchanged(t *testing.T) {
	g := square4()
	bad := core.From([]string{"x", "y"}, [][]int64{{0}, {0, 0}})

	assert.ErrorIs(t, g.Union(bad), core.ErrNotSquare)
	assert.Equal(t, 4, g.NumVertices())
}

func TestUnion_Self(t *testing.T) {
	g := core.From([]int{1}, [][]int64{{0}})
	require.NoError(t, g.Union(g))
	assert.Equal(t, []int{1, 1}, g.Vertices())
}

func TestIndexOf(t *testing.T) {
	g := square4()
	i, ok := g.IndexOf("C")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = g.IndexOf("Z")
	assert.False(t, ok)
}
