package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/matching"
	"github.com/katalvlaran/salesman/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds a symmetric graph with labels 0..n-1 from the upper triangle of m.
func square(m [][]int64) *core.Graph[int] {
	labels := make([]int, len(m))
	for i := range labels {
		labels[i] = i
	}

	return core.From(labels, m)
}

// trap: greedy pairs 0-1 (1) and is left with 2-3 (100); exact takes 0-2, 1-3 (2+2).
func trap() *core.Graph[int] {
	return square([][]int64{
		{0, 1, 2, 50},
		{1, 0, 50, 2},
		{2, 50, 0, 100},
		{50, 2, 100, 0},
	})
}

func TestMinWeightPerfect_ExactBeatsGreedy(t *testing.T) {
	g := trap()
	all := []int{0, 1, 2, 3}

	exact, err := matching.MinWeightPerfect(g, all)
	require.NoError(t, err)
	assert.True(t, exact.Exact)
	assert.EqualValues(t, 4, exact.Weight)
	assert.Equal(t, [][2]int{{0, 2}, {1, 3}}, exact.Pairs)

	greedy, err := matching.MinWeightPerfect(g, all, matching.WithAlgorithm(matching.AlgorithmGreedy))
	require.NoError(t, err)
	assert.False(t, greedy.Exact)
	assert.EqualValues(t, 101, greedy.Weight)
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, greedy.Pairs)
}

func TestMinWeightPerfect_Errors(t *testing.T) {
	g := trap()

	_, err := matching.MinWeightPerfect(g, []int{0, 1, 2})
	assert.ErrorIs(t, err, matching.ErrOddVertexCount)

	_, err = matching.MinWeightPerfect(g, []int{0, 4})
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	_, err = matching.MinWeightPerfect(g, []int{1, 1})
	assert.ErrorIs(t, err, matching.ErrDuplicateVertex)

	_, err = matching.MinWeightPerfect[int](nil, nil)
	assert.ErrorIs(t, err, matching.ErrNilGraph)

	asym := square([][]int64{{0, 1}, {2, 0}})
	_, err = matching.MinWeightPerfect(asym, []int{0, 1})
	assert.ErrorIs(t, err, core.ErrNotSymmetric)

	_, err = matching.MinWeightPerfect(g, []int{0, 1}, matching.WithAlgorithm(matching.Algorithm(9)))
	assert.ErrorIs(t, err, matching.ErrUnknownAlgorithm)
}

func TestMinWeightPerfect_Empty(t *testing.T) {
	res, err := matching.MinWeightPerfect(trap(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs)
	assert.Zero(t, res.Weight)
}

func TestMinWeightPerfect_MissingEdgesDisconnected(t *testing.T) {
	// 0 and 1 only connect to each other; 2 and 3 have no edge at all.
	g := square([][]int64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	_, err := matching.MinWeightPerfect(g, []int{0, 1, 2, 3})
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = matching.MinWeightPerfect(g, []int{0, 1, 2, 3}, matching.WithAlgorithm(matching.AlgorithmGreedy))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestMinWeightPerfect_SubsetTooLarge(t *testing.T) {
	n := matching.MaxExactVertices + 2
	m := make([][]int64, n)
	subset := make([]int, n)
	for i := range m {
		subset[i] = i
		m[i] = make([]int64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = 1
			}
		}
	}
	g := square(m)

	_, err := matching.MinWeightPerfect(g, subset)
	assert.ErrorIs(t, err, matching.ErrSubsetTooLarge)

	res, err := matching.MinWeightPerfect(g, subset, matching.WithAlgorithm(matching.AlgorithmGreedy))
	require.NoError(t, err)
	assert.Len(t, res.Pairs, n/2)
}

// bruteMatch enumerates every perfect pairing.
func bruteMatch(w [][]int64, verts []int) int64 {
	if len(verts) == 0 {
		return 0
	}
	best := int64(-1)
	u := verts[0]
	for k := 1; k < len(verts); k++ {
		v := verts[k]
		if w[u][v] <= 0 {
			continue
		}
		rest := make([]int, 0, len(verts)-2)
		rest = append(rest, verts[1:k]...)
		rest = append(rest, verts[k+1:]...)
		sub := bruteMatch(w, rest)
		if sub < 0 {
			continue
		}
		if c := w[u][v] + sub; best < 0 || c < best {
			best = c
		}
	}

	return best
}

func TestMinWeightPerfect_ExactMatchesEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		n := 2 * (1 + rng.Intn(5)) // 2..10
		m := make([][]int64, n)
		for i := range m {
			m[i] = make([]int64, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := int64(1 + rng.Intn(20))
				m[i][j], m[j][i] = w, w
			}
		}
		subset := rng.Perm(n)

		res, err := matching.MinWeightPerfect(square(m), subset)
		require.NoError(t, err)
		require.Equal(t, bruteMatch(m, subset), res.Weight, "trial %d", trial)

		// Every vertex is covered exactly once and the weight adds up.
		covered := make(map[int]int)
		var sum int64
		for _, p := range res.Pairs {
			covered[p[0]]++
			covered[p[1]]++
			sum += m[p[0]][p[1]]
		}
		require.Len(t, covered, n)
		require.Equal(t, res.Weight, sum)
	}
}

func TestParseAlgorithm(t *testing.T) {
	a, err := matching.ParseAlgorithm("Greedy")
	require.NoError(t, err)
	assert.Equal(t, matching.AlgorithmGreedy, a)
	assert.Equal(t, "exact", matching.AlgorithmExact.String())

	_, err = matching.ParseAlgorithm("blossom")
	assert.ErrorIs(t, err, matching.ErrUnknownAlgorithm)
}

func TestUnion_TreeAndMatchingHaveEvenDegrees(t *testing.T) {
	g := square([][]int64{
		{0, 1, 4, 3},
		{1, 0, 2, 5},
		{4, 2, 0, 6},
		{3, 5, 6, 0},
	})
	tree, _, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	odd := tree.OddDegreeVertices()
	require.Equal(t, []int{2, 3}, odd)

	res, err := matching.MinWeightPerfect(g, odd)
	require.NoError(t, err)
	matched := g.EmptyClone()
	for _, p := range res.Pairs {
		w, err := g.EdgeWeight(p[0], p[1])
		require.NoError(t, err)
		require.NoError(t, matched.InsertEdge(p[0], p[1], w, true))
	}

	require.NoError(t, tree.Union(matched))
	assert.Equal(t, 8, tree.NumVertices())
	assert.Empty(t, tree.OddDegreeVertices())
}
