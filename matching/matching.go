// File: matching.go
// Role: Minimum-weight perfect matching on a subset of a dense graph.
//
// Determinism:
//   - Both solvers scan candidates in subset order and keep the first
//     strictly better choice, so ties resolve identically across runs.
package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/prim_kruskal"
)

// MinWeightPerfect pairs every vertex of subset with exactly one other vertex
// of subset, minimising the total weight of the chosen edges.
//
// A weight of zero between two distinct vertices is a missing edge and can
// never be chosen. When no feasible pairing exists the error wraps
// prim_kruskal.ErrDisconnected.
//
// Errors (in order):
//   - ErrNilGraph; core.ErrNotSquare; core.ErrNotSymmetric; core.ErrNegativeWeight.
//   - ErrOddVertexCount if len(subset) is odd.
//   - core.ErrOutOfRange for an invalid index; ErrDuplicateVertex on repeats.
//   - ErrSubsetTooLarge for AlgorithmExact above MaxExactVertices.
//   - ErrUnknownAlgorithm for an unrecognised Algorithm value.
//
// Complexity:
//   - AlgorithmExact:  O(2^k · k) time, O(2^k) memory, k = len(subset).
//   - AlgorithmGreedy: O(k²) time.
func MinWeightPerfect[V comparable](g *core.Graph[V], subset []int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	w, err := validate(g, subset)
	if err != nil {
		return Result{}, err
	}
	if len(subset) == 0 {
		return Result{Exact: true}, nil
	}

	var res Result
	switch cfg.Algorithm {
	case AlgorithmExact:
		if len(subset) > MaxExactVertices {
			return Result{}, fmt.Errorf("%w: %d > %d", ErrSubsetTooLarge, len(subset), MaxExactVertices)
		}
		res, err = exactMatch(subset, w)
	case AlgorithmGreedy:
		res, err = greedyMatch(subset, w)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, cfg.Algorithm)
	}
	if err != nil {
		return Result{}, err
	}
	sortPairs(res.Pairs)

	return res, nil
}

// validate checks the graph and the subset and returns a matrix snapshot.
func validate[V comparable](g *core.Graph[V], subset []int) ([][]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.IsSquared() {
		return nil, core.ErrNotSquare
	}
	if !g.IsSymmetric() {
		return nil, core.ErrNotSymmetric
	}
	if e, neg := g.HasNegativeWeight(); neg {
		return nil, fmt.Errorf("%w: edge %d-%d weight=%d", core.ErrNegativeWeight, e.Src, e.Dst, e.Weight)
	}
	if len(subset)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddVertexCount, len(subset))
	}

	n := g.NumVertices()
	seen := make(map[int]struct{}, len(subset))
	for i, v := range subset {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: subset[%d]=%d", core.ErrOutOfRange, i, v)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateVertex, v)
		}
		seen[v] = struct{}{}
	}

	return g.Matrix(), nil
}

// exactMatch solves the pairing problem by dynamic programming over bitmasks
// of already-matched subset positions. From each reachable mask the lowest
// unmatched position is paired with every later unmatched position.
func exactMatch(subset []int, w [][]int64) (Result, error) {
	k := len(subset)
	full := 1<<k - 1
	const inf = math.MaxInt64

	cost := make([]int64, full+1)
	pickI := make([]int8, full+1)
	pickJ := make([]int8, full+1)
	var mask int
	for mask = 1; mask <= full; mask++ {
		cost[mask] = inf
	}

	var (
		i, j   int
		next   int
		weight int64
		cand   int64
	)
	for mask = 0; mask < full; mask++ {
		if cost[mask] == inf {
			continue
		}
		// Lowest unmatched position.
		for i = 0; mask&(1<<i) != 0; i++ {
		}
		for j = i + 1; j < k; j++ {
			if mask&(1<<j) != 0 {
				continue
			}
			weight = w[subset[i]][subset[j]]
			if weight <= 0 {
				continue
			}
			next = mask | 1<<i | 1<<j
			cand = cost[mask] + weight
			if cand < cost[next] {
				cost[next] = cand
				pickI[next] = int8(i)
				pickJ[next] = int8(j)
			}
		}
	}

	if cost[full] == inf {
		return Result{}, fmt.Errorf("%w: no perfect matching over %d vertices", prim_kruskal.ErrDisconnected, k)
	}

	pairs := make([][2]int, 0, k/2)
	for mask = full; mask != 0; {
		i, j = int(pickI[mask]), int(pickJ[mask])
		pairs = append(pairs, orderedPair(subset[i], subset[j]))
		mask &^= 1<<i | 1<<j
	}

	return Result{Pairs: pairs, Weight: cost[full], Exact: true}, nil
}

// greedyMatch repeatedly takes the first remaining vertex and pairs it with
// its nearest remaining partner (ties to the earliest).
func greedyMatch(subset []int, w [][]int64) (Result, error) {
	remaining := append([]int(nil), subset...)
	pairs := make([][2]int, 0, len(subset)/2)
	var (
		total   int64
		u, v    int
		bestIdx int
		bestW   int64
		i       int
	)
	for len(remaining) > 1 {
		u = remaining[0]
		remaining = remaining[1:]

		bestIdx, bestW = -1, math.MaxInt64
		for i, v = range remaining {
			if d := w[u][v]; d > 0 && d < bestW {
				bestIdx, bestW = i, d
			}
		}
		if bestIdx < 0 {
			return Result{}, fmt.Errorf("%w: vertex %d has no available partner", prim_kruskal.ErrDisconnected, u)
		}

		v = remaining[bestIdx]
		pairs = append(pairs, orderedPair(u, v))
		total += bestW
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return Result{Pairs: pairs, Weight: total, Exact: false}, nil
}

func orderedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

func sortPairs(pairs [][2]int) {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
}
