package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/dijkstra"
)

// Closure is the metric closure of a sparse graph: Graph holds the
// shortest-path distance between every ordered pair, so every solver sees a
// complete instance. Expand maps a tour on Graph back to a closed walk over
// the original edges.
type Closure[V comparable] struct {
	Graph *core.Graph[V]

	// prev[s] is the Dijkstra predecessor slice rooted at s.
	prev [][]int
}

// MetricClosure runs Dijkstra from every vertex of g and returns the
// complete distance graph with the same labels.
//
// Errors:
//   - ErrNilGraph, core.ErrNotSquare, ErrEmptyGraph, core.ErrNegativeWeight.
//   - ErrNoTour if some vertex cannot reach another.
//
// Complexity: O(n³ log n).
func MetricClosure[V comparable](g *core.Graph[V]) (*Closure[V], error) {
	w, err := checkGraph(g, false)
	if err != nil {
		return nil, err
	}
	n := len(w)
	m := make([][]int64, n)
	prev := make([][]int, n)
	var (
		s, t int
		dist []int64
	)
	for s = 0; s < n; s++ {
		dist, prev[s], err = dijkstra.Distances(g, s)
		if err != nil {
			return nil, err
		}
		m[s] = make([]int64, n)
		for t = 0; t < n; t++ {
			if t == s {
				continue
			}
			if dist[t] == dijkstra.Unreachable {
				return nil, fmt.Errorf("%w: %d cannot reach %d: %w", ErrNoTour, s, t, dijkstra.ErrUnreachable)
			}
			m[s][t] = dist[t]
		}
	}

	return &Closure[V]{Graph: core.From(g.Vertices(), m), prev: prev}, nil
}

// Expand replaces every tour edge with its shortest path in the original
// graph. The walk is closed (first == last) and its cost over the original
// edges equals the tour cost on Graph. A one-vertex route expands to itself.
//
// Returns ErrInvalidRoute if route is not a permutation of the closure's vertices.
func (c *Closure[V]) Expand(route Route) ([]int, error) {
	n := len(c.prev)
	if err := ValidateRoute(route, n); err != nil {
		return nil, err
	}
	if n == 1 {
		return []int{route[0]}, nil
	}

	walk := []int{route[0]}
	var i int
	for i = 0; i < n; i++ {
		walk = append(walk, c.path(route[i], route[(i+1)%n])...)
	}

	return walk, nil
}

// path returns the shortest path from s to t without s itself.
func (c *Closure[V]) path(s, t int) []int {
	var (
		rev []int
		v   int
	)
	for v = t; v != s; v = c.prev[s][v] {
		rev = append(rev, v)
	}
	out := make([]int, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}
