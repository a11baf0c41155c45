// Package tsp - nearest-neighbor construction heuristic.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// NearestNeighbor builds a route greedily: start at vertex 0 and repeatedly
// move to the cheapest unvisited vertex reachable by an existing edge, ties
// going to the lowest index.
//
// Errors:
//   - ErrNilGraph, core.ErrNotSquare, ErrEmptyGraph, core.ErrNegativeWeight.
//   - ErrNoTour if the walk gets stuck or the closing edge back to 0 is missing.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor[V comparable](g *core.Graph[V], opts ...Option) (Result, error) {
	if _, err := buildOptions(opts); err != nil {
		return Result{}, err
	}
	w, err := checkGraph(g, false)
	if err != nil {
		return Result{}, err
	}

	return nearestFrom(w, 0)
}

// nearestFrom runs the greedy walk on a validated matrix.
func nearestFrom(w [][]int64, start int) (Result, error) {
	n := len(w)
	visited := make([]bool, n)
	route := make(Route, 0, n)
	route = append(route, start)
	visited[start] = true

	var (
		cur   = start
		next  int
		bestW int64
		v     int
		x     int64
	)
	for len(route) < n {
		next, bestW = -1, 0
		for v, x = range w[cur] {
			if visited[v] || x <= 0 {
				continue
			}
			if next < 0 || x < bestW {
				next, bestW = v, x
			}
		}
		if next < 0 {
			return Result{}, fmt.Errorf("%w: stuck at vertex %d after %d of %d", ErrNoTour, cur, len(route), n)
		}
		visited[next] = true
		route = append(route, next)
		cur = next
	}

	cost, ok := routeCost(w, route)
	if !ok {
		return Result{}, fmt.Errorf("%w: no edge back to %d", ErrNoTour, start)
	}

	return Result{Route: route, Cost: cost}, nil
}
