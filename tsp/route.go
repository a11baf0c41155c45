// Package tsp - route utilities shared by exact/heuristic solvers.
//
// This file contains compact helpers that operate purely on route structure
// (index sequences), plus the matrix-level feasibility check:
//   - ValidateRoute: verify a permutation over {0..n-1}.
//   - RotateToStart: cyclic shift so the route begins at a given vertex.
//   - Reverse: opposite direction, same start.
//   - Canonical: unique representative under rotation and reflection.
//   - Equal: equality modulo rotation and reflection.
//   - reverseSegment: in-place [i, j) reversal (2-opt core).
//
// Design:
//   - O(n) time for every helper; inputs are never mutated except by reverseSegment.
package tsp

import (
	"fmt"
	"slices"
)

// ValidateRoute checks that route is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(route Route, n int) error {
	if len(route) != n || n <= 0 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidRoute, len(route), n)
	}
	seen := make([]bool, n)
	var (
		i, v int
	)
	for i, v = range route {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: route[%d]=%d out of range", ErrInvalidRoute, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated", ErrInvalidRoute, v)
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a copy of route shifted so that out[0] == start.
//
// Errors:
//   - ErrInvalidRoute if start does not occur in route.
func RotateToStart(route Route, start int) (Route, error) {
	pivot := slices.Index(route, start)
	if pivot < 0 {
		return nil, fmt.Errorf("%w: start %d not in route", ErrInvalidRoute, start)
	}
	n := len(route)
	out := make(Route, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = route[(pivot+i)%n]
	}

	return out, nil
}

// Reverse returns the same cycle walked in the opposite direction, keeping route[0] first.
func Reverse(route Route) Route {
	out := slices.Clone(route)
	if len(out) > 2 {
		slices.Reverse(out[1:])
	}

	return out
}

// Canonical returns the unique representative of route's cycle: rotated to
// its smallest vertex and oriented so that out[1] < out[n-1].
func Canonical(route Route) Route {
	if len(route) == 0 {
		return Route{}
	}
	out, _ := RotateToStart(route, slices.Min(route))
	if n := len(out); n > 2 && out[1] > out[n-1] {
		slices.Reverse(out[1:])
	}

	return out
}

// Equal reports whether a and b describe the same undirected cycle.
func Equal(a, b Route) bool {
	if len(a) != len(b) {
		return false
	}

	return slices.Equal(Canonical(a), Canonical(b))
}

// identityRoute returns 0, 1, ..., n-1.
func identityRoute(n int) Route {
	r := make(Route, n)
	for i := range r {
		r[i] = i
	}

	return r
}

// reverseSegment reverses route[i:j] in place.
func reverseSegment(route Route, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
}

// routeCost sums the closed cycle over w and reports false when any edge is
// missing (zero between distinct vertices).
func routeCost(w [][]int64, route Route) (int64, bool) {
	n := len(route)
	if n <= 1 {
		return 0, true
	}
	var (
		cost int64
		i    int
		x    int64
	)
	for i = 0; i < n; i++ {
		x = w[route[i]][route[(i+1)%n]]
		if x <= 0 {
			return 0, false
		}
		cost += x
	}

	return cost, true
}
