// Package tsp - 2-opt local search.
//
// TwoOpt repeatedly reverses a segment route[i:j] (1 ≤ i, i+2 ≤ j ≤ n) when
// doing so strictly lowers the cycle cost. Vertex route[0] never moves.
//
// With a=route[i-1], b=route[i], c=route[j-1], d=route[j mod n]:
//   - Symmetric case: Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), O(1).
//   - Asymmetric case: the reversed interior changes direction too, so Δ also
//     includes Σ w(x_{k+1},x_k) − w(x_k,x_{k+1}) over the segment, O(j−i).
//
// Policies:
//   - Best improvement (default): each pass scans every (i, j) in fixed order
//     and applies the most negative Δ (first one on ties).
//   - First improvement (WithFirstImprovement): apply the first improving
//     move and start the next pass.
//
// A pass with no strictly improving move ends the search. Candidates that
// would use a missing edge are rejected.
//
// Complexity: O(n²) (symmetric) or O(n³) (asymmetric) per pass.
package tsp

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/salesman/core"
)

// deadlineCheckMask throttles context checks inside a pass to every 2048 candidates.
const deadlineCheckMask = 1<<11 - 1

// TwoOpt improves initial by 2-opt moves. A nil initial starts from the
// identity route 0, 1, ..., n-1. The input route is not mutated.
//
// Options: WithFirstImprovement, WithMaxMoves, WithTimeLimit, WithContext, WithProgress.
//
// Errors:
//   - ErrNilGraph, core.ErrNotSquare, ErrEmptyGraph, core.ErrNegativeWeight.
//   - ErrInvalidRoute if initial is not a permutation of 0..n-1.
//   - ErrNoTour if initial uses a missing edge.
//   - ErrTimeLimit or the context error when interrupted; the returned Result
//     then holds the best route reached so far.
func TwoOpt[V comparable](g *core.Graph[V], initial Route, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	w, err := checkGraph(g, false)
	if err != nil {
		return Result{}, err
	}
	n := len(w)

	var cur Route
	if initial == nil {
		cur = identityRoute(n)
	} else {
		if err = ValidateRoute(initial, n); err != nil {
			return Result{}, err
		}
		cur = slices.Clone(initial)
	}
	cost, ok := routeCost(w, cur)
	if !ok {
		return Result{}, fmt.Errorf("%w: initial route uses a missing edge", ErrNoTour)
	}

	ctx, cancel := cfg.runContext()
	defer cancel()

	o := &twoOpt{
		w:         w,
		symmetric: g.IsSymmetric(),
		first:     cfg.FirstImprovement,
	}
	start := time.Now()

	var moves int
	for cfg.MaxMoves == 0 || moves < cfg.MaxMoves {
		if err = interrupted(ctx); err != nil {
			return Result{Route: cur, Cost: cost}, err
		}
		i, j, delta, found, stop := o.scan(cur, func(step int) bool {
			return step&deadlineCheckMask == 0 && ctx.Err() != nil
		})
		if stop {
			return Result{Route: cur, Cost: cost}, interrupted(ctx)
		}
		if !found {
			break
		}
		reverseSegment(cur, i, j)
		cost += delta
		moves++
		if cfg.Progress != nil {
			cfg.Progress(Progress{Iteration: int64(moves), Elapsed: time.Since(start), BestCost: cost, HasBest: true})
		}
	}

	return Result{Route: cur, Cost: cost}, nil
}

// twoOpt holds the per-run configuration of the move scanner.
type twoOpt struct {
	w         [][]int64
	symmetric bool
	first     bool
}

// scan looks for an improving reversal. It returns the move bounds, its
// delta, whether one was found, and whether abort() requested a stop.
func (o *twoOpt) scan(route Route, abort func(step int) bool) (bi, bj int, best int64, found, stop bool) {
	n := len(route)
	var (
		i, j  int
		delta int64
		ok    bool
		step  int
	)
	for i = 1; i <= n-2; i++ {
		for j = i + 2; j <= n; j++ {
			step++
			if abort(step) {
				return 0, 0, 0, false, true
			}
			delta, ok = o.delta(route, i, j)
			if !ok || delta >= 0 {
				continue
			}
			if !found || delta < best {
				bi, bj, best, found = i, j, delta, true
				if o.first {
					return bi, bj, best, true, false
				}
			}
		}
	}

	return bi, bj, best, found, false
}

// delta prices reversing route[i:j]; ok is false when a new edge is missing.
func (o *twoOpt) delta(route Route, i, j int) (int64, bool) {
	n := len(route)
	a, b := route[i-1], route[i]
	c, d := route[j-1], route[j%n]
	w := o.w

	if w[a][c] <= 0 || w[b][d] <= 0 {
		return 0, false
	}
	delta := w[a][c] + w[b][d] - w[a][b] - w[c][d]
	if o.symmetric {
		return delta, true
	}

	var k int
	for k = i; k < j-1; k++ {
		x, y := route[k], route[k+1]
		if w[y][x] <= 0 {
			return 0, false
		}
		delta += w[y][x] - w[x][y]
	}

	return delta, true
}
