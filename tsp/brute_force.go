// Package tsp - exhaustive search over all routes anchored at vertex 0.
//
// BruteForce enumerates the (n-1)! orderings of 1..n-1 lazily (see
// permutations.go), prices each closed cycle and keeps the cheapest feasible
// one. A route that uses a missing edge is skipped.
//
// Determinism:
//   - Routes are visited in lexicographic order and only a strictly cheaper
//     route replaces the incumbent, so ties resolve to the lexicographically
//     smallest route. The parallel mode partitions by the second vertex and
//     merges partitions in ascending order, giving the identical answer.
//
// Complexity: O(n!·n) time, O(n) memory per worker.
package tsp

import (
	"context"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/salesman/core"
)

// cancelCheckMask throttles context checks to once every 1024 iterations.
const cancelCheckMask = 1<<10 - 1

// BruteForce returns the optimal tour by exhaustive enumeration.
//
// Options: WithProgress, WithWorkers, WithoutSizeLimit, WithContext, WithTimeLimit.
//
// Errors:
//   - ErrNilGraph, core.ErrNotSquare, ErrEmptyGraph, core.ErrNegativeWeight.
//   - ErrTooLarge if n > MaxBruteForceVertices and the size limit is on.
//   - ErrNoTour if the graph is not strongly connected or every route uses a missing edge.
//   - ErrTimeLimit or the context error when interrupted.
func BruteForce[V comparable](g *core.Graph[V], opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	w, err := checkGraph(g, false)
	if err != nil {
		return Result{}, err
	}
	n := len(w)
	if cfg.SizeLimit && n > MaxBruteForceVertices {
		return Result{}, ErrTooLarge
	}
	if err = checkStronglyConnected(g); err != nil {
		return Result{}, err
	}

	ctx, cancel := cfg.runContext()
	defer cancel()

	rep := newReporter(cfg)
	var best search
	if cfg.Workers <= 1 || n <= 3 {
		best, err = searchPrefix(ctx, w, Route{0}, rep, cfg.ProgressEvery)
	} else {
		best, err = searchParallel(ctx, w, cfg.Workers, rep, cfg.ProgressEvery)
	}
	if err != nil {
		return Result{}, err
	}
	if !best.found {
		return Result{}, ErrNoTour
	}

	return Result{Route: best.route, Cost: best.cost}, nil
}

// search is the accumulator threaded through the permutation sequence.
type search struct {
	route Route
	cost  int64
	found bool
	iters int64
}

// observe offers one candidate; only a strictly cheaper feasible route wins.
func (s *search) observe(route Route, cost int64, ok bool) {
	s.iters++
	if !ok || (s.found && cost >= s.cost) {
		return
	}
	s.route = append(s.route[:0], route...)
	s.cost = cost
	s.found = true
}

// merge folds other into s, keeping s on ties.
func (s *search) merge(other search) {
	s.iters += other.iters
	if other.found && (!s.found || other.cost < s.cost) {
		s.route = other.route
		s.cost = other.cost
		s.found = true
	}
}

// searchPrefix enumerates every completion of prefix over the vertices not in it.
func searchPrefix(ctx context.Context, w [][]int64, prefix Route, rep *reporter, every int64) (search, error) {
	n := len(w)
	rest := make([]int, 0, n-len(prefix))
	var v int
	for v = 0; v < n; v++ {
		if !slices.Contains(prefix, v) {
			rest = append(rest, v)
		}
	}

	var (
		acc   search
		route = make(Route, n)
		k     = len(prefix)
		cost  int64
		ok    bool
	)
	copy(route, prefix)
	for perm := range permutations(rest) {
		if acc.iters&cancelCheckMask == 0 && ctx.Err() != nil {
			return acc, interrupted(ctx)
		}
		copy(route[k:], perm)
		cost, ok = routeCost(w, route)
		acc.observe(route, cost, ok)
		if every > 0 && acc.iters%every == 0 {
			rep.add(every, acc)
		}
	}

	return acc, nil
}

// searchParallel runs one searchPrefix per second vertex on an errgroup and
// merges the partitions in ascending order.
func searchParallel(ctx context.Context, w [][]int64, workers int, rep *reporter, every int64) (search, error) {
	n := len(w)
	parts := make([]search, n) // parts[s] covers routes starting 0, s
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	var s int
	for s = 1; s < n; s++ {
		second := s
		grp.Go(func() error {
			res, err := searchPrefix(gctx, w, Route{0, second}, rep, every)
			if err != nil {
				return err
			}
			parts[second] = res

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return search{}, err
	}

	var best search
	for s = 1; s < n; s++ {
		best.merge(parts[s])
	}

	return best, nil
}

// reporter serializes progress callbacks across workers.
type reporter struct {
	mu    sync.Mutex
	fn    ProgressFunc
	start time.Time
	iters int64
	best  int64
	found bool
}

func newReporter(cfg Options) *reporter {
	return &reporter{fn: cfg.Progress, start: time.Now()}
}

// add accounts delta more iterations and publishes the best known cost.
func (r *reporter) add(delta int64, local search) {
	if r.fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.iters += delta
	if local.found && (!r.found || local.cost < r.best) {
		r.best = local.cost
		r.found = true
	}
	r.fn(Progress{
		Iteration: r.iters,
		Elapsed:   time.Since(r.start),
		BestCost:  r.best,
		HasBest:   r.found,
	})
}
