// Package tsp - shared types, sentinel errors and limits.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from this file,
//     plus core sentinels for matrix-shape failures.
//   - Routes are open: n distinct vertex indices, the return edge is implicit.
package tsp

import (
	"errors"
	"time"
)

// Sentinel errors for TSP solvers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrEmptyGraph indicates a graph with no vertices.
	ErrEmptyGraph = errors.New("tsp: graph has no vertices")

	// ErrNoTour indicates that no Hamiltonian cycle over existing edges was found.
	ErrNoTour = errors.New("tsp: no tour over existing edges")

	// ErrTooLarge indicates an instance above an exact solver's practical ceiling.
	ErrTooLarge = errors.New("tsp: instance too large for exact search")

	// ErrTimeLimit indicates that the configured time budget ran out.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrInvalidRoute indicates a route that is not a permutation of 0..n-1.
	ErrInvalidRoute = errors.New("tsp: invalid route")

	// ErrUnknownAlgorithm indicates an unrecognised algorithm name.
	ErrUnknownAlgorithm = errors.New("tsp: unknown algorithm")

	// ErrUnknownInitialTour indicates an unrecognised initial-tour name.
	ErrUnknownInitialTour = errors.New("tsp: unknown initial tour")

	// ErrBadOption indicates an out-of-range option value.
	ErrBadOption = errors.New("tsp: invalid option")
)

// MaxBruteForceVertices is the largest n BruteForce accepts by default:
// (n-1)! routes at n=11 is 3.6M, at n=12 already 40M.
const MaxBruteForceVertices = 11

// MaxHeldKarpVertices is the largest n HeldKarp accepts; its tables hold n·2^n entries.
const MaxHeldKarpVertices = 20

// DefaultProgressEvery is the default number of iterations between progress reports.
const DefaultProgressEvery = 10000

// Route is an open sequence of distinct vertex indices; the edge from the last
// vertex back to the first closes the cycle.
type Route []int

// Result holds the outcome of a TSP solver.
type Result struct {
	// Route starts at vertex 0 for every solver in this package.
	Route Route

	// Cost is the total weight of the closed cycle.
	Cost int64
}

// Progress is a snapshot passed to a ProgressFunc.
type Progress struct {
	Iteration int64         // permutations tried (brute force) or moves applied (2-opt)
	Elapsed   time.Duration // since the solver started
	BestCost  int64         // best feasible cost so far; valid when HasBest
	HasBest   bool
}

// ProgressFunc receives periodic progress snapshots. Calls are serialized.
type ProgressFunc func(Progress)
