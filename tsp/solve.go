// Package tsp - unified dispatcher for TSP solvers.
//
// Solve maps an Algorithm onto the matching solver so that callers (the CLI in
// particular) select algorithms by name without a switch of their own.
package tsp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/salesman/core"
)

// Algorithm names a solver reachable through Solve.
type Algorithm int

const (
	// AlgorithmBruteForce is exhaustive search ("exact").
	AlgorithmBruteForce Algorithm = iota
	// AlgorithmTwoOpt is 2-opt local search ("2opt").
	AlgorithmTwoOpt
	// AlgorithmNearestNeighbor is the greedy construction ("nn").
	AlgorithmNearestNeighbor
	// AlgorithmChristofides is the MST + matching approximation ("christofides").
	AlgorithmChristofides
	// AlgorithmHeldKarp is the dynamic-programming exact solver ("held-karp").
	AlgorithmHeldKarp
)

// algorithmNames is indexed by Algorithm.
var algorithmNames = [...]string{
	AlgorithmBruteForce:      "exact",
	AlgorithmTwoOpt:          "2opt",
	AlgorithmNearestNeighbor: "nn",
	AlgorithmChristofides:    "christofides",
	AlgorithmHeldKarp:        "held-karp",
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmBruteForce,
		AlgorithmTwoOpt,
		AlgorithmNearestNeighbor,
		AlgorithmChristofides,
		AlgorithmHeldKarp,
	}
}

// String returns the name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a case-insensitive name onto an Algorithm.
// "bruteforce", "two-opt", "nearest" and "heldkarp" are accepted as aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "bruteforce", "brute-force":
		return AlgorithmBruteForce, nil
	case "2opt", "2-opt", "two-opt":
		return AlgorithmTwoOpt, nil
	case "nn", "nearest":
		return AlgorithmNearestNeighbor, nil
	case "christofides":
		return AlgorithmChristofides, nil
	case "held-karp", "heldkarp":
		return AlgorithmHeldKarp, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Solve runs algo on g.
//
// For AlgorithmTwoOpt the starting route follows WithInitialTour: the
// identity route by default, the NearestNeighbor route, or RandomRoute(n, Seed).
//
// Errors: those of the selected solver, or ErrUnknownAlgorithm.
func Solve[V comparable](g *core.Graph[V], algo Algorithm, opts ...Option) (Result, error) {
	switch algo {
	case AlgorithmBruteForce:
		return BruteForce(g, opts...)
	case AlgorithmNearestNeighbor:
		return NearestNeighbor(g, opts...)
	case AlgorithmChristofides:
		return Christofides(g, opts...)
	case AlgorithmHeldKarp:
		return HeldKarp(g, opts...)
	case AlgorithmTwoOpt:
		initial, err := initialRoute(g, opts)
		if err != nil {
			return Result{}, err
		}

		return TwoOpt(g, initial, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}
}

// initialRoute resolves the 2-opt starting route; nil means identity.
func initialRoute[V comparable](g *core.Graph[V], opts []Option) (Route, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	switch cfg.Initial {
	case InitialIdentity:
		return nil, nil
	case InitialNearestNeighbor:
		res, err := NearestNeighbor(g, opts...)
		if err != nil {
			return nil, fmt.Errorf("initial route: %w", err)
		}

		return res.Route, nil
	case InitialRandom:
		if _, err = checkGraph(g, false); err != nil {
			return nil, err
		}

		return RandomRoute(g.NumVertices(), cfg.Seed), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownInitialTour, cfg.Initial)
	}
}
