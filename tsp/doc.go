// Package tsp provides Travelling Salesman Problem solvers over core.Graph.
//
// Every solver reads the graph's dense weight matrix once (a weight of 0
// between distinct vertices means "no edge"), works on its private snapshot and
// returns a Result whose Route starts at vertex 0. The closing edge from the
// last vertex back to 0 is implicit.
//
//   - BruteForce: exhaustive search over (n-1)! routes, lazily enumerated.
//     Exact; ceiling MaxBruteForceVertices unless WithoutSizeLimit.
//     WithWorkers(k) splits the search by second vertex over an errgroup.
//     Complexity: O(n!·n).
//
//   - HeldKarp: exact dynamic programming.
//     Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory; n ≤ MaxHeldKarpVertices.
//
//   - NearestNeighbor: greedy construction, ties to the lowest index.
//     Complexity: O(n²).
//
//   - TwoOpt: segment-reversal local search (best or first improvement).
//     Complexity: O(n²) per pass on symmetric graphs.
//
//   - Christofides: MST + minimum-weight perfect matching + Eulerian circuit +
//     shortcut. 1.5-approximation on metric graphs with exact matching.
//
// Solve dispatches by Algorithm; ParseAlgorithm accepts the CLI names
// "exact", "2opt", "nn", "christofides" and "held-karp".
//
// Missing edges are never used: a solver that cannot close a Hamiltonian
// cycle returns ErrNoTour. The exact solvers check strong connectivity first
// and fail fast. Negative weights are rejected up front with
// core.ErrNegativeWeight.
//
// Sparse graphs can be solved on their MetricClosure, which replaces every
// pair with its shortest-path distance; Closure.Expand turns the resulting
// tour back into a closed walk over real edges.
//
// Long runs honour WithContext and WithTimeLimit between iterations and
// report through WithProgress; nothing in this package logs.
package tsp
