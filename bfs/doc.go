// Package bfs implements breadth-first search and strong-connectivity checks
// over the dense core.Graph.
//
// A Hamiltonian cycle can only exist in a strongly connected graph, so the
// exact TSP solvers call StronglyConnected before enumerating routes.
//
// Options:
//   - WithContext: cancellation between dequeues.
//   - WithMaxDepth: stop expanding beyond a depth.
//   - WithReverse: follow incoming edges.
//   - WithOnVisit: per-vertex hook; an error aborts the search.
package bfs
