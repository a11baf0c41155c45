// Package salesman is a Travelling Salesman engine over dense weighted graphs.
//
// The module is organized leaves first:
//
//	core/          generic Graph[V] over an int64 matrix; 0 means "no edge"
//	bfs/           reachability and strong-connectivity checks
//	dijkstra/      single-source shortest paths
//	prim_kruskal/  minimum spanning trees and the disjoint-set forest
//	matching/      minimum-weight perfect matching on a vertex subset
//	eulerian/      multigraph, Hierholzer circuit and shortcutting
//	tsp/           brute force, Held-Karp, nearest neighbor, 2-opt, Christofides,
//	               metric closure and the Solve dispatcher
//	builder/       random and structured instance generators
//	tspfile/       whitespace matrix text format
//	cmd/tsp        command-line front end (internal/cli, internal/config)
//
// Quick start:
//
//	g, _ := tspfile.ReadFile("cities.txt")
//	res, err := tsp.Solve(g, tsp.AlgorithmChristofides)
//
// Core packages never log; they return sentinel errors wrapped with context
// and report progress through callbacks.
package salesman
