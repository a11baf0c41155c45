// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors live in impl_*.go; each appends its own vertices after the existing ones.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters early, return sentinel
// errors (no panics) and emit edges in a stable order.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrNeedRandSource, ...) via %w.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.New[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n vertices labelled by cfg.idFn(0..n-1) and returns their indices.
func addVertices(g *core.Graph[string], cfg builderConfig, n int) []int {
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = g.InsertVertex(cfg.idFn(i))
	}

	return idx
}

// connect writes one weighted pair: symmetric by default, an independent
// reverse weight when cfg.asymmetric is set.
func connect(g *core.Graph[string], cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if !cfg.asymmetric {
		if err := g.InsertEdge(u, v, w, true); err != nil {
			return fmt.Errorf("%s: InsertEdge(%d↔%d, w=%d): %w", method, u, v, w, err)
		}

		return nil
	}
	if err := g.InsertEdge(u, v, w, false); err != nil {
		return fmt.Errorf("%s: InsertEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}
	w = cfg.weightFn(cfg.rng)
	if err := g.InsertEdge(v, u, w, false); err != nil {
		return fmt.Errorf("%s: InsertEdge(%d→%d, w=%d): %w", method, v, u, w, err)
	}

	return nil
}
