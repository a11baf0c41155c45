// Package tsp - RNG utilities for randomized starting routes.
//
// Goals:
//   - Determinism: same seed ⇒ identical routes across runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every call builds its own stream.
package tsp

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs a Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandomRoute returns a seeded random route over n vertices that starts at 0.
// The same (n, seed) always yields the same route; n <= 0 yields an empty route.
func RandomRoute(n int, seed int64) Route {
	if n <= 0 {
		return Route{}
	}
	r := identityRoute(n)
	shuffleIntsInPlace(r[1:], rngFromSeed(seed))

	return r
}
