// Package tsp - lazy permutation sequence for exhaustive search.
package tsp

import (
	"iter"
	"slices"
)

// permutations yields every ordering of items in lexicographic order,
// starting from items sorted ascending. Memory stays O(len(items)): the
// yielded slice is reused and must not be retained by the consumer.
//
// An empty input yields one empty permutation.
func permutations(items []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := slices.Clone(items)
		slices.Sort(p)
		if !yield(p) {
			return
		}
		for nextPermutation(p) {
			if !yield(p) {
				return
			}
		}
	}
}

// nextPermutation rearranges p into its lexicographic successor and reports
// false when p was already the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}
