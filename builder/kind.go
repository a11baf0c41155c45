// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// kind.go - named instance families for command-line selection.

package builder

import (
	"fmt"
	"strings"
)

// Kind names an instance family.
type Kind int

const (
	// KindEuclidean is a random planar instance (Euclidean).
	KindEuclidean Kind = iota
	// KindComplete is K_n with weights from the WeightFn (Complete).
	KindComplete
	// KindCycle is C_n without chords (Cycle).
	KindCycle
	// KindStar is a star with no Hamiltonian cycle (Star).
	KindStar
)

// String returns the name accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindEuclidean:
		return "euclidean"
	case KindComplete:
		return "complete"
	case KindCycle:
		return "cycle"
	case KindStar:
		return "star"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a case-insensitive name onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euclidean", "":
		return KindEuclidean, nil
	case "complete":
		return KindComplete, nil
	case "cycle":
		return KindCycle, nil
	case "star":
		return KindStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Constructor returns the constructor for k with n vertices.
func (k Kind) Constructor(n int) (Constructor, error) {
	switch k {
	case KindEuclidean:
		return Euclidean(n), nil
	case KindComplete:
		return Complete(n), nil
	case KindCycle:
		return Cycle(n), nil
	case KindStar:
		return Star(n), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
}
