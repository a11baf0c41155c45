// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// errors.go - sentinel errors for instance construction.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below a constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a generic construction failure (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates an unrecognised instance kind name.
var ErrUnknownKind = errors.New("builder: unknown instance kind")
