// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w.
//   - Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, groups)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownVertex indicates an edge endpoint that was never registered.
var ErrUnknownVertex = errors.New("builder: unknown vertex")

// ErrConstructFailed indicates an unusable constructor (e.g. nil).
var ErrConstructFailed = errors.New("builder: construction failed")
