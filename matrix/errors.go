// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. DO NOT %w wrap
// these sentinels at definition site; wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site, callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// shape/index/NaN -> nil -> dimension mismatch -> structural violations -> solver failure.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnknownVertex indicates that a referenced vertex id is not present
	// in the adjacency index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrDuplicateVertex indicates that the vertex list handed to an adjacency
	// builder repeats an id; coordinates must be a bijection.
	ErrDuplicateVertex = errors.New("matrix: duplicate vertex id")

	// ErrMatrixEigenFailed indicates that an eigen routine failed to converge.
	// The computation is deterministic, so retrying with the same input is pointless.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")
)
