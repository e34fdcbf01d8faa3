// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/modularity/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err)

	return d
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RandomSymmetric BUILDS an n×n symmetric matrix with U(-1,1) entries by seed.
func RandomSymmetric(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := MustDense(tb, n, n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = rng.Float64()*2 - 1
			require.NoError(tb, d.Set(i, j, v))
			require.NoError(tb, d.Set(j, i, v))
		}
	}

	return d
}
