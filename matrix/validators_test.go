// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/modularity/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	var nilDense *matrix.Dense
	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil interface", nil, matrix.ErrNilMatrix},
		{"typed nil", nilDense, matrix.ErrNilMatrix},
		{"square 3x3", MustDense(t, 3, 3), nil},
		{"non-square 2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSymmetric exercises both the flat fast path and the interface fallback.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := NewFilledDense(t, 3, 3, []float64{
		1, 2, 3,
		2, 4, 5,
		3, 5, 6,
	})
	asym := NewFilledDense(t, 2, 2, []float64{0, 1, 1.5, 0})
	nearly := NewFilledDense(t, 2, 2, []float64{0, 1, 1 + 1e-12, 0})

	for _, m := range []matrix.Matrix{sym, hide{sym}} {
		require.NoError(t, matrix.ValidateSymmetric(m, 0))
	}
	for _, m := range []matrix.Matrix{asym, hide{asym}} {
		require.ErrorIs(t, matrix.ValidateSymmetric(m, 1e-9), matrix.ErrAsymmetry)
	}
	require.NoError(t, matrix.ValidateSymmetric(nearly, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric(nearly, -1e-9)) // negative tol is flipped
	require.ErrorIs(t, matrix.ValidateSymmetric(nearly, 0), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDenseWithOptions(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))

	require.NoError(t, m.Set(1, 1, math.NaN()))
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
