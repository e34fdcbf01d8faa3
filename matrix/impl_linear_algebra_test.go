// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the eigen solvers and MatVec.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/modularity/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eigTol = 1e-9

var solvers = []matrix.Solver{matrix.SolverGonum, matrix.SolverJacobi}

func TestMatVec(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	for _, m := range []matrix.Matrix{a, hide{a}} {
		y, err := matrix.MatVec(m, []float64{1, 1})
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 7}, y)
	}
	_, err := matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEigen_DiagonalAscending(t *testing.T) {
	t.Parallel()
	d := NewFilledDense(t, 3, 3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})
	for _, s := range solvers {
		vals, vecs, err := matrix.Eigen(d, matrix.WithSolver(s))
		require.NoError(t, err, s.String())
		require.Len(t, vals, 3)
		assert.InDelta(t, 1.0, vals[0], eigTol)
		assert.InDelta(t, 2.0, vals[1], eigTol)
		assert.InDelta(t, 3.0, vals[2], eigTol)
		// eigenvector of 3 is ±e0
		assert.InDelta(t, 1.0, math.Abs(MustAt(t, vecs, 0, 2)), eigTol)
	}
}

func TestLeadingEigen_TwoByTwo(t *testing.T) {
	t.Parallel()
	a := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	for _, s := range solvers {
		for _, m := range []matrix.Matrix{a, hide{a}} {
			lambda, v, err := matrix.LeadingEigen(m, matrix.WithSolver(s))
			require.NoError(t, err)
			assert.InDelta(t, 3.0, lambda, eigTol)
			assert.InDelta(t, math.Sqrt2/2, math.Abs(v[0]), eigTol)
			assert.True(t, v[0]*v[1] > 0, "components share a sign")
		}
	}
}

// TestEigen_SolversAgree checks that both backends produce the same spectrum
// and that every returned pair satisfies A·v = λ·v.
func TestEigen_SolversAgree(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 5, 9} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := RandomSymmetric(t, n, int64(100+n))
			gv, gvec, err := matrix.Eigen(a)
			require.NoError(t, err)
			jv, jvec, err := matrix.Eigen(a, matrix.WithSolver(matrix.SolverJacobi))
			require.NoError(t, err)
			require.Len(t, jv, n)
			for k := 0; k < n; k++ {
				assert.InDelta(t, gv[k], jv[k], 1e-8, "eigenvalue %d", k)
				assertEigenPair(t, a, gv[k], gvec, k)
				assertEigenPair(t, a, jv[k], jvec, k)
			}
		})
	}
}

func assertEigenPair(t *testing.T, a *matrix.Dense, lambda float64, vecs *matrix.Dense, k int) {
	t.Helper()
	n := a.Rows()
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = MustAt(t, vecs, i, k)
	}
	av, err := matrix.MatVec(a, v)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.InDelta(t, lambda*v[i], av[i], 1e-8)
	}
}

func TestEigen_Errors(t *testing.T) {
	t.Parallel()
	_, _, err := matrix.Eigen(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	asym := NewFilledDense(t, 2, 2, []float64{1, 2, 0, 1})
	_, _, err = matrix.Eigen(asym)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.LeadingEigen(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// one rotation cannot diagonalize a full 3×3
	full := NewFilledDense(t, 3, 3, []float64{
		4, 1, 1,
		1, 3, 1,
		1, 1, 2,
	})
	_, _, err = matrix.Eigen(full,
		matrix.WithSolver(matrix.SolverJacobi),
		matrix.WithJacobiMaxIter(1),
	)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}
