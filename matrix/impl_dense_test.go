// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/modularity/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDense_DefaultZero(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 3, 4)
	m.Do(func(i, j int, v float64) bool {
		assert.Zerof(t, v, "element [%d,%d]", i, j)
		return true
	})
	r, c := m.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 7.5))
	assert.Equal(t, 7.5, MustAt(t, m, 1, 0))
}

func TestDense_NumericPolicy(t *testing.T) {
	t.Parallel()
	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDenseWithOptions(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1))) // relaxed policy accepts Inf

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_CloneIndependent(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 100))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0)) // original untouched
	assert.Equal(t, 100.0, MustAt(t, cp, 0, 0))
}

func TestDense_Induced(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	sub, err := m.Induced([]int{2, 0}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "[8, 9]\n[2, 3]\n", sub.String())

	// receiver is never mutated
	require.NoError(t, sub.Set(0, 0, -1))
	assert.Equal(t, 8.0, MustAt(t, m, 2, 1))

	empty, err := m.Induced(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Reductions(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []float64{6, 15}, m.RowSums())
	assert.Equal(t, 21.0, m.Sum())
}

func TestDense_QuadForm(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 3})
	q, err := m.QuadForm([]float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, 3.0, q) // 2 - 1 - 1 + 3

	_, err = m.QuadForm([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	rect := MustDense(t, 2, 3)
	_, err = rect.QuadForm([]float64{1, 1, 1})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDense_Apply(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 1, 3, []float64{1, 2, 3})
	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 2 }))
	assert.Equal(t, "[2, 4, 6]\n", m.String())

	err := m.Apply(func(_, j int, v float64) float64 {
		if j == 1 {
			return math.NaN()
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_Sym(t *testing.T) {
	t.Parallel()
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 2, 5})
	s, err := m.Sym()
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.At(1, 0))
	assert.Equal(t, 5.0, s.At(1, 1))

	_, err = MustDense(t, 2, 1).Sym()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
