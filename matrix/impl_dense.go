// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) for restricted modularity matrices.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxApply  = "Apply"   // method tag used in error wrappers
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
	ctxQuad   = "QuadForm"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (zero only for Induced with empty index sets)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseWithOptions is NewDense with the numeric policy taken from opts
// (WithValidateNaNInf / WithNoValidateNaNInf) instead of the package default.
func NewDenseWithOptions(rows, cols int, opts ...Option) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	d.validateNaNInf = gatherOptions(opts...).validateNaNInf

	return d, nil
}

// NewDenseFrom copies a row-major slice into a new rows×cols Dense.
// The slice length must be rows*cols; values are checked against the numeric policy.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, values []float64) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: len=%d want %d: %w", len(values), rows*cols, ErrDimensionMismatch)
	}
	for k, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf)
		}
	}
	copy(d.data, values)

	return d, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// add increments the cell (row, col) by delta. Internal builders only;
// callers guarantee bounds.
func (m *Dense) add(row, col int, delta float64) {
	m.data[row*m.c+col] += delta
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders matrix rows as lines with comma-separated values.
// Intended for logs and debugging, not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists, in the given order.
//
// Implementation:
//   - Stage 1: handle zero-sized result (legal).
//   - Stage 2: allocate result via NewDense.
//   - Stage 3: nested loops with direct offset math; bounds-check each index.
//
// Behavior highlights:
//   - The receiver is never mutated; the result has an independent lifetime.
//   - Policy is preserved from the base (validateNaNInf).
//   - Duplicates in index sets are allowed (repeated rows/cols in the result).
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	if rp == 0 || cp == 0 {
		return &Dense{
			r:              rp,
			c:              cp,
			data:           make([]float64, 0),
			validateNaNInf: m.validateNaNInf,
		}, nil
	}

	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Deterministic row-major order; respects validateNaNInf. An error aborts the
// walk and elements written before it remain updated; for all-or-nothing
// semantics transform a clone and swap on success.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// RowView returns row i as a slice aliasing the matrix buffer.
// Callers must treat it as read-only; writes go through Set.
// Complexity: O(1), no allocation.
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("RowView", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// RowSums returns r where r[i] = Σ_j m[i,j], accumulated in fixed j order.
// Complexity: O(r*c).
func (m *Dense) RowSums() []float64 {
	out := make([]float64, m.r)
	var i, j, base int
	var s float64
	for i = 0; i < m.r; i++ {
		s = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			s += m.data[base+j]
		}
		out[i] = s
	}

	return out
}

// Sum returns Σ_ij m[i,j] in row-major order.
func (m *Dense) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}

	return s
}

// QuadForm returns xᵀ·M·x for a square receiver.
// Errors: ErrNonSquare, ErrDimensionMismatch (len(x) != order).
// Complexity: O(n^2).
func (m *Dense) QuadForm(x []float64) (float64, error) {
	if m.r != m.c {
		return 0, fmt.Errorf("Dense.%s: %w", ctxQuad, ErrNonSquare)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return 0, fmt.Errorf("Dense.%s: %w", ctxQuad, err)
	}
	var i, j, base int
	var row, acc float64
	for i = 0; i < m.r; i++ {
		if x[i] == 0 {
			continue
		}
		row = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			row += m.data[base+j] * x[j]
		}
		acc += x[i] * row
	}

	return acc, nil
}

// Sym exports the upper triangle of a square receiver as a gonum SymDense.
// The caller is responsible for symmetry (see ValidateSymmetric); the lower
// triangle is ignored by gonum.
func (m *Dense) Sym() (*mat.SymDense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Dense.Sym: %w", ErrNonSquare)
	}
	if m.r == 0 {
		return nil, fmt.Errorf("Dense.Sym: %w", ErrInvalidDimensions)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewSymDense(m.r, cp), nil
}
