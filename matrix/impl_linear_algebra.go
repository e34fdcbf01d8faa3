// SPDX-License-Identifier: MIT

// Package matrix: linear-algebra kernels used by spectral bisection.
//
// Purpose:
//   - MatVec: y = A·x with a flat fast path.
//   - Eigen: full symmetric eigen-decomposition, values ascending, vectors as columns.
//   - LeadingEigen: the largest eigenpair (λmax, v), residual-checked via MatVec.
//
// Two backends are available (see options.go):
//   - SolverGonum (default) delegates to gonum mat.EigenSym.
//   - SolverJacobi runs classical Jacobi rotations with max-pivot selection.
//
// Both return the same contract so callers never branch on the backend.
package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// op tags used in error wrappers.
const (
	opMatVec  = "MatVec"
	opEigen   = "Eigen"
	opLeading = "LeadingEigen"
	opJacobi  = "Jacobi"
)

// matrixErrorf prefixes an error with an operation tag, preserving %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = A·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	r, c := m.Rows(), m.Cols()
	y := make([]float64, r)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			y[i] = floats.Dot(d.data[i*c:(i+1)*c], x)
		}

		return y, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}

// Eigen performs a full eigen-decomposition of a symmetric matrix.
// MAIN DESCRIPTION:
//   - Returns eigenvalues in ascending order and the matching eigenvectors as
//     the columns of an n×n Dense (column k pairs with values[k]).
//
// Implementation:
//   - Stage 1: validate non-nil, square, symmetric within eps.
//   - Stage 2: dispatch on the configured Solver.
//   - Stage 3: normalize ordering (ascending) for the Jacobi backend.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (validation).
//   - ErrMatrixEigenFailed when the backend does not converge. Deterministic; do not retry.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Eigenvector signs are backend dependent; only relative signs within a vector carry meaning.
func Eigen(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	switch o.solver {
	case SolverJacobi:
		return eigenJacobi(m, o.jacobiTol, o.jacobiMaxIter)
	default:
		return eigenGonum(m)
	}
}

// LeadingEigen returns the largest eigenvalue and its eigenvector.
// When the top eigenvalue is repeated the backend's last column is used.
// The pair is rejected with ErrMatrixEigenFailed unless
// max_i |(A·v − λ·v)_i| ≤ tol·(1+‖A‖∞), where tol is DefaultResidualTolerance
// (Jacobi: at least n times its stopping tolerance).
func LeadingEigen(m Matrix, opts ...Option) (float64, []float64, error) {
	vals, vecs, err := Eigen(m, opts...)
	if err != nil {
		return 0, nil, matrixErrorf(opLeading, err)
	}
	n := len(vals)
	if n == 0 {
		return 0, nil, matrixErrorf(opLeading, ErrInvalidDimensions)
	}
	k := n - 1
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = vecs.data[i*n+k]
	}
	if err = checkResidual(m, vals[k], v, residualBound(gatherOptions(opts...), n)); err != nil {
		return 0, nil, matrixErrorf(opLeading, err)
	}

	return vals[k], v, nil
}

// residualBound is the per-entry residual tolerance for an n×n solve.
func residualBound(o Options, n int) float64 {
	tol := DefaultResidualTolerance
	if o.solver == SolverJacobi {
		tol = math.Max(tol, float64(n)*o.jacobiTol)
	}

	return tol
}

// checkResidual fails when max_i |(A·v − λ·v)_i| exceeds tol·(1+‖A‖∞).
func checkResidual(m Matrix, lambda float64, v []float64, tol float64) error {
	r, err := MatVec(m, v)
	if err != nil {
		return err
	}
	scale, err := normInf(m)
	if err != nil {
		return err
	}
	floats.AddScaled(r, -lambda, v)
	if res := floats.Norm(r, math.Inf(1)); isNonFinite(res) || res > tol*(1+scale) {
		return fmt.Errorf("residual %.3g: %w", res, ErrMatrixEigenFailed)
	}

	return nil
}

// normInf returns the largest absolute row sum of m.
func normInf(m Matrix) (float64, error) {
	r, c := m.Rows(), m.Cols()
	var best float64
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			best = math.Max(best, floats.Norm(d.data[i*c:(i+1)*c], 1))
		}

		return best, nil
	}
	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, err
			}
			sum += math.Abs(v)
		}
		best = math.Max(best, sum)
	}

	return best, nil
}

// eigenGonum delegates to gonum's symmetric solver.
func eigenGonum(m Matrix) ([]float64, *Dense, error) {
	n := m.Rows()
	if n == 0 {
		return nil, nil, matrixErrorf(opEigen, ErrInvalidDimensions)
	}

	var sym *mat.SymDense
	if d, ok := m.(*Dense); ok {
		var err error
		if sym, err = d.Sym(); err != nil {
			return nil, nil, matrixErrorf(opEigen, err)
		}
	} else {
		sym = mat.NewSymDense(n, nil)
		var (
			i, j int
			v    float64
			err  error
		)
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opEigen, err)
				}
				sym.SetSym(i, j, v)
			}
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}
	vals := es.Values(nil)
	for _, v := range vals {
		if isNonFinite(v) {
			return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
		}
	}

	var ev mat.Dense
	es.VectorsTo(&ev)
	vecs, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			vecs.data[i*n+j] = ev.At(i, j)
		}
	}

	return vals, vecs, nil
}

// eigenJacobi runs classical Jacobi rotations on a working copy.
// Implementation:
//   - Stage 1: copy A into a flat buffer and start Q = I.
//   - Stage 2: repeat: pick pivot (p,q) maximizing |A[p,q]|; stop when < tol;
//     rotate rows/cols p,q of A and accumulate the rotation into Q.
//   - Stage 3: final convergence check, then read diag(A) and sort ascending.
//
// Complexity: O(maxIter·n) rotations plus O(n^2) pivot search per rotation.
func eigenJacobi(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	n := m.Rows()
	if n == 0 {
		return nil, nil, matrixErrorf(opJacobi, ErrInvalidDimensions)
	}
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opJacobi, err)
	}
	if d, ok := m.(*Dense); ok {
		copy(a.data, d.data)
	} else {
		var (
			i, j int
			v    float64
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opJacobi, err)
				}
				a.data[i*n+j] = v
			}
		}
	}
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opJacobi, err)
	}
	var i int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter           int
		p, r           int     // pivot indices
		maxOff         float64 // current max |A[p,r]|
		app, arr, apr  float64 // diagonal and pivot entries
		aip, air       float64 // A[i,p], A[i,r]
		qip, qir       float64 // Q[i,p], Q[i,r]
		theta, t, c, s float64 // rotation parameters
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff, p, r = maxOffDiagonal(a.data, n)
		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		// θ = (arr−app)/(2·apr); t = sign(θ)/(|θ|+√(θ²+1))
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p], a.data[p*n+i] = c*aip-s*air, c*aip-s*air
			a.data[i*n+r], a.data[r*n+i] = s*aip+c*air, s*aip+c*air
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	if maxOff, _, _ = maxOffDiagonal(a.data, n); maxOff >= tol {
		return nil, nil, matrixErrorf(opJacobi, ErrMatrixEigenFailed)
	}

	// Sort eigenpairs ascending; ties keep diagonal order.
	order := make([]int, n)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return a.data[order[x]*n+order[x]] < a.data[order[y]*n+order[y]]
	})

	vals := make([]float64, n)
	vecs, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opJacobi, err)
	}
	var k, src int
	for k = 0; k < n; k++ {
		src = order[k]
		vals[k] = a.data[src*n+src]
		for i = 0; i < n; i++ {
			vecs.data[i*n+k] = q.data[i*n+src]
		}
	}

	return vals, vecs, nil
}

// maxOffDiagonal scans the strict upper triangle of a flat n×n buffer.
func maxOffDiagonal(data []float64, n int) (float64, int, int) {
	var (
		i, j, base int
		p, q       int
		off, best  = NormZero, NormZero
	)
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(data[base+j])
			if off > best {
				best, p, q = off, i, j
			}
		}
	}

	return best, p, q
}
