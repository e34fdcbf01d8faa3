// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and eigen solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Solver selects the symmetric eigen-decomposition backend used by Eigen.
type Solver int

const (
	// SolverGonum delegates to gonum's mat.EigenSym (LAPACK dsyev port).
	SolverGonum Solver = iota
	// SolverJacobi runs the in-package cyclic Jacobi rotation solver.
	SolverJacobi
)

// String returns the lowercase solver name used by configs and flags.
func (s Solver) String() string {
	switch s {
	case SolverGonum:
		return "gonum"
	case SolverJacobi:
		return "jacobi"
	default:
		return fmt.Sprintf("solver(%d)", int(s))
	}
}

// ParseSolver maps a case-insensitive name ("gonum", "jacobi") to a Solver.
func ParseSolver(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gonum":
		return SolverGonum, nil
	case "jacobi":
		return SolverJacobi, nil
	default:
		return SolverGonum, fmt.Errorf("matrix: unknown solver %q", name)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry validation before decomposition).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true

	// DefaultSolver is the eigen backend when no WithSolver is given.
	DefaultSolver = SolverGonum

	// DefaultJacobiTolerance stops Jacobi sweeps once max |A[p,q]| drops below it.
	DefaultJacobiTolerance = 1e-12

	// DefaultJacobiMaxIter bounds the number of Jacobi rotations.
	DefaultJacobiMaxIter = 200000

	// DefaultResidualTolerance bounds max_i |(A·v − λ·v)_i| / (1+‖A‖∞) for the
	// pair LeadingEigen returns.
	DefaultResidualTolerance = 1e-8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicJacobiTolInvalid = "matrix: WithJacobiTolerance: tol must be finite, > 0"
	panicJacobiMaxIter    = "matrix: WithJacobiMaxIter: maxIter must be > 0"
	panicSolverInvalid    = "matrix: WithSolver: unknown solver"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	solver        Solver  // DefaultSolver
	jacobiTol     float64 // > 0; DefaultJacobiTolerance
	jacobiMaxIter int     // > 0; DefaultJacobiMaxIter
}

// Epsilon returns the resolved structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Solver returns the resolved eigen backend.
func (o Options) Solver() Solver { return o.solver }

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Panics with a stable message when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - Modularity matrices are symmetric by construction; the default 1e-9 only
//     matters for caller-supplied matrices.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSolver selects the eigen backend.
// Implementation:
//   - Stage 1: reject values outside the declared Solver set (panic).
//   - Stage 2: return a setter writing the solver.
//
// Complexity: Time O(1), Space O(1).
func WithSolver(s Solver) Option {
	if s != SolverGonum && s != SolverJacobi {
		panic(panicSolverInvalid)
	}

	return func(o *Options) { o.solver = s }
}

// WithJacobiTolerance sets the off-diagonal convergence threshold of the Jacobi solver.
func WithJacobiTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicJacobiTolInvalid)
	}

	return func(o *Options) { o.jacobiTol = tol }
}

// WithJacobiMaxIter bounds the number of Jacobi rotations before
// ErrMatrixEigenFailed is reported.
func WithJacobiMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicJacobiMaxIter)
	}

	return func(o *Options) { o.jacobiMaxIter = maxIter }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		solver:         DefaultSolver,
		jacobiTol:      DefaultJacobiTolerance,
		jacobiMaxIter:  DefaultJacobiMaxIter,
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// nil setters are skipped so callers can build option slices conditionally.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
