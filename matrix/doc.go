// SPDX-License-Identifier: MIT

// Package matrix offers the dense linear algebra behind modularity-based
// community detection.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe accessors, copy-based
//     submatrix extraction (Induced) and a NaN/Inf numeric policy.
//   - AdjacencyMatrix: an undirected multiplicity adjacency built from id pairs
//     in caller order, with degree vector and neighbor scans.
//   - ModularityMatrix: B = A − k·kᵀ/(2m).
//   - Eigen / LeadingEigen: symmetric eigen-decomposition backed by gonum
//     (default) or an in-package Jacobi solver, selected with WithSolver.
//
// All kernels return sentinel errors (see errors.go) and never panic on user
// input. Matrices are best for small and medium graphs where O(n²) memory and
// O(n³) decompositions are acceptable.
package matrix
