// SPDX-License-Identifier: MIT

// Package community detects communities in an undirected graph by recursive
// spectral bisection of the modularity matrix (leading-eigenvector method),
// with an optional greedy single-node refinement of every split.
//
// What
//
//   - Graph: ordered node ids and edge pairs (parallel edges and self-loops
//     allowed); Prime derives adjacency A, degrees k, edge count m and
//     B = A − k·kᵀ/(2m).
//   - Module: a candidate community. EigenDivide splits it by the sign of the
//     leading eigenvector of B restricted to its nodes; FineTune relocates
//     single nodes while the split's gain improves.
//   - Partition / Partitioner.Run: keep splitting pending modules while a split
//     has positive gain; the result is the leaf modules and the accumulated Q.
//   - Modularity: direct recomputation of Q for any partition.
//   - Diagnose: per-group size, edge counts, connectivity and Q contribution.
//
// Determinism
//
//	Modules are evaluated in creation order and every loop runs over ordered
//	slices, so a given input and solver produce the same groups on every run.
//	WithWorkers divides the modules of one sweep concurrently but applies the
//	outcomes in creation order, so the worker count never changes the Result.
//	Eigenvector signs are backend specific; switching between the gonum and
//	Jacobi solvers may swap group1 and group2 of a split.
//
// Complexity
//
//   - Each bisection costs O(|g|³) for the eigen decomposition; FineTune adds
//     O(|g|³) per round. Memory is O(n²) for the dense matrices.
//
// Usage
//
//	res, err := community.Partition(nodes, edges,
//	    community.WithRefinement(true),
//	    community.WithLogger(logger),
//	)
//	if err != nil {
//	    // ErrMalformedGraph, ErrDegenerateGraph or matrix.ErrMatrixEigenFailed
//	}
//	fmt.Println(res.Q, res.Groups)
package community
