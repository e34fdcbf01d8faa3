// SPDX-License-Identifier: MIT
// Package matrix - dense adjacency builder and the modularity matrix.
//
// Deliverables:
//  1. Undirected accumulation: every pair (u,v) adds 1 to A[u,v] and 1 to A[v,u];
//     a self-loop (u,u) therefore adds 2 to the diagonal.
//  2. Parallel pairs accumulate (multiplicity), nothing is overwritten.
//  3. Vertex order is the caller's order; coordinates never depend on map iteration.
//  4. Degree = row sum of A, so Σ degree = 2·EdgeCount.
//  5. B = A − k·kᵀ/(2m) built from the same buffers.
//
// AI-Hints:
//   - Sort the vertex list before calling if canonical coordinates are needed.
//   - B is symmetric bit-for-bit because k_i·k_j == k_j·k_i in IEEE arithmetic.

package matrix

import (
	"fmt"
)

// defaultReserve is the initial capacity for neighbor slices
const defaultReserve = 8

// AdjacencyMatrix wraps a Dense adjacency with its vertex index.
// VertexIndex maps vertex id → row/col in Mat.
// vertexByIndex provides reverse lookup from column index to id.
type AdjacencyMatrix struct {
	Mat           *Dense         // symmetric multiplicity matrix
	VertexIndex   map[string]int // id → coordinate
	vertexByIndex []string       // coordinate → id
	edgeCount     int            // number of accepted pairs (m)
}

// IndexVertices assigns coordinates 0..n-1 to ids in the given order.
// Errors: ErrInvalidDimensions (empty list), ErrDuplicateVertex.
// Complexity: O(n).
func IndexVertices(ids []string) (map[string]int, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("IndexVertices: %w", ErrInvalidDimensions)
	}
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("IndexVertices: %q: %w", id, ErrDuplicateVertex)
		}
		idx[id] = i
	}

	return idx, nil
}

// NewAdjacencyMatrix BUILD an undirected multiplicity adjacency from pairs.
// Implementation:
//   - Stage 1: index vertices in caller order (ErrDuplicateVertex on repeats).
//   - Stage 2: allocate n×n Dense.
//   - Stage 3: for each pair resolve both endpoints and increment A[u,v], A[v,u].
//
// Behavior highlights:
//   - No panics for user errors; strict sentinels only.
//   - Self-loop (u,u) contributes 2 to A[u,u] (both increments land on the diagonal).
//
// Errors:
//   - ErrInvalidDimensions, ErrDuplicateVertex, ErrUnknownVertex.
//
// Complexity:
//   - Time O(n^2 + m), Space O(n^2).
func NewAdjacencyMatrix(ids []string, pairs [][2]string) (*AdjacencyMatrix, error) {
	index, err := IndexVertices(ids)
	if err != nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
	}
	n := len(ids)
	mat, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
	}

	var (
		u, v   int
		okU    bool
		okV    bool
		k      int
		fromID string
		toID   string
	)
	for k = range pairs {
		fromID, toID = pairs[k][0], pairs[k][1]
		if u, okU = index[fromID]; !okU {
			return nil, fmt.Errorf("NewAdjacencyMatrix: pair %d: %q: %w", k, fromID, ErrUnknownVertex)
		}
		if v, okV = index[toID]; !okV {
			return nil, fmt.Errorf("NewAdjacencyMatrix: pair %d: %q: %w", k, toID, ErrUnknownVertex)
		}
		mat.add(u, v, 1)
		mat.add(v, u, 1)
	}

	byIndex := make([]string, n)
	copy(byIndex, ids)

	return &AdjacencyMatrix{
		Mat:           mat,
		VertexIndex:   index,
		vertexByIndex: byIndex,
		edgeCount:     len(pairs),
	}, nil
}

// VertexCount returns the matrix order, or an error when the container is inconsistent.
func (am *AdjacencyMatrix) VertexCount() (int, error) {
	if am == nil || am.Mat == nil {
		return 0, fmt.Errorf("AdjacencyMatrix.VertexCount: %w", ErrNilMatrix)
	}
	if am.Mat.Rows() != len(am.vertexByIndex) {
		return 0, fmt.Errorf(
			"AdjacencyMatrix.VertexCount: inconsistent dimensions %d vs %d: %w",
			am.Mat.Rows(), len(am.vertexByIndex), ErrDimensionMismatch,
		)
	}

	return am.Mat.Rows(), nil
}

// EdgeCount returns m, the number of pairs the matrix was built from.
func (am *AdjacencyMatrix) EdgeCount() int { return am.edgeCount }

// VertexAt returns the id stored at coordinate idx.
func (am *AdjacencyMatrix) VertexAt(idx int) (string, error) {
	if idx < 0 || idx >= len(am.vertexByIndex) {
		return "", fmt.Errorf("VertexAt: index %d: %w", idx, ErrOutOfRange)
	}

	return am.vertexByIndex[idx], nil
}

// Neighbors LIST vertex ids sharing at least one pair with u, in coordinate order.
// A self-loop makes u its own neighbor.
// Errors: ErrNilMatrix, ErrUnknownVertex.
// Complexity: Time O(n), Space O(k) for k neighbors.
func (am *AdjacencyMatrix) Neighbors(u string) ([]string, error) {
	if am == nil || am.Mat == nil {
		return nil, fmt.Errorf("Neighbors: %w", ErrNilMatrix)
	}
	src, ok := am.VertexIndex[u]
	if !ok {
		return nil, fmt.Errorf("Neighbors: unknown vertex %q: %w", u, ErrUnknownVertex)
	}

	n := am.Mat.c
	row := am.Mat.data[src*n : (src+1)*n]
	neighbors := make([]string, 0, defaultReserve)
	for j, w := range row {
		if w == 0 {
			continue
		}
		neighbors = append(neighbors, am.vertexByIndex[j])
	}

	return neighbors, nil
}

// DegreeVector returns k with k[i] = Σ_j A[i,j] (multiplicities included,
// self-loops counted twice).
// Complexity: Time O(n^2), Space O(n).
func (am *AdjacencyMatrix) DegreeVector() ([]float64, error) {
	if am == nil || am.Mat == nil {
		return nil, fmt.Errorf("DegreeVector: %w", ErrNilMatrix)
	}
	if err := ValidateSquare(am.Mat); err != nil {
		return nil, fmt.Errorf("DegreeVector: %w", err)
	}

	return am.Mat.RowSums(), nil
}

// ModularityMatrix builds B[i,j] = A[i,j] − k_i·k_j/(2m).
// Implementation:
//   - Stage 1: validate A square, len(k) == order, m > 0.
//   - Stage 2: single row-major pass over the flat buffers.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrInvalidDimensions (m <= 0).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func ModularityMatrix(a *Dense, degree []float64, m int) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("ModularityMatrix: %w", ErrNilMatrix)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("ModularityMatrix: %w", err)
	}
	n := a.r
	if err := ValidateVecLen(degree, n); err != nil {
		return nil, fmt.Errorf("ModularityMatrix: %w", err)
	}
	if m <= 0 {
		return nil, fmt.Errorf("ModularityMatrix: edge count %d: %w", m, ErrInvalidDimensions)
	}

	b, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("ModularityMatrix: %w", err)
	}
	b.validateNaNInf = a.validateNaNInf
	twoM := 2 * float64(m)

	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			b.data[base+j] = a.data[base+j] - degree[i]*degree[j]/twoM
		}
	}

	return b, nil
}
