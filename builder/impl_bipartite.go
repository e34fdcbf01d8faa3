// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs "L<i>", right IDs "R<j>" (both scoped).
//   - Edges (L_i, R_j) in row-major order.

package builder

import "fmt"

const (
	leftPrefix  = "L"
	rightPrefix = "R"
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
// Complexity: O(n1 + n2) vertices + O(n1·n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.named(fmt.Sprintf("%s%d", leftPrefix, i))
			el.AddNode(left[i])
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.named(fmt.Sprintf("%s%d", rightPrefix, j))
			el.AddNode(right[j])
		}

		for _, u := range left {
			for _, v := range right {
				if err := el.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}
