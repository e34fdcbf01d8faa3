// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges. Space: O(n) for the ID slice.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete simple graph K_n.
// K_n is indivisible under modularity bisection: its leading eigenvalue is 0.
func Complete(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.id(i)
			el.AddNode(ids[i])
		}

		// Stable lexicographic pair order (i,j), i<j.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := el.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
