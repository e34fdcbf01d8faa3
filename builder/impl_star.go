// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is CenterVertexID (scoped); leaves are cfg IDs 1..n-1.
//   - Spokes are emitted in ascending leaf order.

package builder

import "fmt"

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		center := cfg.named(CenterVertexID)
		el.AddNode(center)
		for i := 1; i < n; i++ {
			leaf := cfg.id(i)
			el.AddNode(leaf)
			if err := el.AddEdge(center, leaf); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
