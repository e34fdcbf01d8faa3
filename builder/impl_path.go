// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges i→i+1 for i in [0, n-2], ascending.

package builder

import "fmt"

// Path returns a Constructor that builds the simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			el.AddNode(cfg.id(i))
		}
		for i := 0; i+1 < n; i++ {
			if err := el.AddEdge(cfg.id(i), cfg.id(i+1)); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
