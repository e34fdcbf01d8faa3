// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i→(i+1) mod n in ascending i.

package builder

import "fmt"

// Cycle returns a Constructor that builds the simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			el.AddNode(cfg.id(i))
		}
		for i := 0; i < n; i++ {
			if err := el.AddEdge(cfg.id(i), cfg.id((i+1)%n)); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
