// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are "r,c" (scoped), row-major.
//   - 4-neighborhood: for each cell, right then bottom neighbor.

package builder

import "fmt"

const gridIDFmt = "%d,%d"

// Grid returns a Constructor for an R×C lattice.
// Complexity: O(R·C).
func Grid(rows, cols int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		cell := func(r, c int) string { return cfg.named(fmt.Sprintf(gridIDFmt, r, c)) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				el.AddNode(cell(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cell(r, c)
				if c+1 < cols {
					if err := el.AddEdge(u, cell(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := el.AddEdge(u, cell(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
