// SPDX-License-Identifier: MIT

package community

import (
	"context"
	"fmt"

	"github.com/katalvlaran/modularity/bfs"
)

// GroupStats describes one community of a partition.
type GroupStats struct {
	Index         int     `json:"index" yaml:"index"`
	Size          int     `json:"size" yaml:"size"`
	InternalEdges int     `json:"internal_edges" yaml:"internal_edges"` // both endpoints inside (self-loops included)
	BoundaryEdges int     `json:"boundary_edges" yaml:"boundary_edges"` // exactly one endpoint inside
	Components    int     `json:"components" yaml:"components"`         // connected pieces of the induced subgraph
	Diameter      int     `json:"diameter" yaml:"diameter"`             // longest shortest path inside any piece
	Contribution  float64 `json:"contribution" yaml:"contribution"`     // (1/(2m)) Σ_{i,j ∈ group} B_ij
}

// Diagnostics summarizes a partition against its graph.
type Diagnostics struct {
	Groups          []GroupStats `json:"groups" yaml:"groups"`
	GraphComponents int          `json:"graph_components" yaml:"graph_components"`
	Q               float64      `json:"q" yaml:"q"` // Σ Contribution
}

// Diagnose is DiagnoseContext with a background context.
func Diagnose(g *Graph, groups [][]string) (*Diagnostics, error) {
	return DiagnoseContext(context.Background(), g, groups)
}

// DiagnoseContext computes per-group statistics for groups over g.
// The graph is primed when needed. Groups must be a partition of g.
// Diameter runs one BFS per member restricted to the group's edges.
// Errors: ErrDegenerateGraph, ErrUnknownNode, ErrInvalidPartition, bfs errors, ctx.Err().
// Complexity: O(n² + m) plus O(|g|·(|g| + m_g)) per group.
func DiagnoseContext(ctx context.Context, g *Graph, groups [][]string) (*Diagnostics, error) {
	if g == nil {
		return nil, fmt.Errorf("Diagnose: %w", ErrMalformedGraph)
	}
	if err := g.Prime(); err != nil {
		return nil, fmt.Errorf("Diagnose: %w", err)
	}
	q, err := Modularity(g, groups)
	if err != nil {
		return nil, fmt.Errorf("Diagnose: %w", err)
	}

	member := make(map[string]int, g.NodeCount())
	for ci, grp := range groups {
		for _, id := range grp {
			member[id] = ci
		}
	}

	d := &Diagnostics{Groups: make([]GroupStats, len(groups)), Q: q}
	for ci, grp := range groups {
		d.Groups[ci] = GroupStats{Index: ci, Size: len(grp)}
	}
	for _, e := range g.edges {
		cu, cv := member[e.From], member[e.To]
		if cu == cv {
			d.Groups[cu].InternalEdges++
			continue
		}
		d.Groups[cu].BoundaryEdges++
		d.Groups[cv].BoundaryEdges++
	}

	for ci, grp := range groups {
		c, err := groupContribution(g, grp)
		if err != nil {
			return nil, fmt.Errorf("Diagnose: group %d: %w", ci, err)
		}
		d.Groups[ci].Contribution = c

		ci := ci
		inside := bfs.WithEdgeFilter(func(_, nbr string) bool { return member[nbr] == ci })
		comps, err := bfs.Components(g, grp, bfs.WithContext(ctx), inside)
		if err != nil {
			return nil, fmt.Errorf("Diagnose: group %d: %w", ci, err)
		}
		d.Groups[ci].Components = len(comps)

		for _, id := range grp {
			tree, err := bfs.BFS(g, id, bfs.WithContext(ctx), inside)
			if err != nil {
				return nil, fmt.Errorf("Diagnose: group %d: %w", ci, err)
			}
			if ecc := tree.Eccentricity(); ecc > d.Groups[ci].Diameter {
				d.Groups[ci].Diameter = ecc
			}
		}
	}

	all, err := bfs.Components(g, g.nodes, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("Diagnose: %w", err)
	}
	d.GraphComponents = len(all)

	return d, nil
}
