// SPDX-License-Identifier: MIT

package community

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/modularity/matrix"
)

// Edge is an unordered node pair. Parallel edges and self-loops are allowed;
// each occurrence counts once toward the edge total m.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Graph holds the input and every matrix derived from it.
//
// Lifecycle: NewGraph stores copies of the inputs; Prime derives, in order,
// the coordinate index, adjacency, degree vector, edge count and modularity
// matrix. After Prime the Graph is never mutated and is safe for concurrent reads.
type Graph struct {
	nodes []string
	edges []Edge

	adj        *matrix.AdjacencyMatrix // index + adjacency, fixed at Prime
	degree     []float64
	edgeCount  int
	modularity *matrix.Dense // B = A − k·kᵀ/(2m)
	primed     bool
}

// NewGraph validates and stores the node and edge lists.
// Errors (all ErrMalformedGraph): empty nodes, empty edges, repeated node id,
// edge endpoint outside the node list.
// Complexity: O(n + m).
func NewGraph(nodes []string, edges []Edge) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("NewGraph: empty node list: %w", ErrMalformedGraph)
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("NewGraph: empty edge list: %w", ErrMalformedGraph)
	}
	seen := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("NewGraph: duplicate node %q: %w", id, ErrMalformedGraph)
		}
		seen[id] = struct{}{}
	}
	for k, e := range edges {
		if _, ok := seen[e.From]; !ok {
			return nil, fmt.Errorf("NewGraph: edge %d: unknown endpoint %q: %w", k, e.From, ErrMalformedGraph)
		}
		if _, ok := seen[e.To]; !ok {
			return nil, fmt.Errorf("NewGraph: edge %d: unknown endpoint %q: %w", k, e.To, ErrMalformedGraph)
		}
	}

	g := &Graph{
		nodes: make([]string, len(nodes)),
		edges: make([]Edge, len(edges)),
	}
	copy(g.nodes, nodes)
	copy(g.edges, edges)

	return g, nil
}

// Prime derives the index, adjacency, degree vector, edge count and
// modularity matrix. A second call is a no-op.
// Errors: ErrDegenerateGraph when there are no edges; ErrMalformedGraph for
// inconsistent input reaching the matrix builder.
// Complexity: Time O(n² + m), Space O(n²).
func (g *Graph) Prime() error {
	if g.primed {
		return nil
	}
	if len(g.edges) == 0 {
		return fmt.Errorf("Prime: %w", ErrDegenerateGraph)
	}

	pairs := make([][2]string, len(g.edges))
	for k, e := range g.edges {
		pairs[k] = [2]string{e.From, e.To}
	}
	adj, err := matrix.NewAdjacencyMatrix(g.nodes, pairs)
	if err != nil {
		return fmt.Errorf("Prime: %v: %w", err, ErrMalformedGraph)
	}
	degree, err := adj.DegreeVector()
	if err != nil {
		return fmt.Errorf("Prime: %w", err)
	}
	m := adj.EdgeCount()
	if m == 0 {
		return fmt.Errorf("Prime: %w", ErrDegenerateGraph)
	}
	b, err := matrix.ModularityMatrix(adj.Mat, degree, m)
	if err != nil {
		return fmt.Errorf("Prime: %w", err)
	}

	g.adj, g.degree, g.edgeCount, g.modularity = adj, degree, m, b
	g.primed = true

	return nil
}

// Primed reports whether Prime has completed.
func (g *Graph) Primed() bool { return g.primed }

// Nodes returns a copy of the node list in coordinate order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge list in input order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns n.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns m (valid after Prime).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id string) bool {
	if g.primed {
		_, ok := g.adj.VertexIndex[id]
		return ok
	}
	for _, n := range g.nodes {
		if n == id {
			return true
		}
	}

	return false
}

// Index returns the matrix coordinate of id.
func (g *Graph) Index(id string) (int, error) {
	if !g.primed {
		return 0, fmt.Errorf("Index: %w", ErrNotPrimed)
	}
	i, ok := g.adj.VertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("Index: %q: %w", id, ErrUnknownNode)
	}

	return i, nil
}

// Degree returns k_i, the row sum of the adjacency for id.
func (g *Graph) Degree(id string) (float64, error) {
	i, err := g.Index(id)
	if err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	return g.degree[i], nil
}

// ModularityAt returns B[i,j] by coordinate.
func (g *Graph) ModularityAt(i, j int) (float64, error) {
	if !g.primed {
		return 0, fmt.Errorf("ModularityAt: %w", ErrNotPrimed)
	}

	return g.modularity.At(i, j)
}

// Neighbors lists nodes sharing at least one edge with id, in coordinate order.
// Used by diagnostics; the partition itself never walks neighbors.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.primed {
		return nil, fmt.Errorf("Neighbors: %w", ErrNotPrimed)
	}
	nb, err := g.adj.Neighbors(id)
	if errors.Is(err, matrix.ErrUnknownVertex) {
		return nil, fmt.Errorf("Neighbors: %q: %w", id, ErrUnknownNode)
	}

	return nb, err
}

// coordsOf resolves ids to coordinates, rejecting unknown and repeated ids.
func (g *Graph) coordsOf(ids []string) ([]int, error) {
	coords := make([]int, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for k, id := range ids {
		i, ok := g.adj.VertexIndex[id]
		if !ok {
			return nil, fmt.Errorf("%q: %w", id, ErrUnknownNode)
		}
		if _, dup := seen[i]; dup {
			return nil, fmt.Errorf("duplicate %q: %w", id, ErrMalformedGraph)
		}
		seen[i] = struct{}{}
		coords[k] = i
	}

	return coords, nil
}
