// SPDX-License-Identifier: MIT

package community

import (
	"fmt"

	"github.com/katalvlaran/modularity/matrix"
)

// Module is a candidate community: an ordered subset of graph nodes plus the
// state of its last bisection attempt.
//
// The global coordinates of its nodes are resolved once at construction; the
// restricted modularity matrix B^(g) is re-derived from the Graph on demand
// and the Graph's B is never mutated.
type Module struct {
	nodeIDs    []string
	coords     []int          // global coordinate per node, parallel to nodeIDs
	pos        map[string]int // node id → local position
	local      *matrix.Dense  // B^(g), cached after FetchLocalMatrix
	assignment []float64      // s_i = +1 (group1) / −1 (group2), parallel to nodeIDs
	deltaQ     float64
	divisible  bool
}

// NewModule captures the coordinates of nodeIDs in g.
// Errors: ErrNotPrimed, ErrMalformedGraph (empty or repeated ids), ErrUnknownNode.
func NewModule(g *Graph, nodeIDs []string) (*Module, error) {
	if g == nil || !g.primed {
		return nil, fmt.Errorf("NewModule: %w", ErrNotPrimed)
	}
	if len(nodeIDs) == 0 {
		return nil, fmt.Errorf("NewModule: empty node list: %w", ErrMalformedGraph)
	}
	coords, err := g.coordsOf(nodeIDs)
	if err != nil {
		return nil, fmt.Errorf("NewModule: %w", err)
	}
	ids := make([]string, len(nodeIDs))
	copy(ids, nodeIDs)
	pos := make(map[string]int, len(ids))
	for k, id := range ids {
		pos[id] = k
	}

	return &Module{
		nodeIDs:   ids,
		coords:    coords,
		pos:       pos,
		divisible: true,
	}, nil
}

// Nodes returns a copy of the module's node ids in module order.
func (m *Module) Nodes() []string {
	out := make([]string, len(m.nodeIDs))
	copy(out, m.nodeIDs)

	return out
}

// Size returns the number of nodes.
func (m *Module) Size() int { return len(m.nodeIDs) }

// DeltaQ returns the gain of the last evaluated split (0 before any attempt).
func (m *Module) DeltaQ() float64 { return m.deltaQ }

// Divisible reports whether a split attempt is still pending.
func (m *Module) Divisible() bool { return m.divisible }

// Assignment returns a copy of s (nil before a split is evaluated).
func (m *Module) Assignment() []float64 {
	if m.assignment == nil {
		return nil
	}
	out := make([]float64, len(m.assignment))
	copy(out, m.assignment)

	return out
}

// FetchLocalMatrix returns B^(g), the restriction of the graph's modularity
// matrix to this module's coordinates. The result is cached on the module.
// Complexity: O(|g|²).
func (m *Module) FetchLocalMatrix(g *Graph) (*matrix.Dense, error) {
	if g == nil || !g.primed {
		return nil, fmt.Errorf("FetchLocalMatrix: %w", ErrNotPrimed)
	}
	if m.local != nil {
		return m.local, nil
	}
	local, err := g.modularity.Induced(m.coords, m.coords)
	if err != nil {
		return nil, fmt.Errorf("FetchLocalMatrix: %w", err)
	}
	m.local = local

	return local, nil
}

// EigenDivide bisects the module by the sign of the leading eigenvector of B^(g).
// MAIN DESCRIPTION:
//   - λmax ≤ 0: no improving split; returns two empty groups and deltaQ = 0.
//   - Otherwise v_i < 0 goes to group1 and v_i ≥ 0 (exact zero included) to group2;
//     s_i = +1 for group1, −1 for group2.
//   - deltaQ = (1/(4m)) Σ_i Σ_j (s_i s_j − 1) B^(g)_ij.
//
// The module is no longer divisible afterwards, whatever the outcome.
//
// Errors:
//   - ErrNotPrimed; matrix.ErrMatrixEigenFailed when the solver does not converge.
//
// Complexity:
//   - Time O(|g|³) for the decomposition, Space O(|g|²).
func (m *Module) EigenDivide(g *Graph, opts ...matrix.Option) (float64, [2][]string, error) {
	var groups [2][]string
	local, err := m.FetchLocalMatrix(g)
	if err != nil {
		return 0, groups, fmt.Errorf("EigenDivide: %w", err)
	}
	lambda, v, err := matrix.LeadingEigen(local, opts...)
	if err != nil {
		return 0, groups, fmt.Errorf("EigenDivide: %w", err)
	}
	m.divisible = false
	if lambda <= 0 {
		m.deltaQ = 0
		m.assignment = nil
		return 0, [2][]string{{}, {}}, nil
	}

	s := make([]float64, len(v))
	groups[0] = make([]string, 0, len(v))
	groups[1] = make([]string, 0, len(v))
	for i, vi := range v {
		if vi < 0 {
			s[i] = 1
			groups[0] = append(groups[0], m.nodeIDs[i])
		} else {
			s[i] = -1
			groups[1] = append(groups[1], m.nodeIDs[i])
		}
	}

	dq, err := splitGain(local, s, g.edgeCount)
	if err != nil {
		return 0, groups, fmt.Errorf("EigenDivide: %w", err)
	}
	m.assignment = s
	m.deltaQ = dq

	return dq, groups, nil
}

// QuickDivide is the eigen split without refinement.
func (m *Module) QuickDivide(g *Graph, opts ...matrix.Option) (float64, [2][]string, error) {
	return m.EigenDivide(g, opts...)
}

// SlowDivide runs EigenDivide and, when group1 is non-empty, FineTune on the result.
func (m *Module) SlowDivide(g *Graph, opts ...matrix.Option) (float64, [2][]string, error) {
	dq, groups, err := m.EigenDivide(g, opts...)
	if err != nil || len(groups[0]) == 0 {
		return dq, groups, err
	}
	refined, err := m.FineTune(groups[0], groups[1], g)
	if err != nil {
		return 0, groups, fmt.Errorf("SlowDivide: %w", err)
	}

	return m.deltaQ, refined, nil
}

// splitGain evaluates (1/(4m)) Σ_ij (s_i s_j − 1) B_ij = (sᵀBs − ΣB)/(4m).
func splitGain(local *matrix.Dense, s []float64, m int) (float64, error) {
	quad, err := local.QuadForm(s)
	if err != nil {
		return 0, err
	}

	return (quad - local.Sum()) / (4 * float64(m)), nil
}
