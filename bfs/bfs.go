// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
)

// walk holds the state shared by every start of one call.
type walk struct {
	g     Neighborer
	o     options
	depth map[string]int
	order []string
}

func newWalk(g Neighborer, o options) *walk {
	return &walk{g: g, o: o, depth: make(map[string]int), order: make([]string, 0, 16)}
}

// from expands start layer by layer, skipping vertices already reached.
func (w *walk) from(start string) error {
	w.depth[start] = 0
	w.order = append(w.order, start)
	layer := []string{start}
	for d := 1; len(layer) > 0; d++ {
		if err := w.o.ctx.Err(); err != nil {
			return err
		}
		var next []string
		for _, cur := range layer {
			nbrs, err := w.g.Neighbors(cur)
			if err != nil {
				return fmt.Errorf("%w: %q: %w", ErrNeighbors, cur, err)
			}
			for _, nb := range nbrs {
				if _, seen := w.depth[nb]; seen || !w.o.keep(cur, nb) {
					continue
				}
				w.depth[nb] = d
				w.order = append(w.order, nb)
				next = append(next, nb)
			}
		}
		layer = next
	}

	return nil
}

// BFS walks g from start.
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, ctx.Err().
func BFS(g Neighborer, start string, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: %q: %w", start, ErrStartVertexNotFound)
	}
	w := newWalk(g, gather(opts))
	if err := w.from(start); err != nil {
		return nil, err
	}

	return &Tree{Order: w.order, Depth: w.depth}, nil
}

// Components partitions ids into connected pieces. Pieces are ordered by
// their first member in ids, members by visit order. Vertices reached
// outside ids are included unless an edge filter keeps the walk inside.
// Complexity: O(V + E) over the subgraph walked.
func Components(g Neighborer, ids []string, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalk(g, gather(opts))
	var comps [][]string
	for _, id := range ids {
		if _, seen := w.depth[id]; seen {
			continue
		}
		if !g.HasNode(id) {
			return nil, fmt.Errorf("bfs: component seed %q: %w", id, ErrStartVertexNotFound)
		}
		start := len(w.order)
		if err := w.from(id); err != nil {
			return nil, err
		}
		comps = append(comps, append([]string(nil), w.order[start:]...))
	}

	return comps, nil
}
