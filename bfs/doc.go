// SPDX-License-Identifier: MIT

// Package bfs walks a Neighborer breadth-first.
//
// What
//
//   - BFS records visit order and hop distance from one start vertex;
//     Tree.Eccentricity is the largest distance reached.
//   - Components splits an id list into connected pieces.
//   - WithEdgeFilter restricts both to a subgraph (community diagnostics
//     only follow edges that stay inside one group).
//
// Determinism
//
//	Neighbors are expanded in the order Neighborer.Neighbors returns them, so a
//	source with a stable neighbor order yields a reproducible visit sequence.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per walk
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the neighbor source is nil.
//   - ErrStartVertexNotFound  if a start vertex does not exist.
//   - ErrNeighbors            if Neighbors fails for any vertex.
//   - the context error once a WithContext context is done.
package bfs
