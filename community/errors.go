// SPDX-License-Identifier: MIT
// Package community: sentinel error set.
// Kernels return these sentinels wrapped with call-site context
// (fmt.Errorf("Op: %w", ErrX)); callers match with errors.Is.

package community

import "errors"

var (
	// ErrMalformedGraph indicates an empty node or edge list at construction,
	// a repeated node id, or an edge naming a node outside the node list.
	ErrMalformedGraph = errors.New("community: malformed graph")

	// ErrDegenerateGraph indicates zero edges at priming time; the modularity
	// matrix would divide by zero.
	ErrDegenerateGraph = errors.New("community: graph has no edges")

	// ErrNotPrimed indicates that derived matrices were requested before Prime.
	ErrNotPrimed = errors.New("community: graph is not primed")

	// ErrUnknownNode indicates a node id that is not part of the graph.
	ErrUnknownNode = errors.New("community: unknown node")

	// ErrNodeNotInGroups indicates a relocation of a node that belongs to
	// neither side of a bisection.
	ErrNodeNotInGroups = errors.New("community: node not in either group")

	// ErrInvalidPartition indicates groups that do not cover every graph node
	// exactly once.
	ErrInvalidPartition = errors.New("community: groups are not a partition of the graph")
)
