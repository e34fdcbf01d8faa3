// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

var (
	// ErrStartVertexNotFound is returned when a start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil neighbor source is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors wraps a failing Neighbors call.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Neighborer is the read-only view a walk needs: membership and an ordered
// neighbor list.
type Neighborer interface {
	HasNode(id string) bool
	Neighbors(id string) ([]string, error)
}

// Option tunes a walk.
type Option func(*options)

type options struct {
	ctx  context.Context
	keep func(from, to string) bool
}

func gather(opts []Option) options {
	o := options{
		ctx:  context.Background(),
		keep: func(string, string) bool { return true },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithContext aborts the walk between layers once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithEdgeFilter follows the edge from→to only when keep returns true.
func WithEdgeFilter(keep func(from, to string) bool) Option {
	return func(o *options) {
		if keep != nil {
			o.keep = keep
		}
	}
}

// Tree is the outcome of one BFS.
type Tree struct {
	Order []string       // visit sequence, start first
	Depth map[string]int // hops from the start
}

// Eccentricity returns the largest depth reached, 0 for a lone start.
func (t *Tree) Eccentricity() int {
	var ecc int
	for _, d := range t.Depth {
		if d > ecc {
			ecc = d
		}
	}

	return ecc
}
