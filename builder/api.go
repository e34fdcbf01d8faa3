// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, cons...). Creates an EdgeList, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical node and edge lists.
//   - Safety: never panic at runtime; constructors return sentinel errors.
//
// Hints:
//   - Compose Scoped(...) blocks and Link(...) bridges to assemble community fixtures.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, PlantedPartition).

package builder

import (
	"fmt"

	"github.com/katalvlaran/modularity/community"
)

// EdgeList is the construction target: an ordered node list and an ordered
// undirected edge list, ready for community.NewGraph.
//
// Nodes are registered once (re-adding is a no-op) so constructors that share
// vertices compose cleanly. Edges are appended verbatim; parallel edges and
// self-loops are kept.
type EdgeList struct {
	Nodes []string         `json:"nodes" yaml:"nodes"`
	Edges []community.Edge `json:"edges" yaml:"edges"`

	seen map[string]struct{}
}

// NewEdgeList returns an empty EdgeList.
func NewEdgeList() *EdgeList {
	return &EdgeList{seen: make(map[string]struct{})}
}

// AddNode registers id, keeping first-insertion order. Re-adding is a no-op.
func (el *EdgeList) AddNode(id string) {
	if el.seen == nil {
		el.seen = make(map[string]struct{}, len(el.Nodes))
		for _, n := range el.Nodes {
			el.seen[n] = struct{}{}
		}
	}
	if _, ok := el.seen[id]; ok {
		return
	}
	el.seen[id] = struct{}{}
	el.Nodes = append(el.Nodes, id)
}

// HasNode reports whether id has been registered.
func (el *EdgeList) HasNode(id string) bool {
	if el.seen == nil {
		for _, n := range el.Nodes {
			if n == id {
				return true
			}
		}
		return false
	}
	_, ok := el.seen[id]

	return ok
}

// AddEdge appends the undirected edge {u,v}; both endpoints must exist.
func (el *EdgeList) AddEdge(u, v string) error {
	if !el.HasNode(u) {
		return fmt.Errorf("AddEdge(%s,%s): %q: %w", u, v, u, ErrUnknownVertex)
	}
	if !el.HasNode(v) {
		return fmt.Errorf("AddEdge(%s,%s): %q: %w", u, v, v, ErrUnknownVertex)
	}
	el.Edges = append(el.Edges, community.Edge{From: u, To: v})

	return nil
}

// Graph validates the lists through community.NewGraph.
func (el *EdgeList) Graph() (*community.Graph, error) {
	return community.NewGraph(el.Nodes, el.Edges)
}

// Constructor applies a deterministic mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Derive every vertex ID through cfg so Scoped prefixes apply.
//   - Preserve determinism for the same config and call order.
type Constructor func(el *EdgeList, cfg builderConfig) error

// Build creates a new EdgeList, resolves the builder configuration from
// bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "Build: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func Build(bopts []BuilderOption, cons ...Constructor) (*EdgeList, error) {
	el := NewEdgeList()
	cfg := newBuilderConfig(bopts...)
	if err := apply(el, cfg, cons); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return el, nil
}

// BuildGraph is Build followed by community.NewGraph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*community.Graph, error) {
	el, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := el.Graph()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

func apply(el *EdgeList, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return err
		}
	}

	return nil
}

// Scoped runs cons with every vertex ID prefixed by scope, so repeated
// topologies land on disjoint node sets ("a"+"0", "b"+"0", ...).
// Scopes nest: Scoped("x", Scoped("y", ...)) yields "xy0".
func Scoped(scope string, cons ...Constructor) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		inner := cfg
		inner.scope = cfg.scope + scope
		if err := apply(el, inner, cons); err != nil {
			return fmt.Errorf("%s(%q): %w", methodScoped, scope, err)
		}

		return nil
	}
}

// Link adds one edge between two existing vertices. IDs are taken verbatim
// apart from the enclosing scope, if any. u == v yields a self-loop.
func Link(u, v string) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		a, b := cfg.named(u), cfg.named(v)
		if err := el.AddEdge(a, b); err != nil {
			return fmt.Errorf("%s: %w", methodLink, err)
		}

		return nil
	}
}

// Isolated adds n vertices without edges.
func Isolated(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodIsolated, n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			el.AddNode(cfg.id(i))
		}

		return nil
	}
}
