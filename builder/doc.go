// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph fixtures as node and edge
// lists for the community package.
//
// Components:
//
//   - Build / BuildGraph: resolve BuilderOption values once, run Constructors
//     in order, and return an EdgeList (or a community.Graph).
//   - Topologies: Complete, Cycle, Path, Star, CompleteBipartite, Grid.
//   - Stochastic: RandomSparse (G(n,p)) and PlantedPartition (dense blocks,
//     sparse bridges), both reproducible under WithSeed.
//   - Composition: Scoped prefixes every ID produced inside it, Link joins
//     two existing vertices, Isolated adds edge-free vertices.
//   - ID schemes: DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical node and edge order.
//   - Option constructors panic on nonsense (nil scheme, nil RNG); constructors
//     return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrUnknownVertex, ErrConstructFailed).
//
// Example: two triangles joined by a bridge
//
//	el, err := builder.Build(nil,
//	    builder.Scoped("a", builder.Complete(3)),
//	    builder.Scoped("b", builder.Complete(3)),
//	    builder.Link("a0", "b0"),
//	)
package builder
