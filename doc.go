// Package modularity finds communities in undirected graphs by recursive
// leading-eigenvector bisection of the modularity matrix, with an optional
// greedy node-moving refinement after every split.
//
// What is in the box?
//
//	A pure-Go pipeline from an edge list to a scored partition:
//		• Graph model: adjacency, degrees and B = A − k kᵀ/(2m), built once
//		• Spectral bisection: leading eigenpair of the restricted B^(g)
//		• Refinement: single-node moves that never lower the split gain
//		• Driver: sweep-by-sweep recursion until no split improves Q
//		• Diagnostics: per-group edge counts, components and Q contribution
//		• I/O: GML and edge-list readers, text/YAML/JSON writers, a CLI
//
// Packages:
//
//	community/     Graph, Module, Partitioner, Modularity, Diagnose
//	matrix/        dense row-major storage, adjacency/degree/modularity matrices,
//	               symmetric eigen solvers (gonum EigenSym or cyclic Jacobi)
//	bfs/           breadth-first traversal and connected components
//	builder/       deterministic graph constructors for tests and benchmarks
//	graphio/       readers and writers
//	config/        viper-backed settings for the CLI
//	cmd/modsplit/  the command-line front end
//
// Quick ASCII example:
//
//	    a0───a1        b0───b1
//	    │ ╲ ╱ │        │ ╲ ╱ │
//	    │ ╱ ╲ │        │ ╱ ╲ │
//	    a2───a3────────b2───b3
//
//	two K4 blocks joined by one bridge split into {a*} and {b*}, Q ≈ 0.4231.
//
//	go install github.com/katalvlaran/modularity/cmd/modsplit@latest
//	modsplit partition karate.gml --refine
package modularity
