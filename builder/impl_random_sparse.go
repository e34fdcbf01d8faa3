// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) and the planted partition model.
//
// Contract:
//   - Pairs i<j are visited in stable lexicographic order; one RNG draw per pair.
//   - p ∈ {0, 1} needs no RNG; any other p requires WithSeed/WithRand.
//
// Determinism:
//   - Same seed, sizes and probabilities ⇒ identical edge lists.

package builder

import (
	"fmt"
	"math/rand"
)

// RandomSparse returns a Constructor for G(n,p): every unordered pair is
// joined independently with probability p.
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomSparse, p, cfg.rng); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			el.AddNode(cfg.id(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !draw(cfg.rng, p) {
					continue
				}
				if err := el.AddEdge(cfg.id(i), cfg.id(j)); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}

// PlantedPartition returns a Constructor for the planted l-partition model:
// groups blocks of size nodes each; a pair inside one block is joined with
// probability pIn, a pair across blocks with pOut. Vertex i belongs to block
// i / size, so ground truth is recoverable from the index.
// Complexity: O((groups·size)²) pair checks.
func PlantedPartition(groups, size int, pIn, pOut float64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if groups < MinPartitionSize || size < MinPartitionSize {
			return fmt.Errorf("%s: groups=%d, size=%d (each must be ≥ %d): %w",
				methodPlantedPartition, groups, size, MinPartitionSize, ErrTooFewVertices)
		}
		if err := checkProbability(methodPlantedPartition, pIn, cfg.rng); err != nil {
			return err
		}
		if err := checkProbability(methodPlantedPartition, pOut, cfg.rng); err != nil {
			return err
		}

		n := groups * size
		for i := 0; i < n; i++ {
			el.AddNode(cfg.id(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := pOut
				if i/size == j/size {
					p = pIn
				}
				if !draw(cfg.rng, p) {
					continue
				}
				if err := el.AddEdge(cfg.id(i), cfg.id(j)); err != nil {
					return fmt.Errorf("%s: %w", methodPlantedPartition, err)
				}
			}
		}

		return nil
	}
}

func checkProbability(method string, p float64, rng *rand.Rand) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	if rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// draw reports a success with probability p; the boundary values never
// consume randomness.
func draw(rng *rand.Rand, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	}

	return rng.Float64() < p
}
