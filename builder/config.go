// SPDX-License-Identifier: MIT
// Package: modularity/builder
//
// config.go - resolved, immutable configuration for constructors.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is resolved once per Build call and passed by value, so a
// Scoped block can narrow it without affecting siblings.
type builderConfig struct {
	// idFn maps a topology-local index to a vertex ID.
	idFn func(int) string
	// rng drives stochastic constructors; nil unless WithSeed/WithRand is set.
	rng *rand.Rand
	// scope is prepended to every generated or linked ID.
	scope string
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: decimalID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// id returns the scoped ID for index i.
func (c builderConfig) id(i int) string {
	return c.scope + c.idFn(i)
}

// named returns the scoped form of a fixed label ("Center", "r,c", ...).
func (c builderConfig) named(label string) string {
	return c.scope + label
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}
