// SPDX-License-Identifier: MIT

package community

import (
	"runtime"

	"github.com/katalvlaran/modularity/matrix"
	"github.com/rs/zerolog"
)

const (
	// DefaultRefinement leaves FineTune off (quick mode).
	DefaultRefinement = false
	// DefaultWorkers divides one module at a time.
	DefaultWorkers = 1
)

// ProgressFunc observes every accepted split, in acceptance order.
type ProgressFunc func(s Split)

// Option configures a Partitioner.
type Option func(*Options)

// Options holds the resolved Partitioner configuration.
type Options struct {
	refine     bool
	logger     zerolog.Logger
	progress   ProgressFunc
	eigenOpts  []matrix.Option
	levelLimit int // 0 = unlimited
	workers    int
}

// WithRefinement toggles slow mode: every eigen split is followed by FineTune.
func WithRefinement(on bool) Option {
	return func(o *Options) { o.refine = on }
}

// WithLogger routes driver events to l. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithProgress registers fn for accepted splits; nil clears it.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) { o.progress = fn }
}

// WithEigenOptions forwards solver settings (matrix.WithSolver, tolerances)
// to every decomposition.
func WithEigenOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.eigenOpts = append(o.eigenOpts, opts...) }
}

// WithMaxLevels stops the driver after n sweeps; modules still pending at
// that point become leaves. Panics when n < 0; 0 means unlimited.
func WithMaxLevels(n int) Option {
	if n < 0 {
		panic("community: WithMaxLevels: n must be >= 0")
	}

	return func(o *Options) { o.levelLimit = n }
}

// WithWorkers bounds how many pending modules of one sweep are divided
// concurrently. 0 means runtime.GOMAXPROCS(0); panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("community: WithWorkers: n must be >= 0")
	}
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return func(o *Options) { o.workers = n }
}

func defaultOptions() Options {
	return Options{
		refine:  DefaultRefinement,
		logger:  zerolog.Nop(),
		workers: DefaultWorkers,
	}
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
