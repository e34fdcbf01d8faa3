// SPDX-License-Identifier: MIT

package community

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Split records one accepted bisection.
type Split struct {
	Level      int     `json:"level" yaml:"level"`
	ParentSize int     `json:"parent_size" yaml:"parent_size"`
	Sizes      [2]int  `json:"sizes" yaml:"sizes"`
	DeltaQ     float64 `json:"delta_q" yaml:"delta_q"`
}

// Result is the outcome of a partition run.
type Result struct {
	Q      float64    `json:"q" yaml:"q"`           // sum of accepted gains
	Groups [][]string `json:"groups" yaml:"groups"` // leaf modules, disjoint, covering every node
	Splits []Split    `json:"splits" yaml:"splits"` // accepted bisections in order
	Levels int        `json:"levels" yaml:"levels"` // driver sweeps performed
}

// Partitioner drives recursive bisection over a primed Graph.
type Partitioner struct {
	opts Options
}

// NewPartitioner resolves opts against the defaults.
func NewPartitioner(opts ...Option) *Partitioner {
	return &Partitioner{opts: gatherOptions(opts...)}
}

// Partition builds and primes a Graph from nodes and edges, then runs the driver.
// Errors: ErrMalformedGraph, ErrDegenerateGraph, matrix.ErrMatrixEigenFailed.
func Partition(nodes []string, edges []Edge, opts ...Option) (*Result, error) {
	g, err := NewGraph(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("Partition: %w", err)
	}

	return NewPartitioner(opts...).Run(g)
}

// Run partitions g (priming it first when needed).
// Implementation:
//   - Stage 1: seed a single pending Module covering every node.
//   - Stage 2: per sweep, snapshot the pending modules in creation order and
//     divide each (quick, or slow with WithRefinement), up to WithWorkers at
//     a time. Outcomes are applied in snapshot order, so the result does not
//     depend on the worker count.
//   - Stage 3: accept a split iff deltaQ > 0 and both groups are non-empty:
//     remove the parent in place, append both children, add deltaQ to Q.
//     Otherwise the module stays as a leaf.
//   - Stage 4: halt when no module is pending.
//
// Complexity:
//   - O(depth · n³) dominated by the eigen decompositions.
func (p *Partitioner) Run(g *Graph) (*Result, error) {
	return p.RunContext(context.Background(), g)
}

// RunContext is Run with cancellation, checked before every module division.
// A cancelled run returns ctx.Err() wrapped.
func (p *Partitioner) RunContext(ctx context.Context, g *Graph) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("Run: %w", ErrMalformedGraph)
	}
	if err := g.Prime(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log := p.opts.logger
	started := time.Now()
	log.Info().
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Bool("refine", p.opts.refine).
		Int("workers", p.opts.workers).
		Msg("partition start")

	root, err := NewModule(g, g.nodes)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	modules := []*Module{root}
	res := &Result{}

	for level := 0; ; level++ {
		pending := pendingOf(modules)
		if len(pending) == 0 {
			break
		}
		if p.opts.levelLimit > 0 && level >= p.opts.levelLimit {
			for _, mod := range pending {
				mod.divisible = false
			}
			log.Info().Int("level", level).Int("pending", len(pending)).Msg("level limit reached")
			break
		}
		res.Levels++
		log.Debug().Int("level", level).Int("pending", len(pending)).Msg("sweep")

		outcomes, err := p.divideAll(ctx, pending, g)
		if err != nil {
			return nil, fmt.Errorf("Run: level %d: %w", level, err)
		}
		for i, mod := range pending {
			dq, groups := outcomes[i].deltaQ, outcomes[i].groups
			if dq <= 0 || len(groups[0]) == 0 || len(groups[1]) == 0 {
				log.Debug().Int("size", mod.Size()).Float64("delta_q", dq).Msg("leaf")
				continue
			}

			children := make([]*Module, 0, 2)
			for _, grp := range groups {
				child, err := NewModule(g, grp)
				if err != nil {
					return nil, fmt.Errorf("Run: level %d: %w", level, err)
				}
				children = append(children, child)
			}
			modules = append(removeModule(modules, mod), children...)
			res.Q += dq

			s := Split{
				Level:      level,
				ParentSize: mod.Size(),
				Sizes:      [2]int{len(groups[0]), len(groups[1])},
				DeltaQ:     dq,
			}
			res.Splits = append(res.Splits, s)
			log.Debug().
				Int("size", s.ParentSize).
				Ints("children", s.Sizes[:]).
				Float64("delta_q", dq).
				Msg("split accepted")
			if p.opts.progress != nil {
				p.opts.progress(s)
			}
		}
	}

	res.Groups = make([][]string, len(modules))
	for i, mod := range modules {
		res.Groups[i] = mod.Nodes()
	}
	log.Info().
		Int("groups", len(res.Groups)).
		Float64("q", res.Q).
		Int("levels", res.Levels).
		Dur("elapsed", time.Since(started)).
		Msg("partition done")

	return res, nil
}

type outcome struct {
	deltaQ float64
	groups [2][]string
}

// divideAll divides every pending module, at most p.opts.workers at once.
// Modules share only the read-only Graph.
func (p *Partitioner) divideAll(ctx context.Context, pending []*Module, g *Graph) ([]outcome, error) {
	out := make([]outcome, len(pending))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.opts.workers)
	for i, mod := range pending {
		i, mod := i, mod
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dq, groups, err := p.divide(mod, g)
			if err != nil {
				return err
			}
			out[i] = outcome{deltaQ: dq, groups: groups}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (p *Partitioner) divide(mod *Module, g *Graph) (float64, [2][]string, error) {
	if p.opts.refine {
		return mod.SlowDivide(g, p.opts.eigenOpts...)
	}

	return mod.QuickDivide(g, p.opts.eigenOpts...)
}

// pendingOf snapshots the divisible modules in creation order.
func pendingOf(modules []*Module) []*Module {
	out := make([]*Module, 0, len(modules))
	for _, m := range modules {
		if m.divisible {
			out = append(out, m)
		}
	}

	return out
}

// removeModule deletes target from modules, preserving the order of the rest.
func removeModule(modules []*Module, target *Module) []*Module {
	for i, m := range modules {
		if m == target {
			return append(modules[:i], modules[i+1:]...)
		}
	}

	return modules
}

// Modularity recomputes Q = (1/(2m)) Σ_ij δ(c_i, c_j) B_ij for an arbitrary
// partition of g. Groups must cover every node exactly once.
// Errors: ErrNotPrimed, ErrUnknownNode, ErrInvalidPartition.
// Complexity: Σ_c |c|².
func Modularity(g *Graph, groups [][]string) (float64, error) {
	if g == nil || !g.primed {
		return 0, fmt.Errorf("Modularity: %w", ErrNotPrimed)
	}
	covered := 0
	seen := make(map[string]struct{}, g.NodeCount())
	var q float64
	for ci, grp := range groups {
		for _, id := range grp {
			if _, dup := seen[id]; dup {
				return 0, fmt.Errorf("Modularity: %q in more than one group: %w", id, ErrInvalidPartition)
			}
			seen[id] = struct{}{}
		}
		covered += len(grp)
		c, err := groupContribution(g, grp)
		if err != nil {
			return 0, fmt.Errorf("Modularity: group %d: %w", ci, err)
		}
		q += c
	}
	if covered != g.NodeCount() {
		return 0, fmt.Errorf("Modularity: %d of %d nodes covered: %w", covered, g.NodeCount(), ErrInvalidPartition)
	}

	return q, nil
}

// groupContribution returns (1/(2m)) Σ_{i,j ∈ grp} B_ij.
func groupContribution(g *Graph, grp []string) (float64, error) {
	if len(grp) == 0 {
		return 0, nil
	}
	coords, err := g.coordsOf(grp)
	if err != nil {
		return 0, err
	}
	sub, err := g.modularity.Induced(coords, coords)
	if err != nil {
		return 0, err
	}

	return sub.Sum() / (2 * float64(g.edgeCount)), nil
}
