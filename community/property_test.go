package community_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/modularity/builder"
	"github.com/katalvlaran/modularity/community"
)

// plantedGraph is a planted partition with a path through every node, so the
// graph is connected and has edges for any seed.
func plantedGraph(blocks, size int, seed int64) (*builder.EdgeList, error) {
	return builder.Build([]builder.BuilderOption{builder.WithSeed(seed)},
		builder.PlantedPartition(blocks, size, 0.7, 0.08),
		builder.Path(blocks*size),
	)
}

func TestPartitionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	run := func(blocks, size int, seed int64, refine bool) (*builder.EdgeList, *community.Result, bool) {
		el, err := plantedGraph(blocks, size, seed)
		if err != nil {
			return nil, nil, false
		}
		res, err := community.Partition(el.Nodes, el.Edges, community.WithRefinement(refine))
		if err != nil {
			return nil, nil, false
		}
		return el, res, true
	}

	properties.Property("groups partition the node set", prop.ForAll(
		func(blocks, size int, seed int64, refine bool) bool {
			el, res, ok := run(blocks, size, seed, refine)
			if !ok {
				return false
			}
			seen := make(map[string]bool, len(el.Nodes))
			for _, grp := range res.Groups {
				if len(grp) == 0 {
					return false
				}
				for _, id := range grp {
					if seen[id] {
						return false
					}
					seen[id] = true
				}
			}
			return len(seen) == len(el.Nodes)
		},
		gen.IntRange(1, 4), gen.IntRange(2, 7), gen.Int64(), gen.Bool(),
	))

	properties.Property("accumulated Q equals recomputed modularity", prop.ForAll(
		func(blocks, size int, seed int64, refine bool) bool {
			el, res, ok := run(blocks, size, seed, refine)
			if !ok {
				return false
			}
			g, err := el.Graph()
			if err != nil || g.Prime() != nil {
				return false
			}
			q, err := community.Modularity(g, res.Groups)
			if err != nil {
				return false
			}
			return math.Abs(q-res.Q) < 1e-9
		},
		gen.IntRange(1, 4), gen.IntRange(2, 7), gen.Int64(), gen.Bool(),
	))

	properties.Property("Q is the sum of positive split gains and stays in [0,1)", prop.ForAll(
		func(blocks, size int, seed int64, refine bool) bool {
			_, res, ok := run(blocks, size, seed, refine)
			if !ok {
				return false
			}
			var sum float64
			for _, s := range res.Splits {
				if s.DeltaQ <= 0 || s.Sizes[0] == 0 || s.Sizes[1] == 0 {
					return false
				}
				sum += s.DeltaQ
			}
			return math.Abs(sum-res.Q) < 1e-12 && res.Q >= 0 && res.Q < 1 &&
				len(res.Splits) == len(res.Groups)-1
		},
		gen.IntRange(1, 4), gen.IntRange(2, 7), gen.Int64(), gen.Bool(),
	))

	properties.TestingRun(t)
}
