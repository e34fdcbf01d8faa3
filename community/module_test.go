package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modularity/builder"
	"github.com/katalvlaran/modularity/community"
	"github.com/katalvlaran/modularity/matrix"
)

func TestNewModule_Errors(t *testing.T) {
	t.Parallel()

	el := twoCliques(t)
	raw, err := el.Graph()
	require.NoError(t, err)
	_, err = community.NewModule(raw, el.Nodes)
	assert.ErrorIs(t, err, community.ErrNotPrimed)
	_, err = community.NewModule(nil, el.Nodes)
	assert.ErrorIs(t, err, community.ErrNotPrimed)

	g := primed(t, el.Nodes, el.Edges)
	_, err = community.NewModule(g, nil)
	assert.ErrorIs(t, err, community.ErrMalformedGraph)
	_, err = community.NewModule(g, []string{"a0", "zz"})
	assert.ErrorIs(t, err, community.ErrUnknownNode)
	_, err = community.NewModule(g, []string{"a0", "a0"})
	assert.ErrorIs(t, err, community.ErrMalformedGraph)
}

func TestModule_FreshState(t *testing.T) {
	t.Parallel()

	el := twoCliques(t)
	g := primed(t, el.Nodes, el.Edges)
	ids := []string{"b1", "a2"}
	mod, err := community.NewModule(g, ids)
	require.NoError(t, err)

	ids[0] = "mutated"
	assert.Equal(t, []string{"b1", "a2"}, mod.Nodes())
	assert.Equal(t, 2, mod.Size())
	assert.True(t, mod.Divisible())
	assert.Zero(t, mod.DeltaQ())
	assert.Nil(t, mod.Assignment())
}

func TestModule_FetchLocalMatrix(t *testing.T) {
	t.Parallel()

	el := twoCliques(t)
	g := primed(t, el.Nodes, el.Edges)
	ids := []string{"b0", "a0", "a3"}
	mod, err := community.NewModule(g, ids)
	require.NoError(t, err)

	local, err := mod.FetchLocalMatrix(g)
	require.NoError(t, err)
	again, err := mod.FetchLocalMatrix(g)
	require.NoError(t, err)
	assert.Same(t, local, again, "local matrix is cached")
	require.Equal(t, 3, local.Rows())

	for p, u := range ids {
		for q, v := range ids {
			iu, err := g.Index(u)
			require.NoError(t, err)
			iv, err := g.Index(v)
			require.NoError(t, err)
			want, err := g.ModularityAt(iu, iv)
			require.NoError(t, err)
			got, err := local.At(p, q)
			require.NoError(t, err)
			assert.Equal(t, want, got, "B[%s][%s]", u, v)
		}
	}
}

func TestEigenDivide_TwoCliques(t *testing.T) {
	t.Parallel()

	for _, solver := range []matrix.Solver{matrix.SolverGonum, matrix.SolverJacobi} {
		solver := solver
		t.Run(solver.String(), func(t *testing.T) {
			t.Parallel()
			el := twoCliques(t)
			g := primed(t, el.Nodes, el.Edges)
			mod, err := community.NewModule(g, el.Nodes)
			require.NoError(t, err)

			dq, groups, err := mod.EigenDivide(g, matrix.WithSolver(solver))
			require.NoError(t, err)
			assert.InDelta(t, 0.5, dq, 1e-9)
			assert.Equal(t, dq, mod.DeltaQ())
			assert.False(t, mod.Divisible())
			assert.Equal(t,
				[][]string{{"a0", "a1", "a2", "a3"}, {"b0", "b1", "b2", "b3"}},
				canonical(groups[:]))

			// Assignment is parallel to the module order: +1 for group1, −1 for group2.
			s := mod.Assignment()
			in1 := make(map[string]bool)
			for _, id := range groups[0] {
				in1[id] = true
			}
			for i, id := range mod.Nodes() {
				if in1[id] {
					assert.Equal(t, 1.0, s[i], id)
				} else {
					assert.Equal(t, -1.0, s[i], id)
				}
			}
		})
	}
}

func TestEigenDivide_Indivisible(t *testing.T) {
	t.Parallel()

	el, err := builder.Build(nil, builder.Complete(5))
	require.NoError(t, err)
	g := primed(t, el.Nodes, el.Edges)
	mod, err := community.NewModule(g, el.Nodes)
	require.NoError(t, err)

	dq, groups, err := mod.EigenDivide(g)
	require.NoError(t, err)
	assert.InDelta(t, 0, dq, 1e-9)
	assert.True(t, len(groups[0]) == 0 || len(groups[1]) == 0, "no proper split of K5: %v", groups)
	assert.False(t, mod.Divisible())
}

func TestEigenDivide_SingleNodeModule(t *testing.T) {
	t.Parallel()

	el := twoCliques(t)
	g := primed(t, el.Nodes, el.Edges)
	mod, err := community.NewModule(g, []string{"a0"})
	require.NoError(t, err)

	// B[a0][a0] = −k²/(2m) < 0, so there is nothing to split.
	dq, groups, err := mod.EigenDivide(g)
	require.NoError(t, err)
	assert.Zero(t, dq)
	assert.Empty(t, groups[0])
	assert.Empty(t, groups[1])
	assert.Nil(t, mod.Assignment())
}

func TestFineTune_RepairsSwappedNodes(t *testing.T) {
	t.Parallel()

	el := twoCliques(t)
	g := primed(t, el.Nodes, el.Edges)
	mod, err := community.NewModule(g, el.Nodes)
	require.NoError(t, err)

	// a0 and b0 start on the wrong sides (Q of this split is 0).
	g1 := []string{"b0", "a1", "a2", "a3"}
	g2 := []string{"a0", "b1", "b2", "b3"}
	out, err := mod.FineTune(g1, g2, g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mod.DeltaQ(), 1e-12)
	assert.Equal(t,
		[][]string{{"a0", "a1", "a2", "a3"}, {"b0", "b1", "b2", "b3"}},
		canonical(out[:]))

	assert.Equal(t, []string{"b0", "a1", "a2", "a3"}, g1, "inputs are not modified")
	assert.Equal(t, []string{"a0", "b1", "b2", "b3"}, g2)
}

func TestFineTune_KeepsOptimalSplit(t *testing.T) {
	t.Parallel()

	el := twoCliques(t)
	g := primed(t, el.Nodes, el.Edges)
	mod, err := community.NewModule(g, el.Nodes)
	require.NoError(t, err)

	_, groups, err := mod.EigenDivide(g)
	require.NoError(t, err)
	out, err := mod.FineTune(groups[0], groups[1], g)
	require.NoError(t, err)
	assert.Equal(t, groups, out)
	assert.InDelta(t, 0.5, mod.DeltaQ(), 1e-9)
}

func TestFineTune_Errors(t *testing.T) {
	t.Parallel()

	el := twoCliques(t)
	g := primed(t, el.Nodes, el.Edges)
	mod, err := community.NewModule(g, []string{"a0", "a1", "b0"})
	require.NoError(t, err)

	_, err = mod.FineTune([]string{"a0"}, []string{"zz"}, g)
	assert.ErrorIs(t, err, community.ErrUnknownNode)
	_, err = mod.FineTune([]string{"a0", "a1"}, []string{"a0", "b0"}, g)
	assert.ErrorIs(t, err, community.ErrInvalidPartition)
	_, err = mod.FineTune([]string{"a0"}, []string{"b0"}, g)
	assert.ErrorIs(t, err, community.ErrInvalidPartition)
	_, err = mod.FineTune([]string{"a0"}, []string{"a1", "b0"}, nil)
	assert.ErrorIs(t, err, community.ErrNotPrimed)
}

func TestSlowDivide_NeverWorseThanQuick(t *testing.T) {
	t.Parallel()

	nodes, edges := karate()
	g := primed(t, nodes, edges)

	quick, err := community.NewModule(g, nodes)
	require.NoError(t, err)
	dqQuick, _, err := quick.QuickDivide(g)
	require.NoError(t, err)

	slow, err := community.NewModule(g, nodes)
	require.NoError(t, err)
	dqSlow, groups, err := slow.SlowDivide(g)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, dqSlow+1e-12, dqQuick)
	assert.Equal(t, len(nodes), len(groups[0])+len(groups[1]))
	q, err := community.Modularity(g, groups[:])
	require.NoError(t, err)
	assert.InDelta(t, dqSlow, q, 1e-9, "root split gain equals Q of the two-group partition")
}
