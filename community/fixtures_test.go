package community_test

import (
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	gcommunity "gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/modularity/builder"
	"github.com/katalvlaran/modularity/community"
)

// karateClub is Zachary's karate club (34 members, 78 ties), 1-indexed upper triangle.
var karateClub = map[int][]int{
	1:  {2, 3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 14, 18, 20, 22, 32},
	2:  {3, 4, 8, 14, 18, 20, 22, 31},
	3:  {4, 8, 9, 10, 14, 28, 29, 33},
	4:  {8, 13, 14},
	5:  {7, 11},
	6:  {7, 11, 17},
	7:  {17},
	9:  {31, 33, 34},
	10: {34},
	14: {34},
	15: {33, 34},
	16: {33, 34},
	19: {33, 34},
	20: {34},
	21: {33, 34},
	23: {33, 34},
	24: {26, 28, 30, 33, 34},
	25: {26, 28, 32},
	26: {32},
	27: {30, 34},
	28: {34},
	29: {32, 34},
	30: {33, 34},
	31: {33, 34},
	32: {33, 34},
	33: {34},
}

// karate returns node ids "1".."34" and the 78 edges in ascending order.
func karate() ([]string, []community.Edge) {
	nodes := make([]string, 34)
	for i := range nodes {
		nodes[i] = strconv.Itoa(i + 1)
	}
	var edges []community.Edge
	for u := 1; u <= 34; u++ {
		for _, v := range karateClub[u] {
			edges = append(edges, community.Edge{From: strconv.Itoa(u), To: strconv.Itoa(v)})
		}
	}

	return nodes, edges
}

// twoCliques is two disjoint K4 blocks "a0".."a3" and "b0".."b3".
func twoCliques(t testing.TB) *builder.EdgeList {
	t.Helper()
	el, err := builder.Build(nil,
		builder.Scoped("a", builder.Complete(4)),
		builder.Scoped("b", builder.Complete(4)),
	)
	require.NoError(t, err)

	return el
}

// barbell is two K5 blocks joined by a single bridge a0-b0.
func barbell(t testing.TB) *builder.EdgeList {
	t.Helper()
	el, err := builder.Build(nil,
		builder.Scoped("a", builder.Complete(5)),
		builder.Scoped("b", builder.Complete(5)),
		builder.Link("a0", "b0"),
	)
	require.NoError(t, err)

	return el
}

func primed(t testing.TB, nodes []string, edges []community.Edge) *community.Graph {
	t.Helper()
	g, err := community.NewGraph(nodes, edges)
	require.NoError(t, err)
	require.NoError(t, g.Prime())

	return g
}

// canonical sorts ids inside each group and then the groups themselves.
func canonical(groups [][]string) [][]string {
	out := make([][]string, len(groups))
	for i, grp := range groups {
		c := append([]string(nil), grp...)
		sort.Strings(c)
		out[i] = c
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) == 0 || len(out[j]) == 0 {
			return len(out[i]) < len(out[j])
		}
		return out[i][0] < out[j][0]
	})

	return out
}

// gonumQ scores groups with gonum's reference modularity on a simple graph.
// The input must have no self-loops or parallel edges.
func gonumQ(t testing.TB, nodes []string, edges []community.Edge, groups [][]string) float64 {
	t.Helper()
	id := make(map[string]int64, len(nodes))
	g := simple.NewUndirectedGraph()
	for i, n := range nodes {
		id[n] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(id[e.From]), T: simple.Node(id[e.To])})
	}
	comms := make([][]graph.Node, len(groups))
	for ci, grp := range groups {
		for _, n := range grp {
			comms[ci] = append(comms[ci], simple.Node(id[n]))
		}
	}

	return gcommunity.Q(g, comms, 1)
}
