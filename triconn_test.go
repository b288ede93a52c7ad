package triconn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pechang03/triconn"
	"github.com/pechang03/triconn/graph"
)

// componentSets converts Result.Components into a slice of vertex-id sets
// for order-independent comparison in tests.
func componentSets(t *testing.T, comps [][]graph.VertexID) []map[graph.VertexID]bool {
	t.Helper()
	out := make([]map[graph.VertexID]bool, 0, len(comps))
	for _, c := range comps {
		s := make(map[graph.VertexID]bool, len(c))
		for _, v := range c {
			s[v] = true
		}
		out = append(out, s)
	}
	return out
}

func requireSingleComponentOf(t *testing.T, res triconn.Result, vs []graph.VertexID) {
	t.Helper()
	require.Len(t, res.Components, 1)
	require.ElementsMatch(t, vs, res.Components[0])
}

func TestComputeEmptyGraph(t *testing.T) {
	g := graph.NewGraph()
	res, err := triconn.Compute(g)
	require.NoError(t, err)
	require.Empty(t, res.Components)
	require.Empty(t, res.Bridges)
	require.Empty(t, res.CutEdges)
	require.Empty(t, res.Deg1After)
	require.NoError(t, res.Diagnostics)
}

func TestComputeSingleVertex(t *testing.T) {
	g := graph.NewGraph()
	v := g.NewVertex()
	res, err := triconn.Compute(g)
	require.NoError(t, err)
	requireSingleComponentOf(t, res, []graph.VertexID{v})
	require.Empty(t, res.Bridges)
}

func TestComputeSingleEdgeIsOneComponentNoBridge(t *testing.T) {
	// A lone edge is trivially biconnected; both endpoints land in one
	// component and the edge is not reported as a bridge.
	g := graph.NewGraph()
	a, b := g.NewVertex(), g.NewVertex()
	_, err := g.NewEdge(a, b)
	require.NoError(t, err)

	res, err := triconn.Compute(g)
	require.NoError(t, err)
	requireSingleComponentOf(t, res, []graph.VertexID{a, b})
	require.Empty(t, res.Bridges)
	require.Empty(t, res.CutEdges)
}

func cycle(t *testing.T, n int) (*graph.Graph, []graph.VertexID) {
	t.Helper()
	g := graph.NewGraph()
	vs := make([]graph.VertexID, n)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	for i := 0; i < n; i++ {
		_, err := g.NewEdge(vs[i], vs[(i+1)%n])
		require.NoError(t, err)
	}
	return g, vs
}

func TestComputeSimpleCycleIsOneComponent(t *testing.T) {
	for n := 3; n <= 8; n++ {
		g, vs := cycle(t, n)
		res, err := triconn.Compute(g)
		require.NoError(t, err)
		requireSingleComponentOf(t, res, vs)
		require.Empty(t, res.Bridges)
		require.Empty(t, res.CutEdges)
	}
}

func completeGraph(t *testing.T, n int) (*graph.Graph, []graph.VertexID) {
	t.Helper()
	g := graph.NewGraph()
	vs := make([]graph.VertexID, n)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, err := g.NewEdge(vs[i], vs[j])
			require.NoError(t, err)
		}
	}
	return g, vs
}

func TestComputeCompleteGraphIsOneComponent(t *testing.T) {
	// A complete graph on n >= 4 vertices is always one component.
	for n := 4; n <= 6; n++ {
		g, vs := completeGraph(t, n)
		res, err := triconn.Compute(g)
		require.NoError(t, err)
		requireSingleComponentOf(t, res, vs)
		require.Empty(t, res.Bridges)
		require.Empty(t, res.CutEdges)
	}
}

func TestComputeCycleWithChordIsOneComponent(t *testing.T) {
	g := graph.NewGraph()
	vs := make([]graph.VertexID, 4)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	for _, pair := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		_, err := g.NewEdge(vs[pair[0]], vs[pair[1]])
		require.NoError(t, err)
	}

	res, err := triconn.Compute(g)
	require.NoError(t, err)
	requireSingleComponentOf(t, res, vs)
	require.Empty(t, res.Bridges)
	require.Empty(t, res.CutEdges)
}

func TestComputeTwoTrianglesWithBridge(t *testing.T) {
	g := graph.NewGraph()
	a, b, c := g.NewVertex(), g.NewVertex(), g.NewVertex()
	d, e, f := g.NewVertex(), g.NewVertex(), g.NewVertex()
	for _, pair := range [][2]graph.VertexID{{a, b}, {b, c}, {c, a}, {d, e}, {e, f}, {f, d}} {
		_, err := g.NewEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	bridge, err := g.NewEdge(c, d)
	require.NoError(t, err)

	res, err := triconn.Compute(g)
	require.NoError(t, err)
	require.Equal(t, []graph.EdgeID{bridge}, res.Bridges)
	require.Empty(t, res.CutEdges)

	sets := componentSets(t, res.Components)
	require.Len(t, sets, 2)
	want := []map[graph.VertexID]bool{
		{a: true, b: true, c: true},
		{d: true, e: true, f: true},
	}
	require.ElementsMatch(t, want, sets)
}

func TestComputeThetaGraphIsOneComponent(t *testing.T) {
	g := graph.NewGraph()
	a, b := g.NewVertex(), g.NewVertex()
	m1, m2, m3 := g.NewVertex(), g.NewVertex(), g.NewVertex()
	for _, m := range []graph.VertexID{m1, m2, m3} {
		_, err := g.NewEdge(a, m)
		require.NoError(t, err)
		_, err = g.NewEdge(m, b)
		require.NoError(t, err)
	}

	res, err := triconn.Compute(g)
	require.NoError(t, err)
	requireSingleComponentOf(t, res, []graph.VertexID{a, b, m1, m2, m3})
	require.Empty(t, res.Bridges)
	require.Empty(t, res.CutEdges)
}

func TestComputeTwoTrianglesWithTwoParallelJoinEdgesStaySeparate(t *testing.T) {
	// Two parallel join edges are 2-edge-connected across the join but not
	// 3-edge-connected, so the triangles stay as separate components and
	// both join edges are cut-edges, not bridges.
	g := graph.NewGraph()
	a, b, c := g.NewVertex(), g.NewVertex(), g.NewVertex()
	d, e, f := g.NewVertex(), g.NewVertex(), g.NewVertex()
	for _, pair := range [][2]graph.VertexID{{a, b}, {b, c}, {c, a}, {d, e}, {e, f}, {f, d}} {
		_, err := g.NewEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	j1, err := g.NewEdge(c, d)
	require.NoError(t, err)
	j2, err := g.NewEdge(c, d)
	require.NoError(t, err)

	res, err := triconn.Compute(g)
	require.NoError(t, err)
	require.Empty(t, res.Bridges)

	sets := componentSets(t, res.Components)
	require.Len(t, sets, 2)
	want := []map[graph.VertexID]bool{
		{a: true, b: true, c: true},
		{d: true, e: true, f: true},
	}
	require.ElementsMatch(t, want, sets)
	require.ElementsMatch(t, []graph.EdgeID{j1, j2}, res.CutEdges)
}

func TestComputeNilGraph(t *testing.T) {
	_, err := triconn.Compute(nil)
	require.Error(t, err)
}

func TestComputeParallelMatchesSequential(t *testing.T) {
	g := graph.NewGraph()
	a, b, c := g.NewVertex(), g.NewVertex(), g.NewVertex()
	d, e, f := g.NewVertex(), g.NewVertex(), g.NewVertex()
	for _, pair := range [][2]graph.VertexID{{a, b}, {b, c}, {c, a}, {d, e}, {e, f}, {f, d}} {
		_, err := g.NewEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	_, err := g.NewEdge(c, d)
	require.NoError(t, err)

	seq, err := triconn.Compute(g)
	require.NoError(t, err)

	g2 := graph.NewGraph()
	a2, b2, c2 := g2.NewVertex(), g2.NewVertex(), g2.NewVertex()
	d2, e2, f2 := g2.NewVertex(), g2.NewVertex(), g2.NewVertex()
	for _, pair := range [][2]graph.VertexID{{a2, b2}, {b2, c2}, {c2, a2}, {d2, e2}, {e2, f2}, {f2, d2}} {
		_, err := g2.NewEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	_, err = g2.NewEdge(c2, d2)
	require.NoError(t, err)

	par, err := triconn.Compute(g2, triconn.WithParallel(4))
	require.NoError(t, err)

	require.Equal(t, len(seq.Components), len(par.Components))
	require.Equal(t, len(seq.Bridges), len(par.Bridges))
}
