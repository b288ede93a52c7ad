package triconn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pechang03/triconn"
	"github.com/pechang03/triconn/graph"
	"github.com/pechang03/triconn/internal/graphtest"
	"github.com/pechang03/triconn/internal/maxflow"
)

// randomCase is one (vertex count, extra-edge count, seed) triple a
// property test sweeps over. Sizes are kept small enough that the
// max-flow and brute-force reachability checks below stay cheap, while
// varying the extra-edge count from zero (a bare tree, every edge a
// bridge) up to moderately dense exercises both ends of the split
// pipeline.
type randomCase struct {
	n, extra int
	seed     int64
}

func randomCases() []randomCase {
	return []randomCase{
		{4, 0, 1}, {5, 1, 2}, {6, 2, 3}, {6, 4, 4},
		{8, 3, 5}, {8, 6, 6}, {10, 5, 7}, {12, 8, 8},
	}
}

// TestPropertyPartitionCoversEveryVertexExactlyOnce is property 1: the
// union of the returned components equals the input's vertex set, and
// components are pairwise disjoint.
func TestPropertyPartitionCoversEveryVertexExactlyOnce(t *testing.T) {
	for _, c := range randomCases() {
		g, vs, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)

		res, err := triconn.Compute(g)
		require.NoError(t, err)

		seen := make(map[graph.VertexID]bool, len(vs))
		for _, comp := range res.Components {
			for _, v := range comp {
				require.False(t, seen[v], "vertex %v appears in more than one component", v)
				seen[v] = true
			}
		}
		for _, v := range vs {
			require.True(t, seen[v], "vertex %v missing from every component", v)
		}
	}
}

// TestPropertyBridgeCharacterizationMatchesBruteForceReachability is
// property 2: an edge is reported as a bridge exactly when removing it
// disconnects its endpoints in the original input, checked by brute-force
// reachability rather than by trusting the biconnected sweep that produced
// res.Bridges in the first place.
func TestPropertyBridgeCharacterizationMatchesBruteForceReachability(t *testing.T) {
	for _, c := range randomCases() {
		g, _, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)
		pristine, _, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)

		res, err := triconn.Compute(g)
		require.NoError(t, err)

		reported := make(map[graph.EdgeID]bool, len(res.Bridges))
		for _, e := range res.Bridges {
			reported[e] = true
		}

		for _, e := range pristine.Edges() {
			from, to, err := pristine.Endpoints(e)
			require.NoError(t, err)
			isBridge := !reachableWithout(pristine, e, from)[to]
			require.Equal(t, isBridge, reported[e],
				"edge %v (%v-%v): brute-force bridge=%v, reported=%v", e, from, to, isBridge, reported[e])
		}
	}
}

// TestPropertyThreeEdgeConnectivityWithinComponents is property 3: for any
// two vertices in the same returned component, there are at least three
// edge-disjoint paths between them in the input — except when either of
// the two has induced degree at most two inside that component (a vertex
// of a plain cycle or bare edge, or a degree-2 path vertex the DFS folded
// into its neighbor), in which case that degree is the bound.
func TestPropertyThreeEdgeConnectivityWithinComponents(t *testing.T) {
	for _, c := range randomCases() {
		g, _, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)
		pristine, _, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)

		res, err := triconn.Compute(g)
		require.NoError(t, err)

		for _, comp := range res.Components {
			if len(comp) < 2 {
				continue
			}
			for i := 0; i < len(comp); i++ {
				for j := i + 1; j < len(comp); j++ {
					want := expectedMinEdgeDisjointPaths(pristine, comp, comp[i], comp[j])
					flow, err := maxflow.EdgeDisjointPaths(pristine, comp[i], comp[j])
					require.NoError(t, err)
					require.GreaterOrEqual(t, flow, want,
						"component %v: %v-%v have only %d edge-disjoint paths, want >= %d",
						comp, comp[i], comp[j], flow, want)
				}
			}
		}
	}
}

// TestPropertyMaximalityAcrossDifferentComponents is property 4: for any
// two vertices placed in different components, the max edge-disjoint
// paths between them in the input is at most two.
func TestPropertyMaximalityAcrossDifferentComponents(t *testing.T) {
	for _, c := range randomCases() {
		g, vs, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)
		pristine, _, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)

		res, err := triconn.Compute(g)
		require.NoError(t, err)

		compOf := make(map[graph.VertexID]int, len(vs))
		for i, comp := range res.Components {
			for _, v := range comp {
				compOf[v] = i
			}
		}

		for i := 0; i < len(vs); i++ {
			for j := i + 1; j < len(vs); j++ {
				if compOf[vs[i]] == compOf[vs[j]] {
					continue
				}
				flow, err := maxflow.EdgeDisjointPaths(pristine, vs[i], vs[j])
				require.NoError(t, err)
				require.LessOrEqual(t, flow, 2,
					"vertices %v,%v in different components have %d edge-disjoint paths",
					vs[i], vs[j], flow)
			}
		}
	}
}

// TestPropertyIdempotenceOnInducedComponentSubgraphs is property 5: running
// Compute on the induced subgraph of any returned component yields a
// single component equal to that subgraph's whole vertex set.
func TestPropertyIdempotenceOnInducedComponentSubgraphs(t *testing.T) {
	for _, c := range randomCases() {
		g, _, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)
		pristine, _, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)

		res, err := triconn.Compute(g)
		require.NoError(t, err)

		for _, comp := range res.Components {
			if len(comp) < 2 {
				continue
			}
			sub, _ := pristine.InducedSubgraph(comp)
			subRes, err := triconn.Compute(sub)
			require.NoError(t, err)
			require.Len(t, subRes.Components, 1,
				"component %v did not round-trip to a single component", comp)
			require.ElementsMatch(t, sub.Vertices(), subRes.Components[0])
		}
	}
}

// TestPropertyIsomorphismInvarianceUnderRelabeling is property 6:
// relabelling the input's vertex ids produces a correspondingly relabelled
// partition, up to component order.
func TestPropertyIsomorphismInvarianceUnderRelabeling(t *testing.T) {
	for _, c := range randomCases() {
		forRelabel, _, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)
		relabeled, mapping := graphtest.Relabel(forRelabel, graphtest.WithSeed(c.seed+1000))

		original, _, err := graphtest.Random(c.n, c.extra, graphtest.WithSeed(c.seed))
		require.NoError(t, err)

		resOrig, err := triconn.Compute(original)
		require.NoError(t, err)
		resRelabeled, err := triconn.Compute(relabeled)
		require.NoError(t, err)
		require.Equal(t, len(resOrig.Components), len(resRelabeled.Components))

		wantSets := make([]map[graph.VertexID]bool, len(resOrig.Components))
		for i, comp := range resOrig.Components {
			set := make(map[graph.VertexID]bool, len(comp))
			for _, v := range comp {
				set[mapping[v]] = true
			}
			wantSets[i] = set
		}

		matched := make([]bool, len(wantSets))
		for _, comp := range resRelabeled.Components {
			got := make(map[graph.VertexID]bool, len(comp))
			for _, v := range comp {
				got[v] = true
			}
			found := false
			for i, want := range wantSets {
				if !matched[i] && setsEqual(want, got) {
					matched[i] = true
					found = true
					break
				}
			}
			require.True(t, found, "relabeled component %v has no matching original component", comp)
		}
	}
}

// reachableWithout breadth-first searches g from start over every edge
// except excluded, returning the set of vertices reached.
func reachableWithout(g *graph.Graph, excluded graph.EdgeID, start graph.VertexID) map[graph.VertexID]bool {
	visited := map[graph.VertexID]bool{start: true}
	queue := []graph.VertexID{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range g.Incident(v) {
			if e == excluded {
				continue
			}
			other, err := g.Opposite(v, e)
			if err != nil || visited[other] {
				continue
			}
			visited[other] = true
			queue = append(queue, other)
		}
	}
	return visited
}

// expectedMinEdgeDisjointPaths returns the bound for the pair u, v of comp:
// three, lowered to the smaller induced degree (inside comp) of u and v
// when that is below three. A vertex with only one or two edges inside its
// component — a bare edge's endpoint, a plain cycle's vertex emitted whole
// without the DFS, or a degree-2 path vertex the DFS folds into its
// neighbor — cannot have more edge-disjoint paths than that.
func expectedMinEdgeDisjointPaths(g *graph.Graph, comp []graph.VertexID, u, v graph.VertexID) int {
	in := make(map[graph.VertexID]bool, len(comp))
	for _, x := range comp {
		in[x] = true
	}
	want := 3
	for _, x := range []graph.VertexID{u, v} {
		deg := 0
		for _, e := range g.Incident(x) {
			if other, err := g.Opposite(x, e); err == nil && in[other] {
				deg++
			}
		}
		if deg < want {
			want = deg
		}
	}
	return want
}

func setsEqual(a, b map[graph.VertexID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
