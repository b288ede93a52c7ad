package graphtest

import "github.com/pechang03/triconn/graph"

// Random builds a connected simple graph on n vertices: a random spanning
// tree, guaranteeing connectivity, plus up to extraEdges further edges
// between uniformly random pairs of distinct vertices that do not already
// share one. The returned slice gives each logical vertex index's
// graph.VertexID, in creation order, so a caller generating two graphs from
// the same seed can line up corresponding vertices across them.
//
// n must be at least 1; extraEdges may be zero (a bare tree) and is capped
// at however many distinct pairs actually exist once the tree is built —
// Random gives up after a bounded number of rejected draws rather than
// looping forever on a request denser than n allows. Parallel edges and
// self-loops are deliberately excluded: this module's dedicated handling
// of multi-edge joins already has direct unit coverage elsewhere, and a
// simple graph keeps the property sweep's random inputs unambiguous.
func Random(n, extraEdges int, opts ...Option) (*graph.Graph, []graph.VertexID, error) {
	if n < 1 {
		return nil, nil, ErrTooFewVertices
	}
	c := resolve(opts)

	g := graph.NewGraph()
	vs := make([]graph.VertexID, n)
	for i := range vs {
		vs[i] = g.NewVertex()
	}

	type pair struct{ a, b graph.VertexID }
	present := make(map[pair]bool, n+extraEdges)
	connect := func(u, v graph.VertexID) (bool, error) {
		if u == v {
			return false, nil
		}
		key := pair{u, v}
		if key.a > key.b {
			key.a, key.b = key.b, key.a
		}
		if present[key] {
			return false, nil
		}
		if _, err := g.NewEdge(u, v); err != nil {
			return false, err
		}
		present[key] = true
		return true, nil
	}

	for i := 1; i < n; i++ {
		parent := vs[c.rng.Intn(i)]
		if _, err := connect(parent, vs[i]); err != nil {
			return nil, nil, err
		}
	}

	added, attempts, maxAttempts := 0, 0, extraEdges*8+16
	for added < extraEdges && attempts < maxAttempts {
		attempts++
		ok, err := connect(vs[c.rng.Intn(n)], vs[c.rng.Intn(n)])
		if err != nil {
			return nil, nil, err
		}
		if ok {
			added++
		}
	}

	return g, vs, nil
}
