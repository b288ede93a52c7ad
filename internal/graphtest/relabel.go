package graphtest

import "github.com/pechang03/triconn/graph"

// Relabel returns a copy of g with its vertices renumbered under a random
// permutation, alongside the mapping from g's vertex ids to the copy's.
// Edge structure is preserved exactly; only vertex identity changes. This
// is the fixture the isomorphism-invariance property test needs: run an
// algorithm on g and on Relabel(g), and its output should agree once
// translated through the returned mapping.
func Relabel(g *graph.Graph, opts ...Option) (*graph.Graph, map[graph.VertexID]graph.VertexID) {
	c := resolve(opts)
	originals := g.Vertices()
	n := len(originals)
	perm := c.rng.Perm(n)

	h := graph.NewGraph()
	for i := 0; i < n; i++ {
		h.NewVertex()
	}

	mapping := make(map[graph.VertexID]graph.VertexID, n)
	for i, orig := range originals {
		mapping[orig] = graph.VertexID(perm[i])
	}

	seen := make(map[graph.EdgeID]bool, len(g.Edges()))
	for _, v := range originals {
		for _, e := range g.Incident(v) {
			if seen[e] {
				continue
			}
			seen[e] = true
			from, to, _ := g.Endpoints(e)
			_, _ = h.NewEdge(mapping[from], mapping[to])
		}
	}
	return h, mapping
}
