package connectivity

import "github.com/pechang03/triconn/graph"

// ConnectedComponents labels every vertex of g with the id (starting at 0)
// of the connected component it belongs to. Isolated vertices get their
// own singleton component. Traversal order within a component is
// unspecified; component ids are assigned in the order components are
// first discovered while scanning g.Vertices().
func ConnectedComponents(g *graph.Graph) (map[graph.VertexID]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	labels := make(map[graph.VertexID]int, g.VertexCount())
	next := 0

	for _, root := range g.Vertices() {
		if _, seen := labels[root]; seen {
			continue
		}
		id := next
		next++

		stack := []graph.VertexID{root}
		labels[root] = id
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range g.Incident(v) {
				w, err := g.Opposite(v, e)
				if err != nil {
					return nil, err
				}
				if _, seen := labels[w]; seen {
					continue
				}
				labels[w] = id
				stack = append(stack, w)
			}
		}
	}
	return labels, nil
}
