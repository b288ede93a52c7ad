package connectivity

import "github.com/pechang03/triconn/graph"

// BiconnectedEdgeComponents partitions the edges of g into maximal
// biconnected blocks, returning the block id (starting at 0) for every
// edge. A bridge is exactly a block of size one. Isolated vertices
// contribute no entries (they own no edges).
//
// The algorithm is the classic Hopcroft-Tarjan low-link sweep, tracking a
// stack of not-yet-assigned edges rather than vertices so that parallel
// edges between the same pair of vertices are classified correctly: when a
// subtree closes with low[child] >= disc[parent], every edge pushed since
// the tree edge that opened the subtree — including any back edges
// discovered inside it — pops together as one block.
func BiconnectedEdgeComponents(g *graph.Graph) (map[graph.EdgeID]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	disc := make(map[graph.VertexID]int, g.VertexCount())
	low := make(map[graph.VertexID]int, g.VertexCount())
	comp := make(map[graph.EdgeID]int)
	var edgeStack []graph.EdgeID
	timer := 0
	nextComp := 0

	type dfsFrame struct {
		v          graph.VertexID
		parentEdge graph.EdgeID
		hasParent  bool
		incident   []graph.EdgeID
		idx        int
	}

	closeBlock := func(throughEdge graph.EdgeID) {
		id := nextComp
		nextComp++
		for {
			n := len(edgeStack)
			e := edgeStack[n-1]
			edgeStack = edgeStack[:n-1]
			comp[e] = id
			if e == throughEdge {
				return
			}
		}
	}

	for _, root := range g.Vertices() {
		if _, seen := disc[root]; seen {
			continue
		}
		disc[root] = timer
		low[root] = timer
		timer++

		stack := []*dfsFrame{{v: root, incident: g.Incident(root)}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.idx >= len(top.incident) {
				stack = stack[:len(stack)-1]
				if top.hasParent && len(stack) > 0 {
					parent := stack[len(stack)-1]
					if low[top.v] < low[parent.v] {
						low[parent.v] = low[top.v]
					}
					if low[top.v] >= disc[parent.v] {
						closeBlock(top.parentEdge)
					}
				}
				continue
			}

			e := top.incident[top.idx]
			top.idx++
			if top.hasParent && e == top.parentEdge {
				continue
			}
			w, err := g.Opposite(top.v, e)
			if err != nil {
				return nil, err
			}

			if _, visited := disc[w]; !visited {
				disc[w] = timer
				low[w] = timer
				timer++
				edgeStack = append(edgeStack, e)
				stack = append(stack, &dfsFrame{v: w, parentEdge: e, hasParent: true, incident: g.Incident(w)})
				continue
			}
			if disc[w] < disc[top.v] {
				edgeStack = append(edgeStack, e)
				if disc[w] < low[top.v] {
					low[top.v] = disc[w]
				}
			}
			// disc[w] >= disc[top.v] && w already visited: the other
			// direction of an edge already classified from w's own scan.
		}
	}
	return comp, nil
}
