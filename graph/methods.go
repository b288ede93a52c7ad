package graph

import "fmt"

// NewVertex allocates and returns a fresh vertex id. Complexity: O(1).
func (g *Graph) NewVertex() VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, vertexSlot{alive: true, head: -1, tail: -1})
	return id
}

// NewEdge allocates a fresh edge between u and v and links it into both
// vertices' incidence chains. u and v must already exist; NewEdge does not
// hide self-loops itself — callers that care about invariant I1 do that via
// HideEdge once the loop is observed during traversal, exactly as the
// triconnectivity DFS does.
func (g *Graph) NewEdge(u, v VertexID) (EdgeID, error) {
	if !g.aliveVertex(u) || !g.aliveVertex(v) {
		return 0, ErrVertexNotFound
	}
	id := EdgeID(len(g.edges))
	arcFromIdx := len(g.arcs)
	g.arcs = append(g.arcs, arc{edge: id, prev: -1, next: -1})
	arcToIdx := len(g.arcs)
	g.arcs = append(g.arcs, arc{edge: id, prev: -1, next: -1})

	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, arcFrom: arcFromIdx, arcTo: arcToIdx})
	g.spliceTail(u, arcFromIdx)
	g.spliceTail(v, arcToIdx)
	g.vertices[u].degree++
	g.vertices[v].degree++
	return id, nil
}

// Opposite returns the endpoint of e other than v.
func (g *Graph) Opposite(v VertexID, e EdgeID) (VertexID, error) {
	if !g.validEdge(e) {
		return 0, ErrEdgeNotFound
	}
	ed := &g.edges[e]
	switch v {
	case ed.From:
		return ed.To, nil
	case ed.To:
		return ed.From, nil
	default:
		return 0, ErrNotIncident
	}
}

// Degree returns the number of visible incident edge-ends at v (a
// surviving self-loop, which should never happen past invariant I1, would
// count twice). Complexity: O(1).
func (g *Graph) Degree(v VertexID) int {
	if !g.aliveVertex(v) {
		return 0
	}
	return g.vertices[v].degree
}

// IsHidden reports whether e has been hidden. Complexity: O(1).
func (g *Graph) IsHidden(e EdgeID) bool {
	if !g.validEdge(e) {
		return true
	}
	return g.edges[e].hidden
}

// HideEdge marks e invisible to future adjacency iteration and degree
// queries. Hiding an already-hidden edge is a debug-mode invariant
// violation (ErrInvariantViolated); in release mode it is a silent no-op
// reported through the graph's Diagnostic sink.
func (g *Graph) HideEdge(e EdgeID) error {
	if !g.validEdge(e) {
		return ErrEdgeNotFound
	}
	ed := &g.edges[e]
	if ed.hidden {
		if g.debug {
			return fmt.Errorf("hide edge %d: already hidden: %w", e, ErrInvariantViolated)
		}
		g.emit("hide-already-hidden", map[string]string{"edge": fmt.Sprint(e)})
		return nil
	}
	ed.hidden = true
	g.vertices[ed.From].degree--
	g.vertices[ed.To].degree--
	return nil
}

// MoveEdge rewrites e's endpoints to (newFrom, newTo), splicing its two
// incidence records into their new vertex chains. e remains visible and
// keeps its identity, so any cursor a caller is holding on e stays valid.
//
// Moving an edge onto a self-loop (newFrom == newTo) is a debug-mode
// invariant violation; in release mode the move is skipped (the edge keeps
// its prior endpoints) and reported through the Diagnostic sink.
func (g *Graph) MoveEdge(e EdgeID, newFrom, newTo VertexID) error {
	if !g.validEdge(e) {
		return ErrEdgeNotFound
	}
	if !g.aliveVertex(newFrom) || !g.aliveVertex(newTo) {
		return ErrVertexNotFound
	}
	if newFrom == newTo {
		if g.debug {
			return fmt.Errorf("move edge %d onto self-loop at %d: %w", e, newFrom, ErrInvariantViolated)
		}
		g.emit("move-would-self-loop", map[string]string{"edge": fmt.Sprint(e), "vertex": fmt.Sprint(newFrom)})
		return nil
	}

	ed := &g.edges[e]
	if !ed.hidden {
		g.vertices[ed.From].degree--
		g.vertices[ed.To].degree--
	}

	g.unsplice(ed.arcFrom)
	g.unsplice(ed.arcTo)
	ed.From, ed.To = newFrom, newTo
	g.spliceTail(newFrom, ed.arcFrom)
	g.spliceTail(newTo, ed.arcTo)

	if !ed.hidden {
		g.vertices[newFrom].degree++
		g.vertices[newTo].degree++
	}
	return nil
}

// FirstIncident returns the first visible edge incident to v, or false if
// v has none.
func (g *Graph) FirstIncident(v VertexID) (EdgeID, bool) {
	if !g.aliveVertex(v) {
		return 0, false
	}
	idx := g.firstVisibleArc(g.vertices[v].head)
	if idx == -1 {
		return 0, false
	}
	return g.arcs[idx].edge, true
}

// NextIncident returns the visible edge that follows e in v's incidence
// order, computed from e's *current* position before the caller mutates
// e. Traversal code that intends to hide or move e must call NextIncident
// first and hold onto the result, since e's position (or existence in v's
// chain) may no longer make sense immediately afterward.
func (g *Graph) NextIncident(v VertexID, e EdgeID) (EdgeID, bool) {
	if !g.validEdge(e) {
		return 0, false
	}
	idx, ok := g.arcFor(e, v)
	if !ok {
		return 0, false
	}
	next := g.firstVisibleArc(g.arcs[idx].next)
	if next == -1 {
		return 0, false
	}
	return g.arcs[next].edge, true
}

// Incident returns, as a freshly allocated slice, all edges currently
// visible at v in adjacency order. Convenience wrapper around
// FirstIncident/NextIncident for callers that do not need to mutate the
// graph mid-walk.
func (g *Graph) Incident(v VertexID) []EdgeID {
	var out []EdgeID
	e, ok := g.FirstIncident(v)
	for ok {
		out = append(out, e)
		e, ok = g.NextIncident(v, e)
	}
	return out
}

// Vertices returns every vertex id ever allocated, in allocation order.
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, 0, len(g.vertices))
	for i := range g.vertices {
		out = append(out, VertexID(i))
	}
	return out
}

// Edges returns every visible edge, in allocation order.
func (g *Graph) Edges() []EdgeID {
	out := make([]EdgeID, 0, len(g.edges))
	for i := range g.edges {
		if !g.edges[i].hidden {
			out = append(out, EdgeID(i))
		}
	}
	return out
}

// Endpoints returns the current (From, To) pair for e.
func (g *Graph) Endpoints(e EdgeID) (VertexID, VertexID, error) {
	if !g.validEdge(e) {
		return 0, 0, ErrEdgeNotFound
	}
	ed := &g.edges[e]
	return ed.From, ed.To, nil
}

// VertexCount returns the number of vertex ids allocated so far.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of currently visible edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for i := range g.edges {
		if !g.edges[i].hidden {
			n++
		}
	}
	return n
}

// ClearHiddenFlags un-hides every edge, restoring full visibility. Used by
// callers that want to re-run an algorithm over a graph a prior pass left
// with edges hidden.
func (g *Graph) ClearHiddenFlags() {
	for i := range g.edges {
		if g.edges[i].hidden {
			g.edges[i].hidden = false
			g.vertices[g.edges[i].From].degree++
			g.vertices[g.edges[i].To].degree++
		}
	}
}

// InducedSubgraph builds a fresh Graph containing a copy of every visible
// edge whose both endpoints are in vs, plus any vertex in vs that has none.
// It returns the new graph along with the mapping from the original
// VertexIDs named in vs to their ids in the new graph.
func (g *Graph) InducedSubgraph(vs []VertexID, opts ...Option) (*Graph, map[VertexID]VertexID) {
	h := NewGraph(opts...)
	mapping := make(map[VertexID]VertexID, len(vs))
	in := make(map[VertexID]bool, len(vs))
	for _, v := range vs {
		in[v] = true
	}
	for _, v := range vs {
		mapping[v] = h.NewVertex()
	}
	seen := make(map[EdgeID]bool)
	for _, v := range vs {
		for _, e := range g.Incident(v) {
			if seen[e] {
				continue
			}
			from, to, _ := g.Endpoints(e)
			other := from
			if other == v {
				other = to
			}
			if !in[other] {
				continue
			}
			seen[e] = true
			_, _ = h.NewEdge(mapping[from], mapping[to])
		}
	}
	return h, mapping
}

func (g *Graph) aliveVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.vertices) && g.vertices[v].alive
}

func (g *Graph) validEdge(e EdgeID) bool {
	return e >= 0 && int(e) < len(g.edges)
}
