package graph

// File: adjacency.go
// Role: intrusive doubly-linked incidence lists — the machinery behind
// NextIncident, HideEdge and MoveEdge. Each edge owns two arc records (one
// per endpoint); a vertex's adjacency order is the linked chain of arcs
// currently homed at it. Splicing an arc out of one vertex's chain and into
// another's is O(1), which is what makes MoveEdge cheap regardless of how
// large the graph is.

// spliceTail links arc idx onto the tail of vertex v's incidence chain.
func (g *Graph) spliceTail(v VertexID, idx int) {
	slot := &g.vertices[v]
	a := &g.arcs[idx]
	a.vertex = v
	a.prev = slot.tail
	a.next = -1
	if slot.tail != -1 {
		g.arcs[slot.tail].next = idx
	} else {
		slot.head = idx
	}
	slot.tail = idx
}

// unsplice removes arc idx from whichever vertex chain it currently
// belongs to. The arc itself is left dangling (prev/next reset to -1) and
// must be re-spliced before it is usable again.
func (g *Graph) unsplice(idx int) {
	a := &g.arcs[idx]
	slot := &g.vertices[a.vertex]
	if a.prev != -1 {
		g.arcs[a.prev].next = a.next
	} else {
		slot.head = a.next
	}
	if a.next != -1 {
		g.arcs[a.next].prev = a.prev
	} else {
		slot.tail = a.prev
	}
	a.prev, a.next = -1, -1
}

// firstVisibleArc walks forward from idx (inclusive) until it finds an arc
// whose edge is not hidden, or runs off the end of the chain (-1).
func (g *Graph) firstVisibleArc(idx int) int {
	for idx != -1 {
		if !g.edges[g.arcs[idx].edge].hidden {
			return idx
		}
		idx = g.arcs[idx].next
	}
	return -1
}

// arcFor returns the index of the arc record belonging to edge e that is
// currently homed at vertex v. For a self-loop both arcs are homed at v;
// arcFor deterministically returns arcFrom's record first.
func (g *Graph) arcFor(e EdgeID, v VertexID) (int, bool) {
	ed := &g.edges[e]
	if g.arcs[ed.arcFrom].vertex == v {
		return ed.arcFrom, true
	}
	if g.arcs[ed.arcTo].vertex == v {
		return ed.arcTo, true
	}
	return -1, false
}
