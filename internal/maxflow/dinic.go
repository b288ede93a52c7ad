package maxflow

import "github.com/pechang03/triconn/graph"

// EdgeDisjointPaths returns the maximum number of edge-disjoint paths
// between source and sink in g, computed as unit-capacity max-flow via
// Dinic's algorithm: repeatedly build the level graph by breadth-first
// search from source, then push a blocking flow across it depth-first
// before rebuilding, until source and sink fall into different
// components of the residual graph. g is read only — capacities live in
// a private map built once up front, never in g itself.
func EdgeDisjointPaths(g *graph.Graph, source, sink graph.VertexID) (int, error) {
	cap := buildCapacities(g)
	if _, ok := cap[source]; !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok := cap[sink]; !ok {
		return 0, ErrVertexNotFound
	}
	if source == sink {
		return 0, nil
	}

	flow := 0
	for {
		level := bfsLevels(cap, source)
		if level[sink] < 0 {
			return flow, nil
		}
		next := levelAdjacency(cap, level)
		iter := make(map[graph.VertexID]int, len(next))
		for {
			pushed := blockingDFS(cap, next, iter, source, sink, 1)
			if pushed == 0 {
				break
			}
			flow += pushed
		}
	}
}

// buildCapacities converts g's currently visible edges into a directed
// residual capacity map. Every visible edge contributes one unit from each
// endpoint toward the other, independently in both directions; parallel
// edges between the same pair simply accumulate.
func buildCapacities(g *graph.Graph) map[graph.VertexID]map[graph.VertexID]int {
	cap := make(map[graph.VertexID]map[graph.VertexID]int, g.VertexCount())
	row := func(v graph.VertexID) map[graph.VertexID]int {
		r, ok := cap[v]
		if !ok {
			r = make(map[graph.VertexID]int)
			cap[v] = r
		}
		return r
	}
	for _, v := range g.Vertices() {
		row(v)
	}
	for _, e := range g.Edges() {
		from, to, err := g.Endpoints(e)
		if err != nil {
			continue
		}
		row(from)[to]++
		row(to)[from]++
	}
	return cap
}

// bfsLevels breadth-first searches the residual graph from source along
// arcs with remaining capacity, returning each vertex's distance from
// source, or -1 if it was not reached.
func bfsLevels(cap map[graph.VertexID]map[graph.VertexID]int, source graph.VertexID) map[graph.VertexID]int {
	level := make(map[graph.VertexID]int, len(cap))
	for v := range cap {
		level[v] = -1
	}
	level[source] = 0
	queue := []graph.VertexID{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v, c := range cap[u] {
			if c > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level
}

// levelAdjacency restricts the residual graph to arcs that advance exactly
// one BFS level, the level graph a blocking-flow phase runs over.
func levelAdjacency(cap map[graph.VertexID]map[graph.VertexID]int, level map[graph.VertexID]int) map[graph.VertexID][]graph.VertexID {
	next := make(map[graph.VertexID][]graph.VertexID, len(cap))
	for u, row := range cap {
		for v, c := range row {
			if c > 0 && level[v] == level[u]+1 {
				next[u] = append(next[u], v)
			}
		}
	}
	return next
}

// blockingDFS pushes up to want units of flow from u to sink along the
// level graph. iter tracks, per vertex, the first arc not yet proven dead
// this phase; an arc is advanced past on any visit, successful or not,
// mirroring dinic.go's own current-arc bookkeeping rather than the
// textbook variant that only advances past a genuinely exhausted arc — a
// conservative choice that can cost an extra phase but never an incorrect
// answer.
func blockingDFS(cap map[graph.VertexID]map[graph.VertexID]int, next map[graph.VertexID][]graph.VertexID, iter map[graph.VertexID]int, u, sink graph.VertexID, want int) int {
	if u == sink {
		return want
	}
	for i := iter[u]; i < len(next[u]); i++ {
		iter[u] = i + 1
		v := next[u][i]
		avail := cap[u][v]
		if avail <= 0 {
			continue
		}
		send := want
		if avail < send {
			send = avail
		}
		pushed := blockingDFS(cap, next, iter, v, sink, send)
		if pushed > 0 {
			cap[u][v] -= pushed
			cap[v][u] += pushed
			return pushed
		}
	}
	return 0
}
