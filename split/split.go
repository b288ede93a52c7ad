package split

import (
	"github.com/pechang03/triconn/connectivity"
	"github.com/pechang03/triconn/graph"
	"github.com/pechang03/triconn/internal/diagnostics"
)

// Block is one connected residual component produced by Run: the vertex
// set left over once bridges and the pendant edges they expose have been
// hidden.
type Block struct {
	Vertices []graph.VertexID
}

// Result is the output of Run.
type Result struct {
	// Bridges are the edges identified as bridges, in discovery order.
	// They are hidden in the graph Run was called on.
	Bridges []graph.EdgeID

	// Deg1After are the pendant edges hidden during the iterative
	// degree-one stripping phase, in the order they were hidden.
	Deg1After []graph.EdgeID

	// Blocks are the connected components of the graph after Bridges and
	// Deg1After have been hidden.
	Blocks []Block
}

// Run finds every bridge in g, hides it, repeatedly hides whatever
// degree-one pendant edges that exposes, and returns the bridges, the
// pendant edges, and the resulting residual blocks. If g has neither
// bridges nor pendants, the result is a single block containing every
// vertex, per the base case of a graph already free of cut-edges.
func Run(g *graph.Graph, log *diagnostics.Logger) (Result, error) {
	if g == nil {
		return Result{}, connectivity.ErrNilGraph
	}
	if log == nil {
		log = diagnostics.Nop()
	}

	// A graph of at most two vertices has no articulation vertex and is
	// trivially biconnected by definition, regardless of whether its one
	// possible edge would otherwise look like a size-one block to the
	// biconnected-edge labelling below. Mirrors the reference
	// implementation's whole-graph biconnectivity short-circuit, so a
	// bare edge is reported as a single block rather than two bridge
	// endpoints.
	if g.VertexCount() <= 2 {
		labels, err := connectivity.ConnectedComponents(g)
		if err != nil {
			return Result{}, err
		}
		if allConnected(labels) {
			return Result{Blocks: []Block{{Vertices: g.Vertices()}}}, nil
		}
	}

	edgeComp, err := connectivity.BiconnectedEdgeComponents(g)
	if err != nil {
		return Result{}, err
	}
	size := make(map[int]int)
	for _, id := range edgeComp {
		size[id]++
	}

	var bridges []graph.EdgeID
	for _, e := range g.Edges() {
		if size[edgeComp[e]] <= 1 {
			bridges = append(bridges, e)
		}
	}

	if len(bridges) == 0 {
		return Result{
			Blocks: []Block{{Vertices: g.Vertices()}},
		}, nil
	}

	for _, e := range bridges {
		from, to, err := g.Endpoints(e)
		if err != nil {
			return Result{}, err
		}
		if g.Degree(from) <= 2 && g.Degree(to) <= 2 {
			log.Warn("questionable bridge between two low-degree endpoints",
				"edge", e, "from", from, "to", to)
		}
		if err := g.HideEdge(e); err != nil {
			return Result{}, err
		}
	}

	var deg1After []graph.EdgeID
	for {
		hidAny := false
		for _, v := range g.Vertices() {
			if g.Degree(v) != 1 {
				continue
			}
			e, ok := g.FirstIncident(v)
			if !ok {
				continue
			}
			if err := g.HideEdge(e); err != nil {
				return Result{}, err
			}
			deg1After = append(deg1After, e)
			hidAny = true
		}
		if !hidAny {
			break
		}
	}

	labels, err := connectivity.ConnectedComponents(g)
	if err != nil {
		return Result{}, err
	}
	if !allConnected(labels) {
		log.Info("graph no longer connected after removing bridges and pendants")
	}

	byComponent := make(map[int][]graph.VertexID)
	for v, c := range labels {
		byComponent[c] = append(byComponent[c], v)
	}
	blocks := make([]Block, 0, len(byComponent))
	for _, vs := range byComponent {
		blocks = append(blocks, Block{Vertices: vs})
	}

	return Result{Bridges: bridges, Deg1After: deg1After, Blocks: blocks}, nil
}

func allConnected(labels map[graph.VertexID]int) bool {
	first := -1
	for _, c := range labels {
		if first == -1 {
			first = c
			continue
		}
		if c != first {
			return false
		}
	}
	return true
}
