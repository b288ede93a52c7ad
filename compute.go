package triconn

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/pechang03/triconn/connectivity"
	"github.com/pechang03/triconn/graph"
	"github.com/pechang03/triconn/split"
	"github.com/pechang03/triconn/tricomp"
)

// Compute runs the full pipeline over g: split into bridges and
// biconnected blocks, run the triconnectivity DFS over each non-trivial
// block, and assemble the global component partition and cut-edge list.
// g is mutated in place by the split phase (bridges and exposed pendants
// end up hidden) but is never handed to the DFS core directly — each
// block's induced subgraph is a disposable copy, so g's remaining visible
// edges are exactly the ones Result.CutEdges is computed over.
func Compute(g *graph.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, connectivity.ErrNilGraph
	}
	o := resolveOptions(opts)

	sp, err := split.Run(g, o.log)
	if err != nil {
		return Result{}, err
	}

	workers := 1
	if o.parallel {
		workers = o.workers
	}
	var diag error
	var diagMu sync.Mutex
	perBlock := runBlocks(sp.Blocks, workers, func(b split.Block) [][]graph.VertexID {
		comps, blockErr := processBlock(g, b, o)
		if blockErr != nil {
			diagMu.Lock()
			diag = multierr.Append(diag, blockErr)
			diagMu.Unlock()
		}
		return comps
	})

	var components [][]graph.VertexID
	for _, comps := range perBlock {
		components = append(components, comps...)
	}

	compOf := make(map[graph.VertexID]int, g.VertexCount())
	for i, c := range components {
		for _, v := range c {
			compOf[v] = i
		}
	}

	var cutEdges []graph.EdgeID
	for _, e := range g.Edges() {
		from, to, err := g.Endpoints(e)
		if err != nil {
			continue
		}
		if compOf[from] != compOf[to] {
			cutEdges = append(cutEdges, e)
		}
	}

	return Result{
		Components:  components,
		Bridges:     sp.Bridges,
		CutEdges:    cutEdges,
		Deg1After:   sp.Deg1After,
		Diagnostics: diag,
	}, nil
}

// processBlock implements the orchestrator's per-block trivial-case filter:
// singleton blocks, single-edge blocks, and rootless (pure-cycle) blocks
// are emitted directly; everything else goes through tricomp.Run on an
// induced copy, with its sigma mapped back into g's vertex space.
func processBlock(g *graph.Graph, b split.Block, o Options) ([][]graph.VertexID, error) {
	switch len(b.Vertices) {
	case 0:
		return nil, nil
	case 1:
		return [][]graph.VertexID{{b.Vertices[0]}}, nil
	}

	edgeEnds := 0
	for _, v := range b.Vertices {
		edgeEnds += g.Degree(v)
	}
	edgeCount := edgeEnds / 2
	if edgeCount == 1 {
		return [][]graph.VertexID{append([]graph.VertexID(nil), b.Vertices...)}, nil
	}

	var root graph.VertexID
	hasRoot := false
	for _, v := range b.Vertices {
		if g.Degree(v) > 2 {
			root, hasRoot = v, true
			break
		}
	}
	if !hasRoot {
		// No vertex of degree > 2: a simple cycle. Emit it whole and skip
		// the DFS, which assumes a higher-degree root.
		return [][]graph.VertexID{append([]graph.VertexID(nil), b.Vertices...)}, nil
	}

	var gopts []graph.Option
	if o.debug {
		gopts = append(gopts, graph.WithDebug())
	}
	gopts = append(gopts, graph.WithDiagnostics(o.log.AsDiagnostic()))
	h, mapping := g.InducedSubgraph(b.Vertices, gopts...)

	inverse := make(map[graph.VertexID]graph.VertexID, len(mapping))
	for orig, local := range mapping {
		inverse[local] = orig
	}

	var tOpts []tricomp.Option
	if o.debug {
		tOpts = append(tOpts, tricomp.WithDebug())
	}
	tOpts = append(tOpts, tricomp.WithLogger(o.log))

	res, err := tricomp.Run(h, mapping[root], tOpts...)
	if err != nil {
		return nil, fmt.Errorf("block rooted at vertex %d: %w", root, err)
	}

	var comps [][]graph.VertexID
	for _, set := range res.Sigma {
		if len(set) == 0 {
			continue
		}
		mapped := make([]graph.VertexID, len(set))
		for i, lv := range set {
			mapped[i] = inverse[lv]
		}
		comps = append(comps, mapped)
	}
	return comps, nil
}
