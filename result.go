package triconn

import "github.com/pechang03/triconn/graph"

// Result is the output of Compute: the four collections spec'd for this
// pipeline's external interface, all expressed in the input graph's own
// vertex and edge space.
type Result struct {
	// Components is one slice per 3-edge-connected component, vertex ids
	// from the input graph. Order across components is unspecified;
	// within a component it reflects absorption order, not input order.
	Components [][]graph.VertexID

	// Bridges are the edges whose removal disconnects the input graph,
	// in the order split.Run discovered them.
	Bridges []graph.EdgeID

	// CutEdges are the visible edges of the input graph whose two
	// endpoints ended up in different components, excluding bridges —
	// i.e. the edges joining distinct 3-edge-connected components inside
	// an otherwise biconnected block.
	CutEdges []graph.EdgeID

	// Deg1After are the pendant edges hidden during split.Run's
	// iterative degree-one stripping phase.
	Deg1After []graph.EdgeID

	// Diagnostics aggregates, as a non-fatal multierr-joined value, the
	// error of any block that Compute had to skip because tricomp.Run
	// failed on it — a precondition it should never see in practice
	// (ErrNotBiconnected, ErrLowDegreeRoot) or, under WithDebug, an
	// invariant violation. Compute's own trivial-case filter and root
	// selection are designed to make this nil on every well-formed
	// input; a non-nil value here means a block's vertices are missing
	// from Components and is worth investigating.
	Diagnostics error
}
