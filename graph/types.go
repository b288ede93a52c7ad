package graph

// VertexID uniquely identifies a vertex within a Graph's arena. Ids are
// assigned sequentially starting at 0 and are never reused.
type VertexID int

// EdgeID uniquely identifies an edge within a Graph's arena, with the same
// never-reused guarantee as VertexID.
type EdgeID int

// Edge is a visible-or-hidden connection between two vertices. From and To
// are the edge's current endpoints; because the graph is undirected the two
// play no distinguished role beyond bookkeeping — callers read an edge's
// "other" endpoint with Graph.Opposite.
type Edge struct {
	ID     EdgeID
	From   VertexID
	To     VertexID
	hidden bool

	arcFrom int // index into Graph.arcs for the From-side incidence record
	arcTo   int // index into Graph.arcs for the To-side incidence record
}

// arc is one incidence-list node: the record that threads a single edge
// endpoint into its owning vertex's adjacency order. A self-loop owns two
// arcs, both currently homed at the same vertex.
type arc struct {
	edge   EdgeID
	vertex VertexID // which vertex's list this arc currently belongs to
	prev   int      // arc index, -1 if this is the head
	next   int      // arc index, -1 if this is the tail
}

// vertexSlot is the arena record for one vertex.
type vertexSlot struct {
	alive  bool // false once the vertex id has been retired (never reused)
	head   int  // index into Graph.arcs, -1 if this vertex has no incident edges
	tail   int  // index into Graph.arcs, -1 if this vertex has no incident edges
	degree int  // visible incident edge-ends; a self-loop counts twice
}

// Diagnostic receives a non-fatal notice from a release-mode Graph: an
// operation that would have tripped a debug-mode assertion was skipped
// instead of aborting. event is a short stable tag ("hide-already-hidden",
// "move-would-self-loop"); fields carries the offending ids as strings so
// callers can format or log them without this package depending on a
// logging library.
type Diagnostic func(event string, fields map[string]string)

// Options configures a Graph at construction time via functional options,
// this module's own convention for every constructor that takes optional
// behavior.
type Options struct {
	debug bool
	diag  Diagnostic
}

// Option configures a Graph before use.
type Option func(*Options)

// WithDebug enables debug-mode invariant assertions: double-hiding an edge
// or moving an edge onto a self-loop returns ErrInvariantViolated instead
// of being silently skipped. Off by default, matching the release-mode
// behavior this module ships with in production use.
func WithDebug() Option {
	return func(o *Options) { o.debug = true }
}

// WithDiagnostics installs a sink for the non-fatal notices a release-mode
// Graph emits when it skips an operation that debug mode would have
// rejected. A nil fn (the default) discards them.
func WithDiagnostics(fn Diagnostic) Option {
	return func(o *Options) { o.diag = fn }
}

// Graph is the mutable undirected multigraph substrate. It is not
// goroutine-safe: per the single-writer traversal model the algorithms in
// this module use, a Graph is exclusively owned by one in-flight
// computation at a time (see the connectivity/split/tricomp packages).
type Graph struct {
	debug bool
	diag  Diagnostic

	vertices []vertexSlot
	edges    []Edge
	arcs     []arc
}

// NewGraph constructs an empty Graph.
func NewGraph(opts ...Option) *Graph {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph{debug: o.debug, diag: o.diag}
}

func (g *Graph) emit(event string, fields map[string]string) {
	if g.diag != nil {
		g.diag(event, fields)
	}
}
