package tricomp

import (
	"container/list"
	"fmt"

	"github.com/pechang03/triconn/graph"
)

// Result is the outcome of Run: the final sigma assignment after the
// traversal has absorbed every vertex it could into a representative.
// Vertices with a nil or empty entry were absorbed into some other
// vertex's set; every non-empty entry is one 3-edge-connected component
// of the block Run was called on.
type Result struct {
	Sigma map[graph.VertexID][]graph.VertexID
}

// frame is one stack entry, standing in for one activation of the
// recursive visit(w, parent) the algorithm is conceptually defined as.
// treeEdge is the tree edge through which this frame was entered; the
// parent frame reads it back once this one finishes.
type frame struct {
	w         graph.VertexID
	parent    graph.VertexID
	hasParent bool
	treeEdge  graph.EdgeID

	path *list.List // P_w

	// done marks edges already dispatched out of w's incidence list. Scans
	// always walk w's *current* chain from FirstIncident rather than
	// resuming from a cached edge, since a descendant's degree-2
	// contraction can relocate an edge this frame has not yet reached
	// (MoveEdge re-homes it at its new vertex's tail) — resuming from a
	// stale cached position would silently skip whatever used to sit after
	// it. done is what lets a fresh walk tell "already handled" apart from
	// "not reached yet".
	done map[graph.EdgeID]bool

	// entryDegree is h.Degree(w) at the moment this frame was pushed, before
	// w's own subtree touches any of its edges. A vertex that was truly
	// degree 2 on entry can never be 3-edge-connected on its own — it must
	// fold into whatever it contracts into. A vertex that only reaches
	// degree 2 later, after its own subtree's absorptions collapse it to
	// two remaining external edges, is a different thing: an already-merged
	// group whose two remaining links are not by themselves proof that the
	// group is 3-edge-connected to what's on the other end of them.
	// resumeAfterChild tells the two apart by entryDegree, not by the
	// post-recursion degree the contraction check itself uses.
	entryDegree int

	resuming        bool
	childU          graph.VertexID
	childEdge       graph.EdgeID
	childPath       *list.List
	childEntryDegree int
}

// dfsState groups the per-vertex traversal state that lives only for one
// Run call, so it can be threaded through the resume step without
// becoming package-level state.
type dfsState struct {
	pre   map[graph.VertexID]int
	lowpt map[graph.VertexID]int
	sigma sigmaMap
	opts  Options
}

// Run computes the 3-edge-connected components of h, rooted at root.
// root must have degree greater than two and h must be biconnected
// (reachable from root via h's visible edges) — Run validates both
// cheaply and returns a PreconditionMissed sentinel if violated, but does
// not attempt to repair either condition itself; that is the
// orchestrator's job.
func Run(h *graph.Graph, root graph.VertexID, opts ...Option) (Result, error) {
	if h.Degree(root) <= 2 {
		return Result{}, ErrLowDegreeRoot
	}

	st := &dfsState{
		pre:   make(map[graph.VertexID]int),
		lowpt: make(map[graph.VertexID]int),
		sigma: make(sigmaMap, h.VertexCount()),
		opts:  resolveOptions(opts),
	}
	for _, v := range h.Vertices() {
		st.sigma[v] = []graph.VertexID{v}
	}
	counter := 0

	push := func(w, parent graph.VertexID, hasParent bool) *frame {
		st.pre[w] = counter
		st.lowpt[w] = counter
		counter++
		p := list.New()
		p.PushBack(w)
		return &frame{
			w: w, parent: parent, hasParent: hasParent, path: p,
			done:        make(map[graph.EdgeID]bool),
			entryDegree: h.Degree(w),
		}
	}

	// nextUnvisited returns the first edge incident to w that done has not
	// already marked, walking w's incidence list fresh from the front each
	// call so it always reflects the graph's current state.
	nextUnvisited := func(w graph.VertexID, done map[graph.EdgeID]bool) (graph.EdgeID, bool) {
		e, ok := h.FirstIncident(w)
		for ok {
			if !done[e] {
				return e, true
			}
			e, ok = h.NextIncident(w, e)
		}
		return 0, false
	}

	stack := []*frame{push(root, 0, false)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.resuming {
			if err := resumeAfterChild(h, st, top); err != nil {
				return Result{}, err
			}
			top.resuming = false
			continue
		}

		w := top.w
		e, hasMore := nextUnvisited(w, top.done)
		if !hasMore {
			stack = stack[:len(stack)-1]
			if top.hasParent && len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.resuming = true
				parent.childU = top.w
				parent.childEdge = top.treeEdge
				parent.childPath = top.path
				parent.childEntryDegree = top.entryDegree
			}
			continue
		}
		top.done[e] = true

		u, err := h.Opposite(w, e)
		if err != nil {
			return Result{}, err
		}

		if top.hasParent && u == top.parent {
			continue
		}
		if u == w {
			if err := h.HideEdge(e); err != nil {
				return Result{}, err
			}
			continue
		}
		if h.Degree(u) < 2 {
			continue
		}

		if _, discovered := st.pre[u]; !discovered {
			child := push(u, w, true)
			child.treeEdge = e
			stack = append(stack, child)
			continue
		}

		// Back edge.
		if st.pre[u] < st.pre[w] {
			// Outgoing: u is an ancestor.
			if st.pre[u] < st.lowpt[w] {
				if err := absorbA(h, st.sigma, top.path); err != nil {
					return Result{}, err
				}
				st.lowpt[w] = st.pre[u]
				top.path.Init()
				top.path.PushBack(w)
			}
		} else {
			// Incoming: u is a descendant reaching w by a back edge.
			if err := absorbB(h, st.sigma, top.path, u, st.opts.log); err != nil {
				return Result{}, err
			}
			if st.pre[u] < st.lowpt[w] {
				st.lowpt[w] = st.pre[u]
			}
		}
	}

	if len(st.pre) != h.VertexCount() {
		return Result{}, fmt.Errorf("%w: visited %d of %d vertices", ErrNotBiconnected, len(st.pre), h.VertexCount())
	}
	return Result{Sigma: st.sigma}, nil
}

// resumeAfterChild implements steps 6b-6c of the traversal: the
// degree-2-contraction check and the absorb-or-extend decision that run
// immediately after a tree-edge recursion returns.
func resumeAfterChild(h *graph.Graph, st *dfsState, top *frame) error {
	w := top.w
	u := top.childU
	ewu := top.childEdge
	pu := top.childPath

	if h.Degree(u) == 2 {
		if err := h.HideEdge(ewu); err != nil {
			return err
		}
		ePrime, ok := h.FirstIncident(u)
		if ok {
			z, err := h.Opposite(u, ePrime)
			if err != nil {
				return err
			}
			if z == w {
				// u's surviving edge already runs straight to w — u, w and
				// z are a triangle, not a path. Moving it would turn it
				// into a self-loop; it is redundant the moment u folds
				// into w, so it is hidden like any other absorbed edge.
				if err := h.HideEdge(ePrime); err != nil {
					return err
				}
			} else if err := h.MoveEdge(ePrime, w, z); err != nil {
				return err
			}
		}
		if front := pu.Front(); front != nil {
			if vertexOf(front) == u {
				pu.Remove(front)
			} else if st.opts.debug {
				return fmt.Errorf("pop P_u: expected %v, got %v: %w", u, vertexOf(front), ErrInvariantViolated)
			} else {
				st.opts.log.Warn("path-pop mismatch during degree-2 contraction",
					"expected", u, "got", vertexOf(front))
			}
		}
		// u has just been eliminated from the graph and from path
		// bookkeeping. Whether its sigma group folds into w depends on
		// whether u was ever a real boundary, not on the fact that it
		// happens to be degree 2 right now: a vertex that entered its own
		// frame at degree 2 had only these two edges to begin with and can
		// never stand as its own component, so it always folds into w. A
		// vertex that entered at a higher degree and only collapsed to two
		// remaining edges by absorbing its own subtree is a condensed group
		// whose two remaining links do not by themselves prove it belongs
		// with w — two parallel edges join two triangles no more tightly
		// than a single edge joins two vertices. That group is left intact
		// in sigma[u], to surface as its own component unless some later
		// absorption elsewhere legitimately pulls it in.
		if top.childEntryDegree == 2 {
			st.sigma[w] = append(st.sigma[w], st.sigma[u]...)
			st.sigma[u] = nil
		}
	}

	if st.lowpt[w] <= st.lowpt[u] {
		pu.PushFront(w)
		return absorbA(h, st.sigma, pu)
	}

	st.lowpt[w] = st.lowpt[u]
	if err := absorbA(h, st.sigma, top.path); err != nil {
		return err
	}
	top.path.Init()
	top.path.PushBack(w)
	top.path.PushBackList(pu)
	return nil
}
