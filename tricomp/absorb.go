package tricomp

import (
	"container/list"

	"github.com/pechang03/triconn/graph"
	"github.com/pechang03/triconn/internal/diagnostics"
)

// sigmaMap tracks, for each vertex still acting as a representative, the
// set of original vertices it has absorbed. A vertex absorbed into
// another has its own entry cleared to nil — sigmaMap's non-nil entries
// are exactly this traversal's current candidate 3-edge-connected
// components.
type sigmaMap map[graph.VertexID][]graph.VertexID

func vertexOf(e *list.Element) graph.VertexID {
	return e.Value.(graph.VertexID)
}

// absorbVertex rewires every visible edge incident to xi: an edge whose
// other endpoint is xm1 (the path element just before xi, still on the
// path) or x0 itself is hidden as redundant; every other edge is
// relocated so its xi endpoint becomes x0.
func absorbVertex(h *graph.Graph, xi, x0, xm1 graph.VertexID) error {
	e, ok := h.FirstIncident(xi)
	for ok {
		next, hasNext := h.NextIncident(xi, e)
		z, err := h.Opposite(xi, e)
		if err != nil {
			return err
		}
		if z == xm1 || z == x0 {
			if err := h.HideEdge(e); err != nil {
				return err
			}
		} else {
			if err := h.MoveEdge(e, x0, z); err != nil {
				return err
			}
		}
		e, ok = next, hasNext
	}
	return nil
}

// absorbA absorbs the entire tail of p into its head: repeatedly pop the
// tail vertex, rewire its edges toward the head, and concatenate its sigma
// into the head's. p is left containing only its head (or empty, if it
// started empty).
func absorbA(h *graph.Graph, sigma sigmaMap, p *list.List) error {
	if p.Len() == 0 {
		return nil
	}
	x0 := vertexOf(p.Front())
	for p.Len() > 1 {
		back := p.Back()
		xi := vertexOf(back)
		p.Remove(back)

		xm1 := x0
		if p.Len() > 0 {
			xm1 = vertexOf(p.Back())
		}
		if err := absorbVertex(h, xi, x0, xm1); err != nil {
			return err
		}
		sigma[x0] = append(sigma[x0], sigma[xi]...)
		sigma[xi] = nil
	}
	return nil
}

// absorbB absorbs the prefix of p running from its head x0 through
// target, inclusive, leaving any suffix of p beyond target untouched. It
// is used for an incoming back edge, where target is a descendant of x0
// still present on x0's own path.
//
// If target is not found on p, the absorption is a no-op (the open
// question this leaves: the well-formed algorithm should never hit this,
// so it is logged for visibility rather than treated as fatal).
func absorbB(h *graph.Graph, sigma sigmaMap, p *list.List, target graph.VertexID, log *diagnostics.Logger) error {
	if p.Len() == 0 {
		return nil
	}
	head := p.Front()
	x0 := vertexOf(head)

	elem := p.Back()
	for elem != nil && vertexOf(elem) != target {
		elem = elem.Prev()
	}
	if elem == nil {
		log.Warn("absorb variant B target missing from path", "x0", x0, "target", target)
		return nil
	}

	for cur := elem; cur != nil && cur != head; {
		prev := cur.Prev()
		xi := vertexOf(cur)
		xm1 := x0
		if prev != nil {
			xm1 = vertexOf(prev)
		}
		if err := absorbVertex(h, xi, x0, xm1); err != nil {
			return err
		}
		sigma[x0] = append(sigma[x0], sigma[xi]...)
		sigma[xi] = nil
		p.Remove(cur)
		cur = prev
	}
	return nil
}
