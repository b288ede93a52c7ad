package maxflow

import "errors"

// ErrVertexNotFound is returned when source or sink does not name a vertex
// present in the graph passed to EdgeDisjointPaths.
var ErrVertexNotFound = errors.New("maxflow: vertex not found")
