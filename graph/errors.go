package graph

import "errors"

// Sentinel errors for the graph package. Callers branch on these via
// errors.Is, never by comparing error strings.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id that
	// does not exist in this graph's arena.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge id that
	// does not exist in this graph's arena.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNotIncident indicates Opposite was called with a vertex that is
	// not an endpoint of the given edge.
	ErrNotIncident = errors.New("graph: vertex is not incident to edge")

	// ErrInvariantViolated marks a debug-mode assertion failure: an
	// already-hidden edge hidden again, a move that would create a
	// self-loop, or similar programmer errors described in the package's
	// debug-mode contract. In release mode (the default) the operation
	// that would have produced this error is instead skipped and logged.
	ErrInvariantViolated = errors.New("graph: invariant violated")
)
