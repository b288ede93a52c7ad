// Package graph implements the mutable undirected multigraph substrate the
// rest of this module's algorithms run over.
//
// Vertices and edges live in a flat arena keyed by stable integer ids
// (VertexID, EdgeID): once assigned an id is never reused, even after the
// edge or vertex is logically removed, so double-operations on a stale id
// can be detected rather than silently corrupting unrelated state.
//
// Edges support two mutations the rest of the module relies on:
//
//   - HideEdge marks an edge invisible to adjacency iteration and degree
//     queries without forgetting it ever existed.
//   - MoveEdge rewrites both of an edge's endpoints in place, keeping its
//     identity (and any caller-held EdgeID) valid.
//
// Adjacency iteration is exposed through NextIncident, which returns the
// edge that follows a given edge in a vertex's incidence order *before* the
// caller is allowed to mutate that edge — this lets traversal algorithms
// hide or move the edge they are currently examining without losing their
// place.
//
//	go get github.com/pechang03/triconn/graph
package graph
