// Package maxflow computes unit-capacity max-flow between two vertices of
// a graph.Graph using Dinic's algorithm: repeated level-graph breadth-first
// search followed by a depth-first blocking flow across it. Property tests
// use it as the Menger's-theorem witness for 3-edge-connectivity: the
// number of edge-disjoint paths between u and v equals the maximum flow
// between them once every edge is given capacity one.
//
// Every visible edge contributes one unit of residual capacity in each
// direction, independent of the other direction, so an augmenting path can
// later cancel flow sent the other way through the same edge exactly as an
// undirected flow needs. The search carries no context.Context — nothing
// else in this module uses one, and unit-capacity flow between two
// vertices of a property-test-sized graph has no long-running phase worth
// cancelling.
package maxflow
