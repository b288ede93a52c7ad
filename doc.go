// Package triconn computes the 3-edge-connected components of an
// undirected graph: the partition of its vertices into maximal sets that
// remain mutually reachable after removing any two edges, together with
// the graph's bridges and the cut-edges that separate components inside an
// otherwise biconnected block.
//
// Compute is the single entry point. It owns the whole pipeline —
// splitting the input into bridges and biconnected blocks, running the
// triconnectivity DFS over each non-trivial block, and assembling the
// global partition and cut-edge list — so callers never touch the
// connectivity, split, or tricomp packages directly unless they want one
// of those stages in isolation.
package triconn
