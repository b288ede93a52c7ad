// Package split runs the pre-pass that every triconnectivity computation
// needs before it can hand a block to the DFS core: finding bridges,
// hiding them, iteratively stripping the degree-one pendant edges that
// removal exposes, and reporting the resulting connected blocks.
//
// Split mutates the *graph.Graph it is given — bridges and pendant edges
// end up hidden, not deleted, so a caller that wants them back can use
// graph.Graph.ClearHiddenFlags.
package split
