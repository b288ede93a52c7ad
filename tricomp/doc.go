// Package tricomp implements the triconnectivity core: a single-pass,
// explicit-stack depth-first traversal over a biconnected graph that
// computes its 3-edge-connected components by path absorption.
//
// Run expects a biconnected block and a root vertex of degree greater than
// two; callers (the split and triconn packages) are responsible for
// filtering out the trivial cases — isolated vertices, single edges, pure
// cycles — before calling in, since the DFS below has no sensible
// behavior on them.
//
// The traversal mutates the graph it is given (hiding and relocating
// edges as it absorbs vertices into their representatives) and is meant
// to run once, over a disposable copy of the block.
package tricomp
