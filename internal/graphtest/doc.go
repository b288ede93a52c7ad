// Package graphtest generates randomized connected graphs for this
// module's property tests and provides the vertex-relabeling helper the
// isomorphism-invariance property uses.
//
// A functional-options configuration (WithSeed, WithRand) seeds a
// *rand.Rand, and Random walks vertices in a deterministic, index-ordered
// construction order: a random spanning tree, guaranteeing connectivity,
// plus up to a requested count of extra edges, since every property test in this
// module needs a connected input to have a well-defined partition.
package graphtest
