// Package connectivity provides the cheap connectivity services the rest of
// this module's pipeline uses before committing to the triconnectivity DFS:
// connected-component labelling, and edge-level biconnected-block labelling
// via a low-link DFS in the style of Tarjan's bridge-finding algorithm.
//
// Both operations run once per call and do not mutate the graph they are
// given.
package connectivity
