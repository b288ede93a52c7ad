package connectivity

import "errors"

// ErrNilGraph is returned by this package's entry points when called with a
// nil *graph.Graph.
var ErrNilGraph = errors.New("connectivity: nil graph")
