package graphtest

import "errors"

// ErrTooFewVertices is returned by Random when asked for fewer than one
// vertex.
var ErrTooFewVertices = errors.New("graphtest: need at least one vertex")
