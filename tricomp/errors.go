package tricomp

import "errors"

var (
	// ErrNotBiconnected is returned by Run if the DFS from root does not
	// reach every vertex of h — the caller handed Run a block that was
	// not actually biconnected (or not even connected).
	ErrNotBiconnected = errors.New("tricomp: block is not biconnected from the given root")

	// ErrLowDegreeRoot is returned by Run if root has degree two or
	// less. A degree-2-or-less root defeats the degree-2 contraction
	// step's assumptions; callers should pick a higher-degree root, or
	// recognize the block as a simple cycle and skip the DFS entirely.
	ErrLowDegreeRoot = errors.New("tricomp: root has degree <= 2")

	// ErrInvariantViolated marks a debug-mode assertion failure inside
	// the absorption machinery: a path-pop that didn't return the
	// expected vertex. In release mode (the default) the mismatch is
	// logged and the traversal proceeds on a best-effort basis.
	ErrInvariantViolated = errors.New("tricomp: invariant violated")
)
