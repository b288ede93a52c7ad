// Package diagnostics wraps a *zap.Logger with the handful of call shapes
// this module's algorithms need: named key/value pairs at Info and Warn
// level for recoverable notices (a release-mode invariant skip, a
// questionable bridge, a disconnection after pre-processing), never at
// Error, since none of this package's callers treat these notices as
// failures.
package diagnostics
