package tricomp

import "github.com/pechang03/triconn/internal/diagnostics"

// Options configures a Run call, following the same functional-options
// shape as the graph package.
type Options struct {
	debug bool
	log   *diagnostics.Logger
}

// Option configures a Run call.
type Option func(*Options)

// WithDebug enables debug-mode invariant assertions: a path-absorption
// mismatch returns ErrInvariantViolated instead of being logged and
// skipped.
func WithDebug() Option {
	return func(o *Options) { o.debug = true }
}

// WithLogger installs the sink for recoverable diagnostics Run emits
// (debug-assertion skips in release mode, a Variant-B absorption target
// that could not be found on the path). A nil logger (the default)
// discards them.
func WithLogger(log *diagnostics.Logger) Option {
	return func(o *Options) { o.log = log }
}

func resolveOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = diagnostics.Nop()
	}
	return o
}
