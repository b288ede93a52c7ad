package triconn

import "github.com/pechang03/triconn/internal/diagnostics"

// Options configures a Compute call via the same functional-options shape
// used throughout this module.
type Options struct {
	debug    bool
	log      *diagnostics.Logger
	parallel bool
	workers  int
}

// Option configures a Compute call.
type Option func(*Options)

// WithDebug propagates debug-mode invariant assertions into every graph
// and tricomp.Run call Compute makes on the input's behalf.
func WithDebug() Option {
	return func(o *Options) { o.debug = true }
}

// WithLogger installs the sink for Compute's recoverable diagnostics
// (questionable bridges, disconnections after pre-processing, absorption
// soft spots). A nil logger (the default) discards them; see also
// Result.Diagnostics for the subset of these that abort a block.
func WithLogger(log *diagnostics.Logger) Option {
	return func(o *Options) { o.log = log }
}

// WithParallel processes a block's complement set concurrently across a
// bounded pool of the given width instead of Compute's sequential
// baseline. Blocks share no mutable state — each gets its own induced
// subgraph copy — so this is safe any time the caller has more than a
// handful of biconnected blocks to get through. workers <= 1 is treated as
// sequential.
func WithParallel(workers int) Option {
	return func(o *Options) {
		o.parallel = true
		o.workers = workers
	}
}

func resolveOptions(opts []Option) Options {
	o := Options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = diagnostics.Nop()
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return o
}
