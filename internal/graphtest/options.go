package graphtest

import "math/rand"

// config holds the seeded state Random and Relabel read. Mirrors
// builder.builderConfig's shape: every stochastic call draws from here, and
// a fixed seed makes the result fully reproducible.
type config struct {
	rng *rand.Rand
}

// Option configures a Random or Relabel call.
type Option func(*config)

// WithSeed seeds the random source a call draws from, making its output
// reproducible for a fixed (n, extraEdges, seed) triple.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned random source, for callers that want to
// share one RNG across several Random or Relabel calls. Panics if r is nil,
// matching builder.WithRand's option-constructor contract.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphtest: WithRand requires a non-nil *rand.Rand")
	}
	return func(c *config) { c.rng = r }
}

func resolve(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(1))
	}
	return c
}
