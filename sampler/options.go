// SPDX-License-Identifier: MIT

package sampler

import "math/rand"

// Option configures a Sampler.
type Option func(*Options)

// Options holds the randomness source of a Sampler.
type Options struct {
	seed   int64
	seeded bool
	source rand.Source
}

// DefaultOptions returns a clock-seeded configuration.
func DefaultOptions() Options { return Options{} }

// WithSeed makes the Sampler reproducible: equal seeds give equal draws.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSource uses src as the random source verbatim. It takes precedence over
// WithSeed. Panics if src is nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("sampler: WithSource: nil source")
	}
	return func(o *Options) { o.source = src }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
