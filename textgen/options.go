// SPDX-License-Identifier: MIT

package textgen

import "github.com/katalvlaran/lvtext/sampler"

// Option configures an Engine.
type Option func(*Options)

// Options holds the engine's randomness source.
type Options struct {
	sampler *sampler.Sampler
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.sampler = sampler.New(sampler.WithSeed(seed)) }
}

// WithSampler uses s for every draw. Panics if s is nil.
func WithSampler(s *sampler.Sampler) Option {
	if s == nil {
		panic("textgen: WithSampler: nil sampler")
	}
	return func(o *Options) { o.sampler = s }
}
