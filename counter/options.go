// SPDX-License-Identifier: MIT

package counter

// Option toggles optional statistics.
type Option func(*Options)

// Options selects which statistics a count produces beyond symbols.
type Options struct {
	pairs bool
	words bool
}

// DefaultOptions counts symbols only.
func DefaultOptions() Options { return Options{} }

// WithPairs enables adjacent-symbol pair counts.
func WithPairs() Option { return func(o *Options) { o.pairs = true } }

// WithWords enables word and word-pair counts.
func WithWords() Option { return func(o *Options) { o.words = true } }

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
