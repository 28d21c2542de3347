// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults and functional options.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: kernels never panic on user data.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultRowTolerance is the absolute tolerance used when checking that a
	// row with mass sums to 1.
	DefaultRowTolerance = 1e-4
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options carries the numeric policy for dense construction.
type Options struct {
	validateNaNInf bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// WithNoValidateNaNInf disables NaN/Inf rejection in Set.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
