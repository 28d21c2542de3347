// SPDX-License-Identifier: MIT

package generator

import "errors"

var (
	// ErrLength indicates a requested length below 2.
	ErrLength = errors.New("generator: length must be greater than 1")

	// ErrInvalidKind indicates a model selector outside {1, 2, 3}.
	ErrInvalidKind = errors.New("generator: model must be 1, 2 or 3")

	// ErrNilModel indicates a nil model or a model built from nil tables.
	ErrNilModel = errors.New("generator: nil model")

	// ErrContinuity indicates a transition whose context differs from the
	// previous unit, or a follower the transition table gives no mass to.
	// It signals corrupt tables.
	ErrContinuity = errors.New("generator: chain continuity violated")

	// ErrNoSeed indicates a chain model without any observed pair.
	ErrNoSeed = errors.New("generator: no seed pairs")
)
