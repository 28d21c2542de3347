// SPDX-License-Identifier: MIT

package sampler

import "errors"

var (
	// ErrEmpty indicates a draw from an empty candidate set.
	ErrEmpty = errors.New("sampler: no candidates")

	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("sampler: invalid weight")

	// ErrZeroMass indicates that every candidate weight is zero.
	ErrZeroMass = errors.New("sampler: total weight is zero")
)
