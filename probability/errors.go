// SPDX-License-Identifier: MIT

package probability

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator indicates normalization against an empty total.
	ErrZeroDenominator = errors.New("probability: zero denominator")

	// ErrMissingCounts indicates counts without the statistics a model needs.
	ErrMissingCounts = errors.New("probability: required counts missing")

	// ErrUnknownKey indicates a lookup of a key outside the table.
	ErrUnknownKey = errors.New("probability: unknown key")
)

// probErrorf wraps err with the builder or method that failed.
func probErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
