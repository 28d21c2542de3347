// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; only ValidateRowStochastic walks the data.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowStochastic checks the transition-table row invariant:
// every row is either exactly all-zero or non-negative with |Σ_j m[i,j] − 1| ≤ tol.
//
// Errors:
//   - ErrNilMatrix, ErrNegativeEntry, ErrNaNInf, ErrNotStochastic (first offending row wins).
//
// Complexity: O(r*c).
func ValidateRowStochastic(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Rows(), m.Cols()

	var i, j int
	var s, v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateRowStochastic", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateRowStochastic", fmt.Errorf("row %d: %w", i, ErrNaNInf))
			}
			if v < 0 {
				return validatorErrorf("ValidateRowStochastic", fmt.Errorf("row %d: %w", i, ErrNegativeEntry))
			}
			s += v
		}
		if s == 0 {
			continue // degenerate row: never observed as a context
		}
		if math.Abs(s-1) > tol {
			return validatorErrorf("ValidateRowStochastic", fmt.Errorf("row %d sums to %g: %w", i, s, ErrNotStochastic))
		}
	}

	return nil
}
