// SPDX-License-Identifier: MIT

package counter

import "errors"

var (
	// ErrInvalidEncoding indicates input that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("counter: input is not valid UTF-8")

	// ErrNilAlphabet indicates a count requested without an alphabet.
	ErrNilAlphabet = errors.New("counter: nil alphabet")
)
