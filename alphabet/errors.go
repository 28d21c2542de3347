// SPDX-License-Identifier: MIT

package alphabet

import "errors"

var (
	// ErrEmptyAlphabet indicates that a definition produced no symbols.
	ErrEmptyAlphabet = errors.New("alphabet: no symbols defined")

	// ErrLetterCount indicates a letter count outside [1, number of symbols].
	ErrLetterCount = errors.New("alphabet: letter count out of range")

	// ErrUnknownLanguage indicates a language without a letter-count preset.
	ErrUnknownLanguage = errors.New("alphabet: language is not supported")
)
