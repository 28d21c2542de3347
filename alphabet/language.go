// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"strings"
)

// Language selects how many leading entries of a definition are letters.
type Language string

const (
	// Danish definitions start with 29 upper- and 29 lowercase letters.
	Danish Language = "Danish"
	// English definitions start with 27 upper- and 27 lowercase letter symbols.
	English Language = "English"
)

// DefaultLanguage is used when no language is named.
const DefaultLanguage = Danish

var letterCounts = map[Language]int{
	Danish:  58,
	English: 54,
}

// Letters returns the number of letter symbols a definition in l carries.
func (l Language) Letters() (int, error) {
	n, ok := letterCounts[l]
	if !ok {
		return 0, fmt.Errorf("%q: %w", string(l), ErrUnknownLanguage)
	}

	return n, nil
}

// ParseLanguageName resolves a case-insensitive language name. An empty name
// yields DefaultLanguage.
func ParseLanguageName(name string) (Language, error) {
	if strings.TrimSpace(name) == "" {
		return DefaultLanguage, nil
	}
	for l := range letterCounts {
		if strings.EqualFold(string(l), strings.TrimSpace(name)) {
			return l, nil
		}
	}

	return "", fmt.Errorf("%q: %w", name, ErrUnknownLanguage)
}
