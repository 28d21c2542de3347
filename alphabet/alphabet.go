// SPDX-License-Identifier: MIT

package alphabet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// BOM is the byte-order mark; it is dropped from every definition.
const BOM = '\uFEFF'

// Alphabet is an immutable ordered symbol set with a letter subset.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
	letters int // symbols[:letters] are letters
}

// New builds an Alphabet from symbols, marking the first letters distinct
// entries as letters. Duplicates keep their first position; BOM and line
// breaks are skipped.
//
// Errors: ErrEmptyAlphabet, ErrLetterCount.
func New(symbols []rune, letters int) (*Alphabet, error) {
	a := &Alphabet{index: make(map[rune]int, len(symbols))}
	for _, r := range symbols {
		if skip(r) {
			continue
		}
		if _, dup := a.index[r]; dup {
			continue
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}
	if len(a.symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if letters < 1 || letters > len(a.symbols) {
		return nil, fmt.Errorf("%d of %d symbols: %w", letters, len(a.symbols), ErrLetterCount)
	}
	a.letters = letters

	return a, nil
}

// Parse reads a UTF-8 definition from r and builds an Alphabet whose first
// letters distinct symbols are letters.
func Parse(r io.Reader, letters int) (*Alphabet, error) {
	if r == nil {
		return nil, errors.New("alphabet: nil reader")
	}
	var symbols []rune
	br := bufio.NewReader(r)
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("alphabet: read definition: %w", err)
		}
		symbols = append(symbols, c)
	}

	return New(symbols, letters)
}

// ParseLanguage is Parse with the letter count taken from lang.
func ParseLanguage(r io.Reader, lang Language) (*Alphabet, error) {
	n, err := lang.Letters()
	if err != nil {
		return nil, err
	}

	return Parse(r, n)
}

func skip(r rune) bool {
	return r == BOM || r == '\n' || r == '\r'
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Letters returns the number of letter symbols.
func (a *Alphabet) Letters() int { return a.letters }

// Contains reports whether r is an accepted symbol.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// IsLetter reports whether r is a letter symbol.
func (a *Alphabet) IsLetter(r rune) bool {
	i, ok := a.index[r]
	return ok && i < a.letters
}

// Index returns the position of r in enumeration order, or -1.
func (a *Alphabet) Index(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// Symbols returns a copy of all symbols in enumeration order.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// LetterSymbols returns a copy of the letter subset in enumeration order.
func (a *Alphabet) LetterSymbols() []rune {
	out := make([]rune, a.letters)
	copy(out, a.symbols[:a.letters])
	return out
}
