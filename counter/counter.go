// SPDX-License-Identifier: MIT

package counter

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvtext/alphabet"
)

// Counts holds every statistic derived from one input.
// Pairs is nil unless WithPairs was given; Words and WordPairs are nil unless
// WithWords was given.
type Counts struct {
	Filtered string
	Cleaned  string
	Total    int

	Symbols   *Frequencies[rune]
	Pairs     *Frequencies[SymbolPair]
	Words     *Frequencies[string]
	WordPairs *Frequencies[WordPair]
}

// Count computes statistics for text over a.
// Every input rune that is not a letter becomes one space in Cleaned, so
// line breaks and other runes outside a still separate words.
//
// Implementation:
//   - Stage 1: validate UTF-8 and seed Symbols in alphabet order.
//   - Stage 2: one rune pass building Filtered, Cleaned, symbol and pair counts.
//   - Stage 3: tokenize Cleaned for word and word-pair counts.
func Count(a *alphabet.Alphabet, text string, opts ...Option) (*Counts, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}
	o := gatherOptions(opts...)

	c := &Counts{Symbols: NewFrequencies[rune]()}
	for _, r := range a.Symbols() {
		c.Symbols.seed(r)
	}
	if o.pairs {
		c.Pairs = NewFrequencies[SymbolPair]()
	}

	var filtered, cleaned strings.Builder
	var prev rune
	have := false
	for _, r := range text {
		if a.IsLetter(r) {
			cleaned.WriteRune(r)
		} else {
			cleaned.WriteByte(' ')
		}
		if !a.Contains(r) {
			continue
		}
		filtered.WriteRune(r)
		c.Symbols.Add(r)
		if o.pairs && have {
			c.Pairs.Add(SymbolPair{First: prev, Second: r})
		}
		prev, have = r, true
	}
	c.Filtered = filtered.String()
	c.Cleaned = cleaned.String()
	c.Total = c.Symbols.Total()

	if o.words {
		c.Words = NewFrequencies[string]()
		c.WordPairs = NewFrequencies[WordPair]()
		words := strings.Fields(c.Cleaned)
		for i, w := range words {
			c.Words.Add(w)
			if i > 0 {
				c.WordPairs.Add(WordPair{First: words[i-1], Second: w})
			}
		}
	}

	return c, nil
}

// CountReader reads all of r and counts it with Count.
func CountReader(a *alphabet.Alphabet, r io.Reader, opts ...Option) (*Counts, error) {
	if r == nil {
		return nil, fmt.Errorf("counter: nil reader")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("counter: read input: %w", err)
	}

	return Count(a, string(b), opts...)
}

// HasPairs reports whether symbol pair statistics were collected.
func (c *Counts) HasPairs() bool { return c != nil && c.Pairs != nil }

// HasWords reports whether word statistics were collected.
func (c *Counts) HasWords() bool { return c != nil && c.Words != nil && c.WordPairs != nil }
