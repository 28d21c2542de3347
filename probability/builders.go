// SPDX-License-Identifier: MIT

package probability

import (
	"github.com/katalvlaran/lvtext/counter"
)

const (
	opUnigram      = "probability.Unigram"
	opSymbolBigram = "probability.SymbolBigram"
	opWordBigram   = "probability.WordBigram"
)

// Bigram bundles the tables of a first-order chain model.
//   - Units:       normalized unit distribution (symbols or words).
//   - Pairs:       global pair distribution; chains are seeded from it.
//   - Transitions: conditional follower distribution per context.
type Bigram[K comparable] struct {
	Units       *Table[K]
	Pairs       *Table[counter.Pair[K]]
	Transitions *Transition[K]
}

// Unigram normalizes symbol counts by the number of filtered symbols. Every
// alphabet symbol is present, unseen ones with probability 0.
func Unigram(c *counter.Counts) (*Table[rune], error) {
	if c == nil || c.Symbols == nil {
		return nil, probErrorf(opUnigram, ErrMissingCounts)
	}
	t, err := newTable(c.Symbols, c.Total)
	if err != nil {
		return nil, probErrorf(opUnigram, err)
	}

	return t, nil
}

// SymbolBigram builds the symbol-chain tables. Rows and columns follow the
// alphabet order of c.Symbols.
func SymbolBigram(c *counter.Counts) (*Bigram[rune], error) {
	if !c.HasPairs() || c.Symbols == nil {
		return nil, probErrorf(opSymbolBigram, ErrMissingCounts)
	}
	b, err := newBigram(c.Symbols, c.Total, c.Pairs)
	if err != nil {
		return nil, probErrorf(opSymbolBigram, err)
	}

	return b, nil
}

// WordBigram builds the word-chain tables. Rows and columns follow the order
// in which words were first seen.
func WordBigram(c *counter.Counts) (*Bigram[string], error) {
	if !c.HasWords() {
		return nil, probErrorf(opWordBigram, ErrMissingCounts)
	}
	b, err := newBigram(c.Words, c.Words.Total(), c.WordPairs)
	if err != nil {
		return nil, probErrorf(opWordBigram, err)
	}

	return b, nil
}

func newBigram[K comparable](
	units *counter.Frequencies[K],
	unitTotal int,
	pairs *counter.Frequencies[counter.Pair[K]],
) (*Bigram[K], error) {
	u, err := newTable(units, unitTotal)
	if err != nil {
		return nil, err
	}
	p, err := newTable(pairs, pairs.Total())
	if err != nil {
		return nil, err
	}
	tr, err := newTransition(u.keys, p)
	if err != nil {
		return nil, err
	}

	return &Bigram[K]{Units: u, Pairs: p, Transitions: tr}, nil
}
