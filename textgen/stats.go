// SPDX-License-Identifier: MIT

package textgen

import (
	"github.com/katalvlaran/lvtext/counter"
)

// Stats summarizes the fed input.
type Stats struct {
	Symbols         int `json:"symbols" yaml:"symbols"`
	DistinctSymbols int `json:"distinct_symbols" yaml:"distinct_symbols"`
	Pairs           int `json:"pairs" yaml:"pairs"`
	DistinctPairs   int `json:"distinct_pairs" yaml:"distinct_pairs"`
	Words           int `json:"words" yaml:"words"`
	DistinctWords   int `json:"distinct_words" yaml:"distinct_words"`
	WordPairs       int `json:"word_pairs" yaml:"word_pairs"`
}

// Stats reports counts of the fed input. Statistics the active model did not
// need are computed on the fly and not retained.
func (e *Engine) Stats() (Stats, error) {
	if err := e.requireFed(); err != nil {
		return Stats{}, err
	}
	c := e.counts
	if !c.HasPairs() || !c.HasWords() {
		var err error
		if c, err = counter.Count(e.alpha, e.input, counter.WithPairs(), counter.WithWords()); err != nil {
			return Stats{}, invalid(err)
		}
	}

	st := Stats{
		Symbols:       c.Total,
		Pairs:         c.Pairs.Total(),
		DistinctPairs: c.Pairs.Len(),
		Words:         c.Words.Total(),
		DistinctWords: c.Words.Len(),
		WordPairs:     c.WordPairs.Total(),
	}
	for _, r := range c.Symbols.Keys() {
		if c.Symbols.Count(r) > 0 {
			st.DistinctSymbols++
		}
	}

	return st, nil
}
