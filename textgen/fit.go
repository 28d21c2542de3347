// SPDX-License-Identifier: MIT

package textgen

import (
	"github.com/katalvlaran/lvtext/counter"
	"github.com/katalvlaran/lvtext/generator"
	"github.com/katalvlaran/lvtext/probability"
	"github.com/katalvlaran/lvtext/sink"
)

// fitted is one model's tables. Exactly one of unigram, symbols, words is set.
type fitted struct {
	model   generator.Model
	unigram *probability.Table[rune]
	symbols *probability.Bigram[rune]
	words   *probability.Bigram[string]
}

func (f *fitted) report() *sink.Report {
	switch {
	case f.unigram != nil:
		return sink.UnigramReport(f.unigram)
	case f.symbols != nil:
		return sink.SymbolChainReport(f.symbols)
	default:
		return sink.WordChainReport(f.words)
	}
}

// countOptions returns the counter options kind needs, keeping whatever c
// already carries.
func countOptions(kind generator.Kind, c *counter.Counts) []counter.Option {
	var opts []counter.Option
	if kind.NeedsPairs() || c.HasPairs() {
		opts = append(opts, counter.WithPairs())
	}
	if kind.NeedsWords() || c.HasWords() {
		opts = append(opts, counter.WithWords())
	}
	return opts
}

// satisfies reports whether c carries the statistics kind needs.
func satisfies(kind generator.Kind, c *counter.Counts) bool {
	return (!kind.NeedsPairs() || c.HasPairs()) && (!kind.NeedsWords() || c.HasWords())
}

// fit builds kind's tables from c. Zero denominators surface as a missing feed.
func fit(kind generator.Kind, c *counter.Counts) (*fitted, error) {
	var (
		f   = &fitted{}
		err error
	)
	switch kind {
	case generator.Independent:
		if f.unigram, err = probability.Unigram(c); err == nil {
			f.model, err = generator.NewUnigram(f.unigram)
		}
	case generator.SymbolChain:
		if f.symbols, err = probability.SymbolBigram(c); err == nil {
			f.model, err = generator.NewSymbolChain(f.symbols)
		}
	case generator.WordChain:
		if f.words, err = probability.WordBigram(c); err == nil {
			f.model, err = generator.NewWordChain(f.words)
		}
	default:
		return nil, invalid(generator.ErrInvalidKind)
	}
	if err != nil {
		return nil, preconditionCause(StepFeed, err)
	}

	return f, nil
}
