// SPDX-License-Identifier: MIT

package textgen

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvtext/alphabet"
	"github.com/katalvlaran/lvtext/counter"
	"github.com/katalvlaran/lvtext/generator"
	"github.com/katalvlaran/lvtext/probability"
	"github.com/katalvlaran/lvtext/sampler"
	"github.com/katalvlaran/lvtext/sink"
)

// Engine owns every table of one modeling session.
type Engine struct {
	kind    generator.Kind
	sampler *sampler.Sampler
	runs    uint64

	alpha  *alphabet.Alphabet
	input  string
	counts *counter.Counts

	identified bool
	fitted     map[generator.Kind]*fitted
	last       *generator.Sequence
}

// New returns an engine whose active model is kind.
func New(kind generator.Kind, opts ...Option) (*Engine, error) {
	if !kind.Valid() {
		return nil, invalid(fmt.Errorf("model %d: %w", int(kind), generator.ErrInvalidKind))
	}
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.sampler == nil {
		o.sampler = sampler.New()
	}

	e := &Engine{kind: kind, sampler: o.sampler}
	e.Reset()

	return e, nil
}

// Reset forgets the alphabet, input, tables and generated text. The active
// model and the random stream are kept.
func (e *Engine) Reset() {
	e.alpha = nil
	e.clearInput()
}

func (e *Engine) clearInput() {
	e.input = ""
	e.counts = nil
	e.clearTables()
}

func (e *Engine) clearTables() {
	e.identified = false
	e.fitted = make(map[generator.Kind]*fitted)
	e.last = nil
}

// Define installs a as the accepted symbol set and clears everything derived
// from a previous alphabet.
func (e *Engine) Define(a *alphabet.Alphabet) error {
	if a == nil {
		return invalid(errors.New("nil alphabet"))
	}
	e.alpha = a
	e.clearInput()

	return nil
}

// DefineFrom parses an alphabet definition whose letter count is given by lang.
func (e *Engine) DefineFrom(r io.Reader, lang alphabet.Language) error {
	a, err := alphabet.ParseLanguage(r, lang)
	if err != nil {
		return invalid(err)
	}

	return e.Define(a)
}

// Feed counts the text read from r. Previously fitted tables are discarded.
func (e *Engine) Feed(r io.Reader) error {
	if r == nil {
		return invalid(errors.New("nil text source"))
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("textgen: read input: %w", err)
	}

	return e.FeedString(string(b))
}

// FeedString counts text. An empty text is accepted; Identify then fails.
func (e *Engine) FeedString(text string) error {
	if e.alpha == nil {
		return ErrConfiguration
	}
	opts := countOptions(e.kind, nil)
	c, err := counter.Count(e.alpha, text, opts...)
	if err != nil {
		return invalid(err)
	}
	e.input = text
	e.counts = c
	e.clearTables()

	return nil
}

// Identify fits the active model's probability tables.
func (e *Engine) Identify() error {
	if err := e.requireFed(); err != nil {
		return err
	}
	c, err := e.countsFor(e.kind)
	if err != nil {
		return err
	}
	f, err := fit(e.kind, c)
	if err != nil {
		return err
	}

	e.counts = c
	e.fitted = map[generator.Kind]*fitted{e.kind: f}
	e.identified = true

	return nil
}

// ChangeModel switches the active model. Once probabilities are identified,
// the new model is fitted from the retained input if it was not already.
func (e *Engine) ChangeModel(kind generator.Kind) error {
	if !kind.Valid() {
		return invalid(fmt.Errorf("model %d: %w", int(kind), generator.ErrInvalidKind))
	}
	if !e.identified || e.fitted[kind] != nil {
		e.kind = kind
		return nil
	}

	c, err := e.countsFor(kind)
	if err != nil {
		return err
	}
	f, err := fit(kind, c)
	if err != nil {
		return err
	}
	e.counts = c
	e.fitted[kind] = f
	e.kind = kind

	return nil
}

// countsFor returns counts carrying kind's statistics, recounting the
// retained input when needed. The engine is not modified.
func (e *Engine) countsFor(kind generator.Kind) (*counter.Counts, error) {
	if satisfies(kind, e.counts) {
		return e.counts, nil
	}
	c, err := counter.Count(e.alpha, e.input, countOptions(kind, e.counts)...)
	if err != nil {
		return nil, invalid(err)
	}

	return c, nil
}

// Generate samples n units from the active model and keeps the result as
// the engine's current text. Each call draws from its own stream derived
// from the engine's sampler, so engines built with the same seed repeat
// the same sequence of texts.
func (e *Engine) Generate(n int) (*generator.Sequence, error) {
	if err := e.requireFed(); err != nil {
		return nil, err
	}
	f := e.fitted[e.kind]
	if !e.identified || f == nil {
		return nil, precondition(StepIdentify)
	}
	e.runs++
	seq, err := generator.Generate(f.model, n, e.sampler.Derive(e.runs))
	if errors.Is(err, generator.ErrLength) {
		return nil, invalid(err)
	}
	if err != nil {
		return nil, fmt.Errorf("textgen: generate: %w", err)
	}
	e.last = seq

	return seq, nil
}

// Text returns the last generated text, or "".
func (e *Engine) Text() string {
	if e.last == nil {
		return ""
	}
	return e.last.Text
}

// Last returns the last generated sequence, or nil.
func (e *Engine) Last() *generator.Sequence { return e.last }

// Save hands the last generated text and its model to s.
func (e *Engine) Save(s sink.TextSink) error {
	if s == nil {
		return invalid(errors.New("nil text sink"))
	}
	if e.last == nil {
		return precondition(StepGenerate)
	}

	return s.WriteText(e.last.Kind, e.last.Text)
}

// ReportData returns the display data of kind's fitted tables.
func (e *Engine) ReportData(kind generator.Kind) (*sink.Report, error) {
	if !kind.Valid() {
		return nil, invalid(fmt.Errorf("model %d: %w", int(kind), generator.ErrInvalidKind))
	}
	if err := e.requireFed(); err != nil {
		return nil, err
	}
	f := e.fitted[kind]
	if !e.identified || f == nil {
		return nil, precondition(StepIdentify)
	}

	return f.report(), nil
}

// Report hands the display data of kind's fitted tables to s.
func (e *Engine) Report(kind generator.Kind, s sink.TableSink) error {
	if s == nil {
		return invalid(errors.New("nil table sink"))
	}
	r, err := e.ReportData(kind)
	if err != nil {
		return err
	}

	return s.WriteReport(r)
}

func (e *Engine) requireFed() error {
	if e.alpha == nil {
		return ErrConfiguration
	}
	if e.counts == nil {
		return precondition(StepFeed)
	}
	return nil
}

// Kind returns the active model.
func (e *Engine) Kind() generator.Kind { return e.kind }

// Defined reports whether an alphabet is installed.
func (e *Engine) Defined() bool { return e.alpha != nil }

// Fed reports whether input has been counted.
func (e *Engine) Fed() bool { return e.counts != nil }

// Identified reports whether the active model is fitted.
func (e *Engine) Identified() bool { return e.identified && e.fitted[e.kind] != nil }

// Alphabet returns the installed alphabet, or nil.
func (e *Engine) Alphabet() *alphabet.Alphabet { return e.alpha }

// Counts returns the counts of the fed input, or nil.
func (e *Engine) Counts() *counter.Counts { return e.counts }

// Unigram returns the fitted unigram table, or nil.
func (e *Engine) Unigram() *probability.Table[rune] {
	if f := e.fitted[generator.Independent]; f != nil {
		return f.unigram
	}
	return nil
}

// SymbolBigram returns the fitted symbol-chain tables, or nil.
func (e *Engine) SymbolBigram() *probability.Bigram[rune] {
	if f := e.fitted[generator.SymbolChain]; f != nil {
		return f.symbols
	}
	return nil
}

// WordBigram returns the fitted word-chain tables, or nil.
func (e *Engine) WordBigram() *probability.Bigram[string] {
	if f := e.fitted[generator.WordChain]; f != nil {
		return f.words
	}
	return nil
}
