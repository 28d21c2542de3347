// SPDX-License-Identifier: MIT

package generator

import (
	"github.com/katalvlaran/lvtext/probability"
	"github.com/katalvlaran/lvtext/sampler"
)

// link is a pair of unit indices. Independent draws leave tail at -1.
type link struct {
	head, tail int
}

// Model is a fitted generative model. The set of implementations is closed.
type Model interface {
	// Kind identifies the variant.
	Kind() Kind
	// Units returns the number of distinct units the model can emit.
	Units() int

	first(s *sampler.Sampler) (link, error)
	// next returns the follower pair of cur, or ok == false at a dead end.
	next(s *sampler.Sampler, cur link) (nxt link, ok bool, err error)
	// follows reports whether tail may follow head.
	follows(head, tail int) bool
	unit(i int) string
	chained() bool
}

// unigram draws independent symbols.
type unigram struct {
	symbols []rune
	weights []sampler.Weighted[int]
}

// NewUnigram wraps a unigram table.
func NewUnigram(t *probability.Table[rune]) (Model, error) {
	if t == nil {
		return nil, ErrNilModel
	}
	m := &unigram{symbols: t.Keys()}
	for i, p := range t.Probs() {
		m.weights = append(m.weights, sampler.Weighted[int]{Item: i, Weight: p})
	}

	return m, nil
}

func (m *unigram) Kind() Kind        { return Independent }
func (m *unigram) Units() int        { return len(m.symbols) }
func (m *unigram) chained() bool     { return false }
func (m *unigram) unit(i int) string { return string(m.symbols[i]) }

func (m *unigram) follows(_, _ int) bool { return true }

func (m *unigram) first(s *sampler.Sampler) (link, error) {
	i, err := sampler.Sample(s, m.weights)
	return link{head: i, tail: -1}, err
}

func (m *unigram) next(s *sampler.Sampler, _ link) (link, bool, error) {
	l, err := m.first(s)
	return l, err == nil, err
}

// chain is a first-order model over units of type K.
//   - seeds: global pair distribution over (head, tail) indices.
//   - rows:  per-context followers with positive probability; empty at dead ends.
type chain[K comparable] struct {
	kind   Kind
	keys   []K
	tr     *probability.Transition[K]
	seeds  []sampler.Weighted[link]
	rows   [][]sampler.Weighted[int]
	format func(K) string
}

// NewSymbolChain wraps symbol bigram tables.
func NewSymbolChain(b *probability.Bigram[rune]) (Model, error) {
	return newChain(SymbolChain, b, func(r rune) string { return string(r) })
}

// NewWordChain wraps word bigram tables.
func NewWordChain(b *probability.Bigram[string]) (Model, error) {
	return newChain(WordChain, b, func(w string) string { return w })
}

func newChain[K comparable](kind Kind, b *probability.Bigram[K], format func(K) string) (Model, error) {
	if b == nil || b.Pairs == nil || b.Transitions == nil {
		return nil, ErrNilModel
	}
	tr := b.Transitions
	c := &chain[K]{
		kind:   kind,
		keys:   tr.Keys(),
		tr:     tr,
		rows:   make([][]sampler.Weighted[int], tr.Len()),
		format: format,
	}

	probs := b.Pairs.Probs()
	for i, p := range b.Pairs.Keys() {
		h, t := tr.Index(p.First), tr.Index(p.Second)
		if h < 0 || t < 0 || probs[i] <= 0 {
			continue
		}
		c.seeds = append(c.seeds, sampler.Weighted[link]{Item: link{head: h, tail: t}, Weight: probs[i]})
	}
	if len(c.seeds) == 0 {
		return nil, ErrNoSeed
	}

	for i := 0; i < tr.Len(); i++ {
		if !tr.HasSuccessors(c.keys[i]) {
			continue
		}
		row, err := tr.Row(i)
		if err != nil {
			return nil, err
		}
		for j, v := range row {
			if v > 0 {
				c.rows[i] = append(c.rows[i], sampler.Weighted[int]{Item: j, Weight: v})
			}
		}
	}

	return c, nil
}

func (c *chain[K]) Kind() Kind        { return c.kind }
func (c *chain[K]) Units() int        { return len(c.keys) }
func (c *chain[K]) chained() bool     { return true }
func (c *chain[K]) unit(i int) string { return c.format(c.keys[i]) }

func (c *chain[K]) follows(head, tail int) bool {
	return c.tr.Prob(c.keys[head], c.keys[tail]) > 0
}

func (c *chain[K]) first(s *sampler.Sampler) (link, error) {
	return sampler.Sample(s, c.seeds)
}

func (c *chain[K]) next(s *sampler.Sampler, cur link) (link, bool, error) {
	row := c.rows[cur.tail]
	if len(row) == 0 {
		return link{}, false, nil
	}
	j, err := sampler.SampleConditional(s, row)
	if err != nil {
		return link{}, false, err
	}

	return link{head: cur.tail, tail: j}, true, nil
}
