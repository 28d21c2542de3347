// SPDX-License-Identifier: MIT

package sink

import (
	"sort"

	"github.com/katalvlaran/lvtext/counter"
	"github.com/katalvlaran/lvtext/generator"
	"github.com/katalvlaran/lvtext/probability"
)

// Series is one bar chart: Values[i] belongs to Labels[i].
type Series struct {
	Name   string    `json:"name" yaml:"name"`
	Labels []string  `json:"labels" yaml:"labels"`
	Values []float64 `json:"values" yaml:"values"`
}

// Grid is one heatmap: Cells[i][j] is the value at (Rows[i], Cols[j]).
type Grid struct {
	Name  string      `json:"name" yaml:"name"`
	Rows  []string    `json:"rows" yaml:"rows"`
	Cols  []string    `json:"cols" yaml:"cols"`
	Cells [][]float64 `json:"cells" yaml:"cells"`
}

// Report is the display data of one model.
type Report struct {
	Model  generator.Kind `json:"model" yaml:"model"`
	Series []Series       `json:"series" yaml:"series"`
	Grids  []Grid         `json:"grids,omitempty" yaml:"grids,omitempty"`
}

// UnigramReport lists symbol probabilities alphabetically and by ascending
// value, each distinct value once.
func UnigramReport(t *probability.Table[rune]) *Report {
	keys := t.Keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	alpha := Series{Name: "symbols alphabetically"}
	for _, k := range keys {
		alpha.Labels = append(alpha.Labels, string(k))
		alpha.Values = append(alpha.Values, t.Prob(k))
	}

	return &Report{
		Model:  generator.Independent,
		Series: []Series{alpha, byValue("symbols by ascending value", t, func(r rune) string { return string(r) })},
	}
}

// SymbolChainReport lists pair probabilities in discovery order and by
// ascending value, plus the transition heatmap.
func SymbolChainReport(b *probability.Bigram[rune]) *Report {
	sym := func(r rune) string { return string(r) }
	pair := func(p counter.SymbolPair) string { return string(p.First) + string(p.Second) }

	return &Report{
		Model: generator.SymbolChain,
		Series: []Series{
			inOrder("symbol pairs", b.Pairs, pair),
			byValue("symbol pairs by ascending value", b.Pairs, pair),
		},
		Grids: []Grid{heatmap("symbol transitions", b.Transitions, sym)},
	}
}

// WordChainReport lists word and word-pair probabilities and the transition
// heatmap.
func WordChainReport(b *probability.Bigram[string]) *Report {
	word := func(w string) string { return w }
	pair := func(p counter.WordPair) string { return p.First + " " + p.Second }

	return &Report{
		Model: generator.WordChain,
		Series: []Series{
			inOrder("words", b.Units, word),
			inOrder("word pairs", b.Pairs, pair),
			byValue("word pairs by ascending value", b.Pairs, pair),
		},
		Grids: []Grid{heatmap("word transitions", b.Transitions, word)},
	}
}

func inOrder[K comparable](name string, t *probability.Table[K], label func(K) string) Series {
	s := Series{Name: name}
	t.Each(func(k K, p float64) {
		s.Labels = append(s.Labels, label(k))
		s.Values = append(s.Values, p)
	})
	return s
}

// byValue keeps the first key seen for each distinct value and sorts the
// values ascending.
func byValue[K comparable](name string, t *probability.Table[K], label func(K) string) Series {
	first := make(map[float64]string)
	var values []float64
	t.Each(func(k K, p float64) {
		if _, ok := first[p]; ok {
			return
		}
		first[p] = label(k)
		values = append(values, p)
	})
	sort.Float64s(values)

	s := Series{Name: name, Values: values}
	for _, v := range values {
		s.Labels = append(s.Labels, first[v])
	}
	return s
}

func heatmap[K comparable](name string, tr *probability.Transition[K], label func(K) string) Grid {
	g := Grid{Name: name}
	for _, k := range tr.Keys() {
		g.Rows = append(g.Rows, label(k))
	}
	g.Cols = g.Rows
	for i := 0; i < tr.Len(); i++ {
		row, _ := tr.Row(i)
		g.Cells = append(g.Cells, row)
	}
	return g
}
