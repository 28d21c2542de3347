// SPDX-License-Identifier: MIT

package probability

import (
	"github.com/katalvlaran/lvtext/counter"
)

// DefaultTolerance bounds |Σ p − 1| for normalized tables and transition rows.
const DefaultTolerance = 1e-4

// Table is a normalized distribution over keys, kept in enumeration order.
type Table[K comparable] struct {
	keys  []K
	probs []float64
	index map[K]int
}

// newTable divides every count of f by denom.
func newTable[K comparable](f *counter.Frequencies[K], denom int) (*Table[K], error) {
	if denom <= 0 {
		return nil, ErrZeroDenominator
	}
	keys := f.Keys()
	t := &Table[K]{
		keys:  keys,
		probs: make([]float64, len(keys)),
		index: make(map[K]int, len(keys)),
	}
	d := float64(denom)
	for i, k := range keys {
		t.index[k] = i
		t.probs[i] = float64(f.Count(k)) / d
	}

	return t, nil
}

// Len returns the number of keys.
func (t *Table[K]) Len() int { return len(t.keys) }

// Keys returns a copy of the keys in enumeration order.
func (t *Table[K]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// Probs returns a copy of the probabilities, index-aligned with Keys.
func (t *Table[K]) Probs() []float64 {
	out := make([]float64, len(t.probs))
	copy(out, t.probs)
	return out
}

// Prob returns p(k), or 0 for a key outside the table.
func (t *Table[K]) Prob(k K) float64 {
	if i, ok := t.index[k]; ok {
		return t.probs[i]
	}
	return 0
}

// Sum returns Σ p over the table.
func (t *Table[K]) Sum() float64 {
	var s float64
	for _, p := range t.probs {
		s += p
	}
	return s
}

// Each calls fn for every entry in enumeration order.
func (t *Table[K]) Each(fn func(k K, p float64)) {
	for i, k := range t.keys {
		fn(k, t.probs[i])
	}
}
