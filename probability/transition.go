// SPDX-License-Identifier: MIT

package probability

import (
	"fmt"

	"github.com/katalvlaran/lvtext/counter"
	"github.com/katalvlaran/lvtext/matrix"
)

// Transition is a conditional transition table: row i holds p(next | keys[i])
// for every follower, columns in the same order as rows.
type Transition[K comparable] struct {
	keys  []K
	index map[K]int
	m     *matrix.Dense
	mass  []float64 // row sums of m: 0 or ≈1
}

// newTransition fills a dense n×n matrix with the global probability of each
// pair at (context, follower) and L1-normalizes its rows.
func newTransition[K comparable](keys []K, pairs *Table[counter.Pair[K]]) (*Transition[K], error) {
	n := len(keys)
	if n == 0 {
		return nil, ErrZeroDenominator
	}
	index := make(map[K]int, n)
	for i, k := range keys {
		index[k] = i
	}

	global, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	var row, col int
	var ok bool
	for i, p := range pairs.keys {
		if row, ok = index[p.First]; !ok {
			return nil, fmt.Errorf("context %v: %w", p.First, ErrUnknownKey)
		}
		if col, ok = index[p.Second]; !ok {
			return nil, fmt.Errorf("follower %v: %w", p.Second, ErrUnknownKey)
		}
		if err = global.Add(row, col, pairs.probs[i]); err != nil {
			return nil, err
		}
	}

	cond, _, err := matrix.NormalizeRowsL1(global)
	if err != nil {
		return nil, err
	}
	mass, err := matrix.RowSums(cond)
	if err != nil {
		return nil, err
	}

	return &Transition[K]{keys: keys, index: index, m: cond, mass: mass}, nil
}

// Len returns the number of contexts (and followers).
func (t *Transition[K]) Len() int { return len(t.keys) }

// Keys returns a copy of the enumeration order shared by rows and columns.
func (t *Transition[K]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// Key returns the key at position i.
func (t *Transition[K]) Key(i int) K { return t.keys[i] }

// Index returns the position of k, or -1.
func (t *Transition[K]) Index(k K) int {
	if i, ok := t.index[k]; ok {
		return i
	}
	return -1
}

// Row returns a copy of row i.
func (t *Transition[K]) Row(i int) ([]float64, error) {
	return t.m.Row(i)
}

// RowOf returns a copy of the row for context k.
func (t *Transition[K]) RowOf(k K) ([]float64, error) {
	i, ok := t.index[k]
	if !ok {
		return nil, probErrorf("RowOf", ErrUnknownKey)
	}
	return t.m.Row(i)
}

// Prob returns p(next | ctx), or 0 when either key is unknown.
func (t *Transition[K]) Prob(ctx, next K) float64 {
	i, ok := t.index[ctx]
	if !ok {
		return 0
	}
	j, ok := t.index[next]
	if !ok {
		return 0
	}
	v, _ := t.m.At(i, j)
	return v
}

// HasSuccessors reports whether ctx was observed as a predecessor.
func (t *Transition[K]) HasSuccessors(ctx K) bool {
	i, ok := t.index[ctx]
	return ok && t.mass[i] > 0
}

// Validate checks that every row sums to 1 within tol or is exactly all-zero.
func (t *Transition[K]) Validate(tol float64) error {
	return matrix.ValidateRowStochastic(t.m, tol)
}
