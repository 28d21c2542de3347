// SPDX-License-Identifier: MIT

package counter

// Pair is an ordered pair of adjacent units.
type Pair[K comparable] struct {
	First  K
	Second K
}

// SymbolPair and WordPair are the two pair shapes the models use.
type (
	SymbolPair = Pair[rune]
	WordPair   = Pair[string]
)

// Frequencies maps keys to raw counts and remembers discovery order.
type Frequencies[K comparable] struct {
	keys   []K
	counts map[K]int
	total  int
}

// NewFrequencies returns an empty table.
func NewFrequencies[K comparable]() *Frequencies[K] {
	return &Frequencies[K]{counts: make(map[K]int)}
}

// seed registers k with count 0 without changing the total.
func (f *Frequencies[K]) seed(k K) {
	if _, ok := f.counts[k]; ok {
		return
	}
	f.counts[k] = 0
	f.keys = append(f.keys, k)
}

// Add records one occurrence of k.
func (f *Frequencies[K]) Add(k K) {
	if _, ok := f.counts[k]; !ok {
		f.keys = append(f.keys, k)
	}
	f.counts[k]++
	f.total++
}

// Count returns the count of k (0 when unseen).
func (f *Frequencies[K]) Count(k K) int { return f.counts[k] }

// Keys returns a copy of the keys in discovery order.
func (f *Frequencies[K]) Keys() []K {
	out := make([]K, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of distinct keys.
func (f *Frequencies[K]) Len() int { return len(f.keys) }

// Total returns the sum of all counts.
func (f *Frequencies[K]) Total() int { return f.total }
