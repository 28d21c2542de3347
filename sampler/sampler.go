// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Weighted is one candidate of a draw.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// Sampler owns a random stream.
type Sampler struct {
	rng  *rand.Rand
	seed int64
}

// New returns a Sampler configured by opts.
func New(opts ...Option) *Sampler {
	o := gatherOptions(opts...)
	switch {
	case o.source != nil:
		return &Sampler{rng: rand.New(o.source), seed: o.seed}
	case o.seeded:
		return &Sampler{rng: rngFromSeed(o.seed), seed: o.seed}
	default:
		seed := clockSeed()
		return &Sampler{rng: rngFromSeed(seed), seed: seed}
	}
}

// Seed returns the seed the stream started from.
func (s *Sampler) Seed() int64 { return s.seed }

// Derive returns an independent Sampler for the given stream id. The parent
// stream advances by one value.
func (s *Sampler) Derive(stream uint64) *Sampler {
	seed := deriveSeed(s.rng.Int63(), stream)
	return &Sampler{rng: rngFromSeed(seed), seed: seed}
}

// Intn returns a uniform int in [0, n).
func (s *Sampler) Intn(n int) int { return s.rng.Intn(n) }

// Sample draws one item with probability proportional to its weight.
//
// Errors: ErrEmpty, ErrInvalidWeight, ErrZeroMass.
func Sample[T any](s *Sampler, items []Weighted[T]) (T, error) {
	var zero T
	total, err := validate(items)
	if err != nil {
		return zero, err
	}

	// Stage 1: ascending stable order of candidate indices.
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].Weight < items[order[b]].Weight
	})

	// Stage 2: exclusive prefix sums.
	prefix := make([]float64, len(order))
	var acc float64
	for k, i := range order {
		prefix[k] = acc
		acc += items[i].Weight
	}

	// Stage 3-4: z in [0,total); last bucket with prefix ≤ z.
	z := s.rng.Float64() * total
	sel := sort.Search(len(prefix), func(k int) bool { return prefix[k] > z }) - 1
	if sel < 0 {
		sel = 0
	}

	// Stage 5: ties share the bucket uniformly.
	w := items[order[sel]].Weight
	lo, hi := sel, sel
	for lo > 0 && items[order[lo-1]].Weight == w {
		lo--
	}
	for hi < len(order)-1 && items[order[hi+1]].Weight == w {
		hi++
	}
	if hi > lo {
		sel = lo + s.rng.Intn(hi-lo+1)
	}

	return items[order[sel]].Item, nil
}

// SampleConditional draws a follower from a transition row. Zero-weight
// candidates are ignored; equal remaining weights give a uniform draw.
func SampleConditional[T any](s *Sampler, items []Weighted[T]) (T, error) {
	var zero T
	if _, err := validate(items); err != nil {
		return zero, err
	}

	positive := make([]Weighted[T], 0, len(items))
	for _, it := range items {
		if it.Weight > 0 {
			positive = append(positive, it)
		}
	}

	equal := true
	for _, it := range positive[1:] {
		if it.Weight != positive[0].Weight {
			equal = false
			break
		}
	}
	if equal {
		return positive[s.rng.Intn(len(positive))].Item, nil
	}

	return Sample(s, positive)
}

// validate checks every weight and returns their sum.
func validate[T any](items []Weighted[T]) (float64, error) {
	if len(items) == 0 {
		return 0, ErrEmpty
	}
	var total float64
	for i, it := range items {
		if it.Weight < 0 || math.IsNaN(it.Weight) || math.IsInf(it.Weight, 0) {
			return 0, fmt.Errorf("candidate %d weight %v: %w", i, it.Weight, ErrInvalidWeight)
		}
		total += it.Weight
	}
	if total == 0 {
		return 0, ErrZeroMass
	}

	return total, nil
}
