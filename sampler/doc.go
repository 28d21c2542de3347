// SPDX-License-Identifier: MIT

// Package sampler draws one item from a weighted set. It is the single
// sampling primitive shared by every text model.
//
// Algorithm (Sample):
//  1. Order candidates by weight, ascending (stable).
//  2. Build exclusive prefix sums: prefix[k] = Σ weights of sorted[0:k).
//  3. Draw z uniformly from [0, total).
//  4. Select the last sorted bucket with prefix[k] ≤ z.
//  5. Return that bucket's item. If its weight value is shared by two or more
//     candidates, choose uniformly among those candidates.
//
// Sampling runs over (item, weight) pairs, so the winning item is known
// directly and never looked up again by its weight.
//
// SampleConditional is the variant used for chain transitions: zero-weight
// candidates are dropped first, and when every remaining weight is equal the
// draw is uniform among them.
//
// Randomness:
//   - New() seeds from the clock, mixed with a process-wide counter, so two
//     samplers never share a stream unless asked to.
//   - WithSeed(seed) gives a reproducible stream.
//   - A Sampler is NOT goroutine-safe; use Derive for independent streams.
//
// Complexity: O(k log k) per draw for k candidates.
package sampler
