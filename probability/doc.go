// SPDX-License-Identifier: MIT

// Package probability normalizes raw counts into the tables the generators
// sample from.
//
// Three builders, one per model:
//   - Unigram(c):      p(s) = count(s) / total symbols, for every alphabet symbol.
//   - SymbolBigram(c): p(a,b) = count(a,b) / Σ pair counts, plus a conditional
//     transition table over the alphabet.
//   - WordBigram(c):   the same construction over words and word pairs, words
//     enumerated in first-discovery order.
//
// Transition tables:
//
//	Row i is the distribution of the follower given context keys[i]. It is
//	built by placing the global pair probabilities of every pair that starts
//	with keys[i] into the row and L1-normalizing it (matrix.NormalizeRowsL1).
//	A context never observed as a predecessor keeps an all-zero row, so every
//	row either sums to 1 (within DefaultTolerance) or to exactly 0.
//
// Errors:
//   - ErrMissingCounts: the counts lack the statistics a builder needs.
//   - ErrZeroDenominator: a normalization would divide by zero (empty input).
//
// Complexity: O(k + n²) for n enumerated units and k distinct pairs; the
// transition table is a dense n×n matrix.
package probability
