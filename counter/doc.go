// SPDX-License-Identifier: MIT

// Package counter turns raw text into the frequency statistics the text
// models are built from.
//
// A single pass over the input, filtered through an alphabet.Alphabet, yields:
//   - Filtered: every accepted symbol, in input order.
//   - Cleaned:  the whole input with each non-letter, member or not, replaced
//     by one space (runs are not collapsed; word splitting absorbs them).
//   - Symbols:  per-symbol counts over Filtered, enumerated in alphabet order.
//   - Pairs:    counts of adjacent symbols (Filtered[i], Filtered[i+1]).
//   - Words:    whitespace tokens of Cleaned.
//   - WordPairs: adjacent tokens of the same tokenization.
//
// Observed keys start at count 1 on first sight. Pair and word statistics are
// optional (WithPairs, WithWords) since only the chain models need them.
//
// Empty input is valid and yields empty statistics with Total == 0.
// Complexity: O(n) time in the input length, O(k) space in distinct keys.
package counter
