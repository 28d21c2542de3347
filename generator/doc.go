// SPDX-License-Identifier: MIT

// Package generator synthesizes text from a fitted model.
//
// A Model is one of three variants, built from probability tables:
//   - NewUnigram:     independent symbols (Kind Independent).
//   - NewSymbolChain: first-order symbol chain (Kind SymbolChain).
//   - NewWordChain:   first-order word chain (Kind WordChain).
//
// Generate is the single generation function for all of them.
//
// Independent: n draws from the unigram table.
//
// Chains: a seed pair is drawn from the global pair table and both of its
// units are emitted. Each further step draws a follower from the transition
// row of the current pair's second unit; the new pair's first unit must equal
// the current pair's second unit, and its second unit is emitted. Every pair
// therefore contributes its first unit, and the last pair also its second.
//
// Dead ends: a unit never observed as a predecessor has an all-zero row. The
// walk then restarts from a fresh seed pair and counts the restart, so every
// adjacent pair in the output was observed in training except across restarts.
//
// Output is exactly n units. Symbols are concatenated; words are joined with a
// single space.
package generator
