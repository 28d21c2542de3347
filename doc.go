// SPDX-License-Identifier: MIT

// Package lvtext learns empirical probability models from a reference text
// and samples new text from them.
//
// 🚀 What is lvtext?
//
//	A small, dependency-light toolkit that brings together:
//		• Alphabets: accepted symbols and their letter subset, with presets
//		• Counting: symbols, adjacent pairs, words and word pairs in one pass
//		• Tables: normalized distributions and dense conditional transitions
//		• Sampling: one weighted-draw primitive with explicit tie handling
//		• Generation: independent symbols, symbol chains and word chains
//
// ✨ Models:
//
//	1 - independent symbols drawn from the unigram table
//	2 - first-order symbol chain (next symbol given the previous one)
//	3 - first-order word chain (next word given the previous one)
//
// Packages, leaves first:
//
//	alphabet/    - symbol set, letter subset, language presets
//	counter/     - frequency counts over filtered and cleaned text
//	matrix/      - dense row-major storage, L1 row normalization, row checks
//	probability/ - unigram and bigram tables, conditional transitions
//	sampler/     - weighted sampling over (item, weight) pairs, seeded streams
//	generator/   - model variants and the single Generate walk
//	textgen/     - the engine: define → feed → identify → generate
//	sink/        - text and report sinks (files, YAML, CSV)
//
// Executables live in cmd/textgen (batch) and cmd/textgen-server (JSON API).
//
// Quick example:
//
//	e, _ := textgen.New(generator.WordChain)
//	_ = e.DefineFrom(alphabetFile, alphabet.English)
//	_ = e.Feed(corpus)
//	_ = e.Identify()
//	seq, _ := e.Generate(50)
//	fmt.Println(seq.Text)
package lvtext
