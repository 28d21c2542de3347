// SPDX-License-Identifier: MIT

// Package textgen is the modeling engine: it owns an alphabet, the counts of
// the fed input, the fitted probability tables, and the last generated text.
//
// 🚀 Lifecycle:
//
//	e, _ := textgen.New(generator.SymbolChain, textgen.WithSeed(7))
//	_ = e.DefineFrom(alphabetFile, alphabet.Danish) // 1. accepted symbols
//	_ = e.Feed(corpus)                              // 2. count the input
//	_ = e.Identify()                                // 3. fit the active model
//	seq, _ := e.Generate(500)                       // 4. sample
//	_ = e.Save(sink.FileTextSink{Dir: "out", Name: "story"})
//
// Redefining the alphabet clears everything fed or fitted; feeding again
// clears the fitted tables. ChangeModel switches the active model and, once
// probabilities are identified, fits the new model from the retained input.
//
// Errors (match with errors.Is):
//   - ErrConfiguration: no alphabet defined.
//   - ErrPrecondition:  a step is missing ("input not fed", "probabilities not
//     identified", "no text generated"); an empty corpus surfaces here too,
//     with probability.ErrZeroDenominator kept in the chain.
//   - ErrInvalidArgument: model outside {1,2,3}, length ≤ 1, nil inputs.
//
// Every operation either succeeds or leaves the engine exactly as it was.
//
// Concurrency: an Engine is NOT safe for concurrent use; guard it externally.
package textgen
