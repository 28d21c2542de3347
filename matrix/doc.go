// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 storage used for
// conditional transition tables, together with the row-stochastic kernels
// built on top of it.
//
// 🚀 What is in here?
//
//	A transition table over n units (symbols or words) is an n×n matrix whose
//	row i is the probability distribution of the unit that follows unit i.
//	Such a row is either fully degenerate (the context was never observed as a
//	predecessor, so every entry is 0) or sums to 1.
//
// ✨ Key pieces:
//   - Dense            - flat row-major buffer, bounds-checked At/Set, Row copies
//   - RowSums          - per-row mass
//   - NormalizeRowsL1  - scale every row to unit L1 mass; all-zero rows stay all-zero
//   - ValidateRowStochastic - verify the "zero or ≈1" row invariant within a tolerance
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewDense(3, 3)
//	_ = m.Set(0, 1, 0.25)
//	_ = m.Set(0, 2, 0.25)
//	p, _, _ := matrix.NormalizeRowsL1(m) // row 0 → [0 0.5 0.5], rows 1..2 stay zero
//	err := matrix.ValidateRowStochastic(p, matrix.DefaultRowTolerance)
//
// Errors are package sentinels (see errors.go) and must be matched with errors.Is.
// Public surfaces never panic on user input.
package matrix
