// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvtext/matrix"
)

// BenchmarkNormalizeRowsL1_Alphabet mirrors a symbol transition table
// (roughly 70 symbols, every row populated).
func BenchmarkNormalizeRowsL1_Alphabet(b *testing.B) {
	const n = 70
	m, _ := matrix.NewSquare(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, float64((i*j)%7))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := matrix.NormalizeRowsL1(m); err != nil {
			b.Fatal(err)
		}
	}
}
