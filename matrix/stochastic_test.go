// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtext/matrix"
)

func TestRowSums_FastAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 0, 0, 0})
	fast, err := matrix.RowSums(X)
	require.NoError(t, err)
	slow, err := matrix.RowSums(hide{X})
	require.NoError(t, err)

	assert.Equal(t, []float64{6, 0}, fast)
	assert.Equal(t, fast, slow)
}

func TestNormalizeRowsL1_ZeroRowStaysZero(t *testing.T) {
	t.Parallel()

	// Row 0 holds global pair probabilities for one context; row 1 was never a context.
	X := NewFilledDense(t, 2, 3, []float64{0.1, 0, 0.3, 0, 0, 0})
	Y, norms, err := matrix.NormalizeRowsL1(X)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.4, 0}, norms, 1e-12)
	assert.InDelta(t, 0.25, MustAt(t, Y, 0, 0), 1e-12)
	assert.InDelta(t, 0.0, MustAt(t, Y, 0, 1), 0)
	assert.InDelta(t, 0.75, MustAt(t, Y, 0, 2), 1e-12)

	sums, err := matrix.RowSums(Y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sums[0], 1e-12)
	assert.Equal(t, 0.0, sums[1], "degenerate row must sum to exactly 0")

	// The input is not mutated.
	assert.Equal(t, 0.1, MustAt(t, X, 0, 0))
}

func TestNormalizeRowsL1_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 3, []float64{1, 1, 2, 0, 0, 0, 5, 0, 5})
	fast, _, err := matrix.NormalizeRowsL1(X)
	require.NoError(t, err)
	slow, _, err := matrix.NormalizeRowsL1(hide{X})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, MustAt(t, fast, i, j), MustAt(t, slow, i, j), 1e-15)
		}
	}
}

func TestNormalizeRowsL1_Nil(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.NormalizeRowsL1(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateRowStochastic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		vals []float64
		want error
	}{
		{"stochastic and zero rows", []float64{0.5, 0.5, 0, 0}, nil},
		{"within tolerance", []float64{0.49999, 0.5, 1, 0}, nil},
		{"short row", []float64{0.2, 0.2, 1, 0}, matrix.ErrNotStochastic},
		{"negative entry", []float64{1.5, -0.5, 0, 0}, matrix.ErrNegativeEntry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewFilledDense(t, 2, 2, tc.vals)
			err := matrix.ValidateRowStochastic(m, matrix.DefaultRowTolerance)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
