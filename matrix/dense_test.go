// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtext/matrix"
)

func TestNewDense_InvalidShape(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 0.5))
	assert.Equal(t, 0.5, MustAt(t, m, 1, 0))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_NaNPolicy(t *testing.T) {
	t.Parallel()

	strict, _ := matrix.NewDense(1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	loose, _ := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))
}

func TestDense_AddAccumulates(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewDense(1, 2)
	require.NoError(t, m.Add(0, 1, 0.25))
	require.NoError(t, m.Add(0, 1, 0.5))
	assert.InDelta(t, 0.75, MustAt(t, m, 0, 1), 1e-15)
}

func TestDense_RowIsACopy(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	row[0] = 99
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0), "Row must not alias storage")
}

func TestValidateNotNil_TypedNil(t *testing.T) {
	t.Parallel()

	var d *matrix.Dense
	err := matrix.ValidateNotNil(d)
	require.True(t, errors.Is(err, matrix.ErrNilMatrix))
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	rect, _ := matrix.NewDense(2, 3)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	sq, _ := matrix.NewSquare(3)
	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
