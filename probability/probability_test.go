// SPDX-License-Identifier: MIT

package probability_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtext/alphabet"
	"github.com/katalvlaran/lvtext/counter"
	"github.com/katalvlaran/lvtext/probability"
)

func countAll(t *testing.T, symbols string, letters int, text string) *counter.Counts {
	t.Helper()
	a, err := alphabet.New([]rune(symbols), letters)
	require.NoError(t, err)
	c, err := counter.Count(a, text, counter.WithPairs(), counter.WithWords())
	require.NoError(t, err)
	return c
}

func TestUnigram_ABScenario(t *testing.T) {
	t.Parallel()

	u, err := probability.Unigram(countAll(t, "ab ", 2, "ab ab ab"))
	require.NoError(t, err)

	assert.InDelta(t, 3.0/8, u.Prob('a'), 1e-12)
	assert.InDelta(t, 3.0/8, u.Prob('b'), 1e-12)
	assert.InDelta(t, 2.0/8, u.Prob(' '), 1e-12)
	assert.InDelta(t, 1.0, u.Sum(), probability.DefaultTolerance)
	assert.Equal(t, []rune("ab "), u.Keys())
}

func TestUnigram_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := probability.Unigram(countAll(t, "ab ", 2, ""))
	require.ErrorIs(t, err, probability.ErrZeroDenominator)

	_, err = probability.Unigram(nil)
	require.ErrorIs(t, err, probability.ErrMissingCounts)
}

func TestSymbolBigram_ABScenario(t *testing.T) {
	t.Parallel()

	b, err := probability.SymbolBigram(countAll(t, "ab ,", 2, "ab ab ab"))
	require.NoError(t, err)

	assert.InDelta(t, 3.0/7, b.Pairs.Prob(counter.SymbolPair{First: 'a', Second: 'b'}), 1e-12)
	assert.InDelta(t, 2.0/7, b.Pairs.Prob(counter.SymbolPair{First: 'b', Second: ' '}), 1e-12)
	assert.InDelta(t, 2.0/7, b.Pairs.Prob(counter.SymbolPair{First: ' ', Second: 'a'}), 1e-12)

	tr := b.Transitions
	require.Equal(t, 4, tr.Len(), "one row per alphabet symbol, no extra row")
	assert.InDelta(t, 1.0, tr.Prob('a', 'b'), 1e-12)
	assert.InDelta(t, 1.0, tr.Prob('b', ' '), 1e-12)
	assert.InDelta(t, 1.0, tr.Prob(' ', 'a'), 1e-12)
	assert.False(t, tr.HasSuccessors(','))
	assert.False(t, tr.HasSuccessors('b'+100))
	require.NoError(t, tr.Validate(probability.DefaultTolerance))
}

func TestSymbolBigram_RowInvariant(t *testing.T) {
	t.Parallel()

	text := "the cat sat on the mat, then the hat sat on the cat."
	c := countAll(t, "abcdefghijklmnopqrstuvwxyz ,.", 26, text)
	b, err := probability.SymbolBigram(c)
	require.NoError(t, err)

	for i := 0; i < b.Transitions.Len(); i++ {
		row, err := b.Transitions.Row(i)
		require.NoError(t, err)
		var s float64
		for _, v := range row {
			s += v
		}
		if s == 0 {
			continue
		}
		require.InDelta(t, 1.0, s, probability.DefaultTolerance, "row %q: %s", b.Transitions.Key(i), spew.Sdump(row))
	}

	// 'z' never occurs; its row is exactly zero.
	row, err := b.Transitions.RowOf('z')
	require.NoError(t, err)
	for _, v := range row {
		require.Equal(t, 0.0, v)
	}

	// 't' is followed by 'h' 5 times, ' ' 4 times, ',' and '.' once each.
	assert.InDelta(t, 5.0/11, b.Transitions.Prob('t', 'h'), 1e-12)
	assert.InDelta(t, 4.0/11, b.Transitions.Prob('t', ' '), 1e-12)
	assert.InDelta(t, 1.0/11, b.Transitions.Prob('t', '.'), 1e-12)
}

func TestSymbolBigram_Errors(t *testing.T) {
	t.Parallel()

	a, err := alphabet.New([]rune("ab"), 2)
	require.NoError(t, err)
	noPairs, err := counter.Count(a, "ab")
	require.NoError(t, err)
	_, err = probability.SymbolBigram(noPairs)
	require.ErrorIs(t, err, probability.ErrMissingCounts)

	_, err = probability.SymbolBigram(countAll(t, "ab", 2, "a"))
	require.ErrorIs(t, err, probability.ErrZeroDenominator, "one symbol has no pairs")

	_, err = probability.SymbolBigram(nil)
	require.ErrorIs(t, err, probability.ErrMissingCounts)
}

func TestWordBigram(t *testing.T) {
	t.Parallel()

	text := "to be, or not to be. to see"
	b, err := probability.WordBigram(countAll(t, "abcdefghijklmnopqrstuvwxyz ,.", 26, text))
	require.NoError(t, err)

	assert.Equal(t, []string{"to", "be", "or", "not", "see"}, b.Units.Keys())
	assert.InDelta(t, 3.0/8, b.Units.Prob("to"), 1e-12, "normalized by total words")
	assert.InDelta(t, 1.0, b.Units.Sum(), probability.DefaultTolerance)

	tr := b.Transitions
	assert.InDelta(t, 2.0/3, tr.Prob("to", "be"), 1e-12)
	assert.InDelta(t, 1.0/3, tr.Prob("to", "see"), 1e-12)
	assert.InDelta(t, 0.5, tr.Prob("be", "or"), 1e-12)
	assert.False(t, tr.HasSuccessors("see"), "last word has no follower")
	require.NoError(t, tr.Validate(probability.DefaultTolerance))

	_, err = tr.RowOf("hamlet")
	require.ErrorIs(t, err, probability.ErrUnknownKey)
}

func TestWordBigram_Errors(t *testing.T) {
	t.Parallel()

	_, err := probability.WordBigram(countAll(t, "ab ", 2, "ab"))
	require.ErrorIs(t, err, probability.ErrZeroDenominator, "one word has no pairs")

	_, err = probability.WordBigram(countAll(t, "ab ", 2, strings.Repeat(" ", 4)))
	require.ErrorIs(t, err, probability.ErrZeroDenominator)
}
