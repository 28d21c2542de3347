// SPDX-License-Identifier: MIT

package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtext/alphabet"
	"github.com/katalvlaran/lvtext/counter"
	"github.com/katalvlaran/lvtext/probability"
	"github.com/katalvlaran/lvtext/sampler"
)

// corrupt wraps a fitted chain and replaces its transition step.
type corrupt struct {
	Model
	step func(cur link) link
}

func (c corrupt) next(_ *sampler.Sampler, cur link) (link, bool, error) {
	return c.step(cur), true, nil
}

func abChain(t *testing.T) Model {
	t.Helper()
	a, err := alphabet.New([]rune("ab "), 2)
	require.NoError(t, err)
	c, err := counter.Count(a, "ab ab ab", counter.WithPairs())
	require.NoError(t, err)
	b, err := probability.SymbolBigram(c)
	require.NoError(t, err)
	m, err := NewSymbolChain(b)
	require.NoError(t, err)

	return m
}

func TestWalkChain_RejectsBrokenContinuity(t *testing.T) {
	t.Parallel()

	m := abChain(t)
	n := m.Units()
	bad := corrupt{Model: m, step: func(cur link) link {
		return link{head: (cur.tail + 1) % n, tail: cur.tail}
	}}

	_, err := Generate(bad, 10, sampler.New(sampler.WithSeed(1)))
	require.ErrorIs(t, err, ErrContinuity)
}

func TestWalkChain_RejectsUnobservedFollower(t *testing.T) {
	t.Parallel()

	// Every unit of "ab ab ab" is followed by a different one, so a unit
	// repeating itself has no mass in the transition table.
	m := abChain(t)
	bad := corrupt{Model: m, step: func(cur link) link {
		return link{head: cur.tail, tail: cur.tail}
	}}

	_, err := Generate(bad, 10, sampler.New(sampler.WithSeed(1)))
	require.ErrorIs(t, err, ErrContinuity)
}

func TestWalkChain_FollowsMatchesTable(t *testing.T) {
	t.Parallel()

	m := abChain(t)
	c, ok := m.(*chain[rune])
	require.True(t, ok)
	a, b, sp := c.tr.Index('a'), c.tr.Index('b'), c.tr.Index(' ')

	require.True(t, m.follows(a, b))
	require.True(t, m.follows(b, sp))
	require.True(t, m.follows(sp, a))
	require.False(t, m.follows(a, a))
	require.False(t, m.follows(b, a))
}
