// SPDX-License-Identifier: MIT

package sampler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtext/sampler"
)

// fixedSource makes every Float64 draw return z.
type fixedSource struct{ v int64 }

func (f fixedSource) Int63() int64 { return f.v }
func (f fixedSource) Seed(int64)   {}

func atZ(z float64) *sampler.Sampler {
	return sampler.New(sampler.WithSource(fixedSource{v: int64(z * (1 << 63))}))
}

func TestSample_SingleCandidate(t *testing.T) {
	t.Parallel()

	s := sampler.New(sampler.WithSeed(7))
	for i := 0; i < 100; i++ {
		got, err := sampler.Sample(s, []sampler.Weighted[string]{{Item: "only", Weight: 0.4}})
		require.NoError(t, err)
		require.Equal(t, "only", got)

		got, err = sampler.SampleConditional(s, []sampler.Weighted[string]{{Item: "only", Weight: 1}})
		require.NoError(t, err)
		require.Equal(t, "only", got)
	}
}

func TestSample_BucketsFollowSortedWeights(t *testing.T) {
	t.Parallel()

	// Sorted: b(0.2) c(0.3) a(0.5); prefix 0, 0.2, 0.5.
	items := []sampler.Weighted[rune]{{'a', 0.5}, {'b', 0.2}, {'c', 0.3}}
	cases := []struct {
		z    float64
		want rune
	}{
		{0, 'b'},
		{0.1, 'b'},
		{0.3, 'c'},
		{0.49, 'c'},
		{0.6, 'a'},
		{0.99, 'a'},
	}
	for _, tc := range cases {
		got, err := sampler.Sample(atZ(tc.z), items)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "z=%v", tc.z)
	}
}

func TestSample_ZeroWeightNeverChosen(t *testing.T) {
	t.Parallel()

	items := []sampler.Weighted[int]{{1, 0}, {2, 1}, {3, 0}}
	for _, z := range []float64{0, 0.5, 0.999} {
		got, err := sampler.Sample(atZ(z), items)
		require.NoError(t, err)
		require.Equal(t, 2, got)
	}
}

func TestSample_Errors(t *testing.T) {
	t.Parallel()

	s := sampler.New(sampler.WithSeed(1))

	_, err := sampler.Sample[int](s, nil)
	require.ErrorIs(t, err, sampler.ErrEmpty)

	_, err = sampler.Sample(s, []sampler.Weighted[int]{{1, 0}, {2, 0}})
	require.ErrorIs(t, err, sampler.ErrZeroMass)

	_, err = sampler.SampleConditional(s, []sampler.Weighted[int]{{1, 0}})
	require.ErrorIs(t, err, sampler.ErrZeroMass)

	for _, w := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		_, err = sampler.Sample(s, []sampler.Weighted[int]{{1, 1}, {2, w}})
		require.ErrorIs(t, err, sampler.ErrInvalidWeight, "weight %v", w)
	}
}

// chiSquare returns Σ (observed − expected)² / expected.
func chiSquare(observed map[string]int, expected float64) float64 {
	var x float64
	for _, o := range observed {
		d := float64(o) - expected
		x += d * d / expected
	}
	return x
}

func TestSample_EqualWeightsAreUniform(t *testing.T) {
	t.Parallel()

	const draws = 30000
	// χ²(df=2) critical value at p = 0.001.
	const critical = 13.8

	items := []sampler.Weighted[string]{{"x", 1.0 / 3}, {"y", 1.0 / 3}, {"z", 1.0 / 3}}
	for name, draw := range map[string]func(*sampler.Sampler) (string, error){
		"Sample":            func(s *sampler.Sampler) (string, error) { return sampler.Sample(s, items) },
		"SampleConditional": func(s *sampler.Sampler) (string, error) { return sampler.SampleConditional(s, items) },
	} {
		s := sampler.New(sampler.WithSeed(42))
		seen := map[string]int{}
		for i := 0; i < draws; i++ {
			got, err := draw(s)
			require.NoError(t, err)
			seen[got]++
		}
		require.Len(t, seen, 3, name)
		assert.Less(t, chiSquare(seen, draws/3.0), critical, "%s: %v", name, seen)
	}
}

func TestSample_TiedBucketIsShared(t *testing.T) {
	t.Parallel()

	// p and q share weight 0.25; together they own half the mass.
	items := []sampler.Weighted[string]{{"p", 0.25}, {"r", 0.5}, {"q", 0.25}}
	s := sampler.New(sampler.WithSeed(3))
	seen := map[string]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		got, err := sampler.Sample(s, items)
		require.NoError(t, err)
		seen[got]++
	}
	assert.InDelta(t, 0.5, float64(seen["r"])/draws, 0.02)
	assert.InDelta(t, 0.25, float64(seen["p"])/draws, 0.02)
	assert.InDelta(t, 0.25, float64(seen["q"])/draws, 0.02)
}

func TestSample_FrequenciesFollowWeights(t *testing.T) {
	t.Parallel()

	items := []sampler.Weighted[int]{{0, 0.1}, {1, 0.6}, {2, 0.3}}
	s := sampler.New(sampler.WithSeed(11))
	counts := make([]int, 3)
	const draws = 20000
	for i := 0; i < draws; i++ {
		got, err := sampler.Sample(s, items)
		require.NoError(t, err)
		counts[got]++
	}
	for i, it := range items {
		assert.InDelta(t, it.Weight, float64(counts[i])/draws, 0.02, "item %d", i)
	}
}

func TestSampleConditional_IgnoresZeroWeights(t *testing.T) {
	t.Parallel()

	s := sampler.New(sampler.WithSeed(5))
	row := []sampler.Weighted[rune]{{'a', 0}, {'b', 0.5}, {'c', 0}, {'d', 0.5}}
	for i := 0; i < 500; i++ {
		got, err := sampler.SampleConditional(s, row)
		require.NoError(t, err)
		require.Contains(t, []rune{'b', 'd'}, got)
	}
}

func TestNew_SeedPolicy(t *testing.T) {
	t.Parallel()

	a, b := sampler.New(sampler.WithSeed(99)), sampler.New(sampler.WithSeed(99))
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}

	assert.NotEqual(t, sampler.New().Seed(), sampler.New().Seed(), "clock-seeded samplers must differ")

	d1, d2 := a.Derive(1), a.Derive(1)
	assert.NotEqual(t, d1.Seed(), d2.Seed(), "parent stream advances between derivations")

	assert.Panics(t, func() { sampler.WithSource(nil) })
}
