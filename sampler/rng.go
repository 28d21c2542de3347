// SPDX-License-Identifier: MIT

// Package sampler - RNG construction.
//
// Policy:
//   - An explicit seed is used verbatim; seed 0 maps to defaultRNGSeed.
//   - Without a seed, the stream is seeded from the clock and a process-wide
//     counter, mixed through deriveSeed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package sampler

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// streams numbers clock-seeded samplers created in this process.
var streams atomic.Uint64

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// clockSeed returns a seed that differs between calls within one process even
// when the clock does not advance.
func clockSeed() int64 {
	return deriveSeed(time.Now().UnixNano(), streams.Add(1))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
