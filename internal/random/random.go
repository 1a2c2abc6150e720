// Package random provides the seeded pseudo-random generator used by the
// game logic. The generator is SplitMix64; every randomized decision in the
// engine flows through it, so for a fixed seed the whole playthrough is
// reproducible across platforms.
package random

import "fmt"

// Rng is a SplitMix64 generator.
type Rng struct {
	state uint64
}

// New creates a generator with the given seed.
func New(seed uint64) *Rng {
	return &Rng{state: seed}
}

// U64 returns the next value, uniform in the full uint64 range.
func (r *Rng) U64() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Below returns a value uniform in [0, n). Uses rejection sampling so the
// distribution stays uniform for every n. Panics if n is 0.
func (r *Rng) Below(n uint64) uint64 {
	if n == 0 {
		panic("random: upper bound must be positive")
	}
	// Largest multiple of n that fits in a uint64.
	limit := (^uint64(0) / n) * n
	for {
		v := r.U64()
		if v < limit {
			return v % n
		}
	}
}

// InRange returns a value uniform in the half-open interval [lo, hi).
// Panics if lo >= hi.
func (r *Rng) InRange(lo, hi int) int {
	if lo >= hi {
		panic(fmt.Sprintf("random: invalid range [%d, %d)", lo, hi))
	}
	return lo + int(r.Below(uint64(hi-lo)))
}

// InRangeInclusive returns a value uniform in the closed interval [lo, hi].
// Panics if lo > hi.
func (r *Rng) InRangeInclusive(lo, hi int) int {
	if lo > hi {
		panic(fmt.Sprintf("random: invalid range [%d, %d]", lo, hi))
	}
	return lo + int(r.Below(uint64(hi-lo)+1))
}

// Index returns an index uniform in [0, n). Panics if n <= 0.
func (r *Rng) Index(n int) int {
	if n <= 0 {
		panic("random: cannot pick from an empty collection")
	}
	return int(r.Below(uint64(n)))
}

// RollDice returns true with probability 1/n.
func (r *Rng) RollDice(n uint64) bool {
	return r.Below(n) == 0
}

// Element returns a uniformly chosen element of the slice.
// Panics on an empty slice.
func Element[T any](r *Rng, s []T) T {
	return s[r.Index(len(s))]
}
