// Package rng supplies seeded pseudo-random integers.
//
// A [Rand] carries its own seed state, so independent callers never share a
// stream. It is not safe for concurrent use.
package rng

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/BeatGlow/rawcolor"
)

// Source of pseudo-random integers. A *rand.Rand from math/rand/v2 satisfies
// this interface.
type Source interface {
	// Uint32 returns a pseudo-random 32-bit value.
	Uint32() uint32

	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Rand is a seedable PCG generator.
type Rand struct {
	pcg *rand.PCG
	r   *rand.Rand
}

// New returns a generator seeded with seed.
func New(seed uint32) *Rand {
	pcg := rand.NewPCG(uint64(seed), 0)
	return &Rand{
		pcg: pcg,
		r:   rand.New(pcg),
	}
}

// Seed resets the generator; the same seed always yields the same stream.
func (r *Rand) Seed(seed uint32) {
	r.pcg.Seed(uint64(seed), 0)
}

func (r *Rand) Uint32() uint32 {
	return r.r.Uint32()
}

func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// IntRange returns a value in [min, max).
func (r *Rand) IntRange(min, max int) (int, error) {
	return IntRange(r, min, max)
}

// IntRange returns a value in [min, max) drawn from src. Any range with
// max > min is valid, including ones wider than the largest int.
func IntRange(src Source, min, max int) (int, error) {
	if max <= min {
		return 0, fmt.Errorf("rng: range [%d, %d): %w", min, max, rawcolor.ErrInvalidRange)
	}
	return offset(min, uint64N(src, span(min, max))), nil
}

// span returns max-min, which always fits in a uint64 when max > min.
func span(min, max int) uint64 {
	return uint64(int64(max)) - uint64(int64(min))
}

// offset returns min+v; the sum wraps back into range when min is negative.
func offset(min int, v uint64) int {
	return int(int64(uint64(int64(min)) + v))
}

const maxInt = int(^uint(0) >> 1)

// uint64N returns a value in [0, n) drawn from src; n must not be zero.
// Bounds up to the largest int use a single IntN draw, wider ones are
// sampled from pairs of Uint32 values.
func uint64N(src Source, n uint64) uint64 {
	if n <= uint64(maxInt) {
		return uint64(src.IntN(int(n)))
	}
	mask := ^uint64(0) >> bits.LeadingZeros64(n-1)
	for {
		v := (uint64(src.Uint32())<<32 | uint64(src.Uint32())) & mask
		if v < n {
			return v
		}
	}
}

// Byte returns a value in [0, 255] drawn from src.
func Byte(src Source) uint8 {
	return uint8(src.IntN(256))
}

// Ints sets every value in dst to a value in [min, max), in index order.
func Ints(src Source, dst []int, min, max int) error {
	if max <= min {
		return fmt.Errorf("rng: range [%d, %d): %w", min, max, rawcolor.ErrInvalidRange)
	}
	n := span(min, max)
	for i := range dst {
		dst[i] = offset(min, uint64N(src, n))
	}
	return nil
}

// AddCapped adds a random amount to every value in dst such that the result
// stays below limit. Values must already be below limit.
func AddCapped(src Source, dst []uint, limit uint) error {
	for i, v := range dst {
		if v >= limit {
			return fmt.Errorf("rng: value %d at index %d is not below %d: %w", v, i, limit, rawcolor.ErrInvalidRange)
		}
	}
	for i, v := range dst {
		dst[i] = v + uint(uint64N(src, uint64(limit-v)))
	}
	return nil
}
