// Package random generates uniformly distributed integers from the
// platform's cryptographically secure randomness source.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
)

// maxSafeInt mirrors the largest integer a float64 can represent exactly;
// bounds outside it are clamped rather than rejected.
const maxSafeInt = int64(1) << 53

// IntGenerator produces bounded secure random integers.
type IntGenerator interface {
	// IntInRange returns a uniform random integer in [min, max] inclusive.
	IntInRange(min, max float64) (int64, error)
}

// Random implements IntGenerator over crypto/rand.
type Random struct{}

// NewRandom creates a new Random.
func NewRandom() *Random {
	return &Random{}
}

// IntInRange returns a uniformly distributed secure random integer in
// [min, max] inclusive. The bounds are treated defensively: non-finite
// bounds default to 0 and 1, fractional bounds are rounded, values outside
// the exactly-representable integer range are clamped, inverted bounds are
// swapped, and a span wider than 2^32 falls back to [0, 1]. Uniformity is
// guaranteed by rejection sampling: 32-bit draws that would bias the modulo
// reduction are discarded and redrawn.
func (r *Random) IntInRange(min, max float64) (int64, error) {
	lo, hi := normalizeBounds(min, max)

	span := uint64(hi-lo) + 1
	if hi-lo >= 1<<32 {
		lo, hi = 0, 1
		span = 2
	}

	// Largest multiple of span that fits in 32 bits; draws at or above it
	// would wrap unevenly across the residues.
	limit := ((uint64(1) << 32) / span) * span

	var buf [4]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("failed to read random bytes: %w", err)
		}
		u := uint64(binary.BigEndian.Uint32(buf[:]))
		if u < limit {
			return lo + int64(u%span), nil
		}
	}
}

func normalizeBounds(min, max float64) (int64, int64) {
	if math.IsNaN(min) || math.IsInf(min, 0) {
		min = 0
	}
	if math.IsNaN(max) || math.IsInf(max, 0) {
		max = 1
	}
	lo := clampSafe(math.Round(min))
	hi := clampSafe(math.Round(max))
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

func clampSafe(f float64) int64 {
	if f > float64(maxSafeInt) {
		return maxSafeInt
	}
	if f < float64(-maxSafeInt) {
		return -maxSafeInt
	}
	return int64(f)
}
