// Package rng provides the single pseudo-random source shared by the graph
// generators and the benchmark driver.
//
// A Source is owned explicitly: it is created once (from a fixed seed in
// tests, from OS entropy in production) and passed by pointer to every
// component that draws random numbers. No package-level generator exists.
//
// Contract:
//
//   - Int(min, max) returns an integer in [min, max] inclusive, obtained by
//     rounding min + (max-min)*u for a uniform real u in [0,1).
//   - Float(min, max) returns a real in [min, max].
//   - A Source is NOT safe for concurrent use. A concurrent caller must give
//     every worker its own Source (see Split) or serialize access.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrBadRange is the panic cause of a draw with min > max.
var ErrBadRange = errors.New("rng: min must not exceed max")

// Source is a seeded pseudo-random generator.
type Source struct {
	r    *rand.Rand
	seed int64
}

// New returns a Source seeded with seed. Two Sources built from the same
// seed produce the same sequence of draws.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewFromEntropy returns a Source seeded once from the operating system's
// entropy pool. The chosen seed is available via Seed so a run can be
// replayed later.
func NewFromEntropy() (*Source, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("rng: read entropy: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) & math.MaxInt64)

	return New(seed), nil
}

// Seed reports the seed this Source was created with.
func (s *Source) Seed() int64 { return s.seed }

// unit draws a uniform real in [0,1).
func (s *Source) unit() float64 { return s.r.Float64() }

// Int returns a uniformly drawn integer in [min, max] inclusive.
// The endpoints carry half the probability mass of interior values, since
// the draw rounds a uniform real. Panics if min > max.
func (s *Source) Int(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("rng: Int(%d, %d): %v", min, max, ErrBadRange))
	}

	return min + int(math.Round(float64(max-min)*s.unit()))
}

// Int64 is the int64 variant of Int.
func (s *Source) Int64(min, max int64) int64 {
	if min > max {
		panic(fmt.Sprintf("rng: Int64(%d, %d): %v", min, max, ErrBadRange))
	}

	return min + int64(math.Round(float64(max-min)*s.unit()))
}

// Float returns a uniformly drawn real in [min, max]. Panics if min > max.
func (s *Source) Float(min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("rng: Float(%g, %g): %v", min, max, ErrBadRange))
	}

	return min + (max-min)*s.unit()
}

// Index returns an index in [0, n) drawn through Int, so 0 and n-1 carry
// half the probability of interior indices. Panics if n <= 0.
func (s *Source) Index(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: Index(%d): n must be positive", n))
	}

	return s.Int(0, n-1)
}

// Split derives an independent Source whose seed is drawn from s.
// Intended for handing separate generators to concurrent workers.
func (s *Source) Split() *Source {
	return New(s.r.Int63())
}
