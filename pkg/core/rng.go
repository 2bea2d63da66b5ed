package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Worlds never touch a global random source.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns true with probability p.
func (r *RNG) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBinary fills the buffer with 1s drawn with probability p and 0s
// otherwise.
func FillBinary(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		buf[i] = 0
		if p >= 1 || (p > 0 && r.Float64() < p) {
			buf[i] = 1
		}
	}
}
