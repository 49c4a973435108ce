// Package synth turns form input or a prompt analysis into card text.
package synth

import "math/rand/v2"

// RNG picks an index in [0, n). Tests supply a fixed sequence.
type RNG interface {
	Intn(n int) int
}

// RandomSource delegates to math/rand/v2.
type RandomSource struct {
	r *rand.Rand
}

// NewRandomSource returns an auto-seeded source.
func NewRandomSource() *RandomSource {
	return &RandomSource{}
}

// NewSeededSource returns a source that repeats its sequence for a seed.
func NewSeededSource(seed uint64) *RandomSource {
	return &RandomSource{r: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// Intn returns a value in [0, n).
func (s *RandomSource) Intn(n int) int {
	if s.r == nil {
		return rand.IntN(n)
	}
	return s.r.IntN(n)
}
