package generator

import (
	"math/rand/v2"
	"time"
)

// Source supplies the random draws consumed by the generator.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
}

type randSource struct {
	rng *rand.Rand
}

// NewRandSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewRandSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *randSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *randSource) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}
