package rng

import (
	"math/rand/v2"
)

// Source draws uniformly distributed integers. It is the only external
// dependency of the generation loop, so swapping it for a seeded or
// scripted implementation makes runs reproducible.
type Source interface {
	// Uniform returns an integer in [low, high], both ends inclusive.
	// low must not exceed high.
	Uniform(low, high int64) int64
}

type pcgSource struct {
	r *rand.Rand
}

// New returns an unseeded Source. Every call produces an independent
// stream; two runs with unseeded sources will not match.
func New() Source {
	return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic Source. The same seed always yields
// the same sampling sequence.
func NewSeeded(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *pcgSource) Uniform(low, high int64) int64 {
	if low > high {
		panic("rng: Uniform called with low > high")
	}
	return low + s.r.Int64N(high-low+1)
}
