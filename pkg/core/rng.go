package core

import "math/rand/v2"

// RNG wraps a PCG-backed math/rand/v2 generator so that every seeded run is
// reproducible.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// OneIn reports true with probability 1/n. Values of n below 2 always succeed.
func (r *RNG) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}
