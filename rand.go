package main

// Rand is a small xorshift generator owned by a single World. The simulation
// never reads ambient randomness: seeding a world reproduces every spread
// angle, drop offset and bot decision tick for tick.
type Rand struct {
	s uint64
}

// NewRand creates a generator from a seed (0 is remapped, xorshift stalls on it)
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &Rand{s: seed}
}

// Float returns a float64 in [0, 1)
func (r *Rand) Float() float64 {
	r.s ^= r.s << 13
	r.s ^= r.s >> 7
	r.s ^= r.s << 17
	return float64(r.s%10000) / 10000.0
}

// Range returns a float64 uniformly sampled in [lo, hi)
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.Float() < p
}

// Intn returns an int in [0, n)
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float() * float64(n))
}
