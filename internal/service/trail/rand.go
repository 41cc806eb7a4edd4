package trail

import (
	"math/rand/v2"
	"sync"
)

// RandSource is the randomness the scheduler draws from.
type RandSource interface {
	IntN(n int) int
	Int64N(n int64) int64
}

// Rand is a RandSource safe for concurrent use.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a PCG-backed generator. Seed 0 picks a random seed.
func NewRand(seed uint64) *Rand {
	hi, lo := seed, seed
	if seed == 0 {
		hi, lo = rand.Uint64(), rand.Uint64()
	}
	return &Rand{r: rand.New(rand.NewPCG(hi, lo))}
}

func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}

func (r *Rand) Int64N(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Int64N(n)
}
