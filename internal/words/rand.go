package words

import (
	"math/rand/v2"
	"sync"
)

// Rand picks an index in [0, n). Implementations must be safe for concurrent use.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// lockedRand serializes access to a *rand.Rand, which is not safe for concurrent use.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}

// NewSeededRand returns a reproducible Rand for the given seed.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
