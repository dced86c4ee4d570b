package wellness

import (
	"math/rand/v2"
	"sync"
)

// RandomSource picks an index in [0, n). Tests pass a scripted stub.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source that is safe for concurrent
// use. A zero seed draws one from the runtime.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Pick returns one element of items chosen by r. Zero value for an empty slice.
func Pick[T any](r RandomSource, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[boundedIndex(r, len(items))]
}

// boundedIndex guards against stubs returning out-of-range values.
func boundedIndex(r RandomSource, n int) int {
	i := r.IntN(n)
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return i
}
