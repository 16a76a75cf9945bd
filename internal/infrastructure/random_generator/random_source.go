package randomgenerator

import (
	"math/rand/v2"
	"sync"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
)

// RandomSource draws uniform indexes from math/rand/v2.
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ contract.IRandomSource = (*RandomSource)(nil)

// NewRandomSource uses the runtime-seeded global generator.
func NewRandomSource() *RandomSource {
	return &RandomSource{}
}

// NewSeededRandomSource returns a reproducible source.
func NewSeededRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandomSource) Intn(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
