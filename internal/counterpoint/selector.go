package counterpoint

import (
	"math/rand/v2"
	"sync"

	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
)

// Selector picks one solution uniformly at random
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector with a seeded source
func NewSelector(seed uint64) *Selector {
	return &Selector{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Select returns one element of solutions, or ErrNoSolution when empty
func (s *Selector) Select(solutions []music.Voice) (music.Voice, error) {
	if len(solutions) == 0 {
		return nil, ErrNoSolution
	}
	s.mu.Lock()
	i := s.rng.IntN(len(solutions))
	s.mu.Unlock()
	return solutions[i], nil
}
