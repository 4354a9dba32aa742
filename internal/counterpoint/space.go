package counterpoint

import (
	"fmt"
	"iter"
	"math/big"

	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
)

// SearchSpace is the cross-product of per-position candidate sets. Lines
// are addressed by a mixed-radix index with the last position varying
// fastest.
type SearchSpace struct {
	sets [][]music.PitchEvent
	size *big.Int
}

// NewSearchSpace builds a space over the given candidate sets
func NewSearchSpace(sets [][]music.PitchEvent) (*SearchSpace, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no positions", ErrInvalidSpeciesConfiguration)
	}
	size := big.NewInt(1)
	for i, set := range sets {
		if len(set) == 0 {
			return nil, fmt.Errorf("%w: empty candidate set at position %d", ErrInvalidSpeciesConfiguration, i)
		}
		size.Mul(size, big.NewInt(int64(len(set))))
	}
	return &SearchSpace{sets: sets, size: size}, nil
}

// BuildSearchSpace shapes every position of ref and forms the cross-product
func BuildSearchSpace(ref music.Voice, shaper *Shaper) (*SearchSpace, error) {
	sets, err := shaper.Shape(ref)
	if err != nil {
		return nil, err
	}
	return NewSearchSpace(sets)
}

// Size is the exact number of candidate lines
func (s *SearchSpace) Size() *big.Int {
	return new(big.Int).Set(s.size)
}

// Count returns the size as uint64, false when it does not fit
func (s *SearchSpace) Count() (uint64, bool) {
	if !s.size.IsUint64() {
		return 0, false
	}
	return s.size.Uint64(), true
}

// At decodes the line at the given index. The index must be below Count.
func (s *SearchSpace) At(index uint64) music.Voice {
	line := make(music.Voice, len(s.sets))
	digits := s.digits(index)
	for i, d := range digits {
		line[i] = s.sets[i][d]
	}
	return line
}

func (s *SearchSpace) digits(index uint64) []int {
	digits := make([]int, len(s.sets))
	for i := len(s.sets) - 1; i >= 0; i-- {
		radix := uint64(len(s.sets[i]))
		digits[i] = int(index % radix)
		index /= radix
	}
	return digits
}

// Range yields lines with indices in [start, end), stepping like an odometer
func (s *SearchSpace) Range(start, end uint64) iter.Seq2[uint64, music.Voice] {
	return func(yield func(uint64, music.Voice) bool) {
		if start >= end {
			return
		}
		digits := s.digits(start)
		for idx := start; idx < end; idx++ {
			line := make(music.Voice, len(s.sets))
			for i, d := range digits {
				line[i] = s.sets[i][d]
			}
			if !yield(idx, line) {
				return
			}
			for i := len(digits) - 1; i >= 0; i-- {
				digits[i]++
				if digits[i] < len(s.sets[i]) {
					break
				}
				digits[i] = 0
			}
		}
	}
}
