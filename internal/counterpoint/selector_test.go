package counterpoint

import (
	"testing"

	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Empty(t *testing.T) {
	_, err := NewSelector(1).Select(nil)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestSelector_Singleton(t *testing.T) {
	only := voice("C5", "B4", "A4", "B4", "C5")
	s := NewSelector(42)
	for i := 0; i < 10; i++ {
		got, err := s.Select([]music.Voice{only})
		require.NoError(t, err)
		assert.True(t, only.Equal(got))
	}
}

func TestSelector_SameSeedSameChoice(t *testing.T) {
	solutions := []music.Voice{
		voice("C4", "D4", "E4"),
		voice("E4", "F4", "G4"),
		voice("G4", "A4", "B4"),
		voice("C5", "D5", "E5"),
	}
	a, b := NewSelector(7), NewSelector(7)
	for i := 0; i < 20; i++ {
		x, err := a.Select(solutions)
		require.NoError(t, err)
		y, err := b.Select(solutions)
		require.NoError(t, err)
		assert.True(t, x.Equal(y))
	}
}

// Five options over 5000 draws; 18.47 is the chi-square critical value for
// four degrees of freedom at p = 0.001.
func TestSelector_Uniform(t *testing.T) {
	solutions := []music.Voice{
		voice("C4", "D4", "E4"),
		voice("D4", "E4", "F4"),
		voice("E4", "F4", "G4"),
		voice("F4", "G4", "A4"),
		voice("G4", "A4", "B4"),
	}
	const trials = 5000
	counts := make(map[string]int)

	s := NewSelector(20240601)
	for i := 0; i < trials; i++ {
		got, err := s.Select(solutions)
		require.NoError(t, err)
		counts[got.String()]++
	}

	require.Len(t, counts, len(solutions))
	expected := float64(trials) / float64(len(solutions))
	chi := 0.0
	for _, n := range counts {
		d := float64(n) - expected
		chi += d * d / expected
	}
	assert.Less(t, chi, 18.47)
}
