package counterpoint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator(WithWorkers(2), WithSeed(3))
	seed := uint64(99)

	tests := []struct {
		name    string
		species Species
		length  int
	}{
		{"first species", FirstSpecies, 5},
		{"second species", SecondSpecies, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{Reference: voice(exampleCF...), Species: tt.species, Seed: &seed}
			res, err := gen.Generate(context.Background(), req)
			require.NoError(t, err)

			assert.Len(t, res.Counterpoint, tt.length)
			assert.Equal(t, tt.species, res.Species)
			assert.Equal(t, uint64(len(res.Solutions)), res.Stats.Accepted)

			member := false
			for _, s := range res.Solutions {
				if s.Equal(res.Counterpoint) {
					member = true
					break
				}
			}
			assert.True(t, member)

			again, err := gen.Generate(context.Background(), req)
			require.NoError(t, err)
			assert.True(t, res.Counterpoint.Equal(again.Counterpoint), "same seed should select the same line")
		})
	}
}

func TestGenerator_Errors(t *testing.T) {
	tests := []struct {
		name string
		gen  *Generator
		req  Request
		err  error
	}{
		{
			name: "reference too short",
			gen:  NewGenerator(),
			req:  Request{Reference: voice("C4", "D4"), Species: FirstSpecies},
			err:  ErrInvalidReferenceLength,
		},
		{
			name: "unknown species",
			gen:  NewGenerator(),
			req:  Request{Reference: voice(exampleCF...), Species: Species(5)},
			err:  ErrInvalidSpeciesConfiguration,
		},
		{
			name: "space over the ceiling",
			gen:  NewGenerator(WithMaxSearchSpace(100)),
			req:  Request{Reference: voice(exampleCF...), Species: FirstSpecies},
			err:  ErrSearchSpaceTooLarge,
		},
		{
			// the sixth over C4 can only reach G5 by a minor seventh
			name: "no valid line",
			gen:  NewGenerator(),
			req:  Request{Reference: voice("C4", "C4", "G4"), Species: FirstSpecies},
			err:  ErrNoSolution,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.gen.Generate(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, res)
		})
	}
}

func TestGenerator_SolveWithoutSelection(t *testing.T) {
	gen := NewGenerator(WithWorkers(1))
	solutions, stats, err := gen.Solve(context.Background(), Request{
		Reference: voice("C4", "C4", "G4"),
		Species:   FirstSpecies,
	})
	require.NoError(t, err)
	assert.Empty(t, solutions)
	assert.Equal(t, uint64(3*1*7), stats.Examined)
	assert.Positive(t, stats.Rejected[RuleBigLeap])
}
