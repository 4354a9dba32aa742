package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLeap(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		expected LeapClass
	}{
		{"step", "C4", "D4", NoLeap},
		{"third", "C4", "E4", NoLeap},
		{"fourth", "C4", "F4", NoLeap},
		{"tritone up", "C4", "F#4", BigLeap},
		{"perfect fifth up is not a fifth leap", "C4", "G4", NoLeap},
		{"minor sixth up", "C4", "Ab4", FifthLeap},
		{"major sixth up", "C4", "A4", BigLeap},
		{"minor seventh up", "C4", "Bb4", BigLeap},
		{"major seventh up", "C4", "B4", BigLeap},
		{"octave up", "C4", "C5", OctaveLeapUp},
		{"beyond octave", "C4", "D5", NoLeap},
		{"tritone down", "F#4", "C4", BigLeap},
		{"fifth down", "G4", "C4", NoLeap},
		{"minor sixth down", "Ab4", "C4", BigLeap},
		{"major sixth down", "A4", "C4", BigLeap},
		{"octave down", "C5", "C4", OctaveLeapDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyLeap(n(tt.from), n(tt.to)))
		})
	}
}

func TestClassifyLeap_Rests(t *testing.T) {
	assert.Equal(t, NoLeap, ClassifyLeap(NewRest(HalfNote), n("C5")))
	assert.Equal(t, NoLeap, ClassifyLeap(n("C4"), NewRest(HalfNote)))
}

func TestLeapClass_Predicates(t *testing.T) {
	assert.False(t, NoLeap.IsBig())
	assert.True(t, BigLeap.IsBig())
	assert.False(t, BigLeap.Recoverable())
	for _, l := range []LeapClass{FifthLeap, OctaveLeapUp, OctaveLeapDown} {
		assert.True(t, l.IsBig(), l.String())
		assert.True(t, l.Recoverable(), l.String())
	}
	assert.Equal(t, "fifth-leap", FifthLeap.String())
	assert.Equal(t, "unknown", LeapClass(99).String())
}

func TestRecovers(t *testing.T) {
	tests := []struct {
		name     string
		leap     LeapClass
		note     string
		next     string
		expected bool
	}{
		{"fifth leap recovered by step down", FifthLeap, "Ab4", "G4", true},
		{"fifth leap recovered by fourth down", FifthLeap, "Ab4", "Eb4", true},
		{"fifth leap fall of six is too far", FifthLeap, "Ab4", "D4", false},
		{"fifth leap repeated note", FifthLeap, "Ab4", "Ab4", false},
		{"fifth leap continues up", FifthLeap, "Ab4", "Bb4", false},
		{"octave up recovered", OctaveLeapUp, "C5", "G4", true},
		{"octave up fall of eleven", OctaveLeapUp, "C5", "C#4", true},
		{"octave up fall of octave", OctaveLeapUp, "C5", "C4", false},
		{"octave down recovered", OctaveLeapDown, "C4", "E4", true},
		{"octave down falls again", OctaveLeapDown, "C4", "B3", false},
		{"octave down rise of octave", OctaveLeapDown, "C4", "C5", false},
		{"ordinary big leap is never recovered", BigLeap, "A4", "G4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Recovers(tt.leap, n(tt.note), n(tt.next)))
		})
	}

	assert.False(t, Recovers(OctaveLeapUp, n("C5"), NewRest(HalfNote)))
}
