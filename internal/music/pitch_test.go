package music

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitchEvent(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedName string
		expectedMIDI int
		expectRest   bool
		expectError  bool
	}{
		{name: "middle C", input: "C4", expectedName: "C4", expectedMIDI: 60},
		{name: "sharp", input: "F#4", expectedName: "F#4", expectedMIDI: 66},
		{name: "flat", input: "Bb3", expectedName: "Bb3", expectedMIDI: 58},
		{name: "music21 flat", input: "E-4", expectedName: "Eb4", expectedMIDI: 63},
		{name: "double sharp", input: "Cx5", expectedName: "C##5", expectedMIDI: 74},
		{name: "lowercase step", input: "bb3", expectedName: "Bb3", expectedMIDI: 58},
		{name: "C flat crosses octave", input: "Cb4", expectedName: "Cb4", expectedMIDI: 59},
		{name: "rest", input: "rest", expectedName: "rest", expectRest: true},
		{name: "short rest", input: "r", expectedName: "rest", expectRest: true},
		{name: "empty", input: "", expectError: true},
		{name: "no octave", input: "C#", expectError: true},
		{name: "bad letter", input: "H4", expectError: true},
		{name: "triple flat", input: "Ebbb4", expectError: true},
		{name: "garbage octave", input: "C4x", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePitchEvent(tt.input, WholeNote)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPitch))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, p.Name())
			assert.Equal(t, tt.expectRest, p.IsRest())
			assert.Equal(t, WholeNote, p.Duration())
			if !tt.expectRest {
				midi, err := p.MIDI()
				require.NoError(t, err)
				assert.Equal(t, tt.expectedMIDI, midi)
			}
		})
	}
}

func TestPitchEvent_WithDuration(t *testing.T) {
	p := MustParse("G4", WholeNote)
	half := p.WithDuration(HalfNote)

	assert.Equal(t, WholeNote, p.Duration(), "receiver must not change")
	assert.Equal(t, HalfNote, half.Duration())
	assert.True(t, SameSoundingPitch(p, half))
}

func TestRestHasNoMIDI(t *testing.T) {
	_, err := NewRest(HalfNote).MIDI()
	assert.ErrorIs(t, err, ErrUndefinedInterval)
}

func TestVoice(t *testing.T) {
	v := MustParseVoice(WholeNote, "C4", "D4", "rest", "E-4")

	assert.Equal(t, []string{"C4", "D4", "rest", "Eb4"}, v.Names())
	assert.Equal(t, "[C4 D4 rest Eb4]", v.String())
	assert.Equal(t, 16.0, v.TotalDuration())
	assert.True(t, v.Equal(MustParseVoice(WholeNote, "C4", "D4", "r", "Eb4")))
	assert.False(t, v.Equal(MustParseVoice(HalfNote, "C4", "D4", "r", "Eb4")))

	_, err := ParseVoice([]string{"C4", "Q4"}, WholeNote)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPitch)
	assert.Contains(t, err.Error(), "note 1")
}
