package music

import "fmt"

// IntervalName is a named ascending interval in music21 notation
type IntervalName string

const (
	PerfectUnison   IntervalName = "P1"
	MinorSecond     IntervalName = "m2"
	MajorSecond     IntervalName = "M2"
	MinorThird      IntervalName = "m3"
	MajorThird      IntervalName = "M3"
	PerfectFourth   IntervalName = "P4"
	AugmentedFourth IntervalName = "A4"
	PerfectFifth    IntervalName = "P5"
	MinorSixth      IntervalName = "m6"
	MajorSixth      IntervalName = "M6"
	MinorSeventh    IntervalName = "m7"
	MajorSeventh    IntervalName = "M7"
	PerfectOctave   IntervalName = "P8"
)

type intervalSpec struct {
	generic   int // letter steps above the lower note
	semitones int
}

var intervalTable = map[IntervalName]intervalSpec{
	PerfectUnison:   {0, 0},
	MinorSecond:     {1, 1},
	MajorSecond:     {1, 2},
	MinorThird:      {2, 3},
	MajorThird:      {2, 4},
	PerfectFourth:   {3, 5},
	AugmentedFourth: {3, 6},
	PerfectFifth:    {4, 7},
	MinorSixth:      {5, 8},
	MajorSixth:      {5, 9},
	MinorSeventh:    {6, 10},
	MajorSeventh:    {6, 11},
	PerfectOctave:   {7, 12},
}

// Valid reports whether the name is in the interval table
func (n IntervalName) Valid() bool {
	_, ok := intervalTable[n]
	return ok
}

// Semitones returns the chromatic size of the interval
func (n IntervalName) Semitones() int {
	return intervalTable[n].semitones
}

// SemitoneDistance returns the signed semitone distance from a to b.
// Positive means b is above a.
func SemitoneDistance(a, b PitchEvent) (int, error) {
	if a.IsRest() || b.IsRest() {
		return 0, ErrUndefinedInterval
	}
	return b.midi() - a.midi(), nil
}

// IsInterval reports whether b lies exactly the named interval above a,
// matching both letter distance and semitone size. Rests never match.
func IsInterval(name IntervalName, a, b PitchEvent) bool {
	spec, ok := intervalTable[name]
	if !ok || a.IsRest() || b.IsRest() {
		return false
	}
	return b.diatonicIndex()-a.diatonicIndex() == spec.generic &&
		b.midi()-a.midi() == spec.semitones
}

// Transpose returns the pitch the named interval above p, spelled by
// letter distance (a minor third above C4 is Eb4). Duration is kept. A
// result needing more than a double accidental is ErrInvalidPitch.
func Transpose(p PitchEvent, name IntervalName) (PitchEvent, error) {
	if p.IsRest() {
		return PitchEvent{}, ErrUndefinedInterval
	}
	spec, ok := intervalTable[name]
	if !ok {
		return PitchEvent{}, fmt.Errorf("%w: %q", ErrUnknownInterval, name)
	}

	idx := p.diatonicIndex() + spec.generic
	octave := idx / stepsPerOctave
	step := Step(idx % stepsPerOctave)
	natural := semitonesPerOctave*(octave+midiOctaveOffset) + naturalSemitones[step]
	alter := p.midi() + spec.semitones - natural
	if alter > maxAlter || alter < -maxAlter {
		return PitchEvent{}, fmt.Errorf("%w: %s above %s needs %d accidentals",
			ErrInvalidPitch, name, p.Name(), alter)
	}

	return NewNote(step, alter, octave, p.duration), nil
}

// TransposeAll transposes p by each interval in order
func TransposeAll(p PitchEvent, names ...IntervalName) ([]PitchEvent, error) {
	out := make([]PitchEvent, 0, len(names))
	for _, name := range names {
		t, err := Transpose(p, name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// SameSoundingPitch reports whether a and b are both rests, or both sounding
// with the same spelled name and octave. Durations are ignored.
func SameSoundingPitch(a, b PitchEvent) bool {
	if a.IsRest() || b.IsRest() {
		return a.IsRest() && b.IsRest()
	}
	return a.step == b.step && a.alter == b.alter && a.octave == b.octave
}
