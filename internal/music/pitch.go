package music

import (
	"fmt"
	"strconv"
	"strings"
)

// Durations in quarter lengths
const (
	WholeNote = 4.0
	HalfNote  = 2.0
)

const (
	semitonesPerOctave = 12
	stepsPerOctave     = 7
	maxAlter           = 2
	midiOctaveOffset   = 1 // C4 = 60
)

// Step is a diatonic letter name
type Step int

const (
	StepC Step = iota
	StepD
	StepE
	StepF
	StepG
	StepA
	StepB
)

var stepLetters = [stepsPerOctave]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

// naturalSemitones maps each step to its semitone offset above C
var naturalSemitones = [stepsPerOctave]int{0, 2, 4, 5, 7, 9, 11}

func (s Step) String() string {
	if s < StepC || s > StepB {
		return "?"
	}
	return string(stepLetters[s])
}

// EventKind tags a PitchEvent as a sounding pitch or a rest
type EventKind uint8

const (
	Sounding EventKind = iota
	Rest
)

func (k EventKind) String() string {
	if k == Rest {
		return "rest"
	}
	return "sounding"
}

// PitchEvent is either a spelled pitch (step, alteration, octave) or a rest,
// each with a duration in quarter lengths. Values are immutable.
type PitchEvent struct {
	kind     EventKind
	step     Step
	alter    int
	octave   int
	duration float64
}

// NewNote creates a sounding pitch
func NewNote(step Step, alter, octave int, duration float64) PitchEvent {
	return PitchEvent{
		kind:     Sounding,
		step:     step,
		alter:    alter,
		octave:   octave,
		duration: duration,
	}
}

// NewRest creates a rest of the given duration
func NewRest(duration float64) PitchEvent {
	return PitchEvent{kind: Rest, duration: duration}
}

func (p PitchEvent) Kind() EventKind   { return p.kind }
func (p PitchEvent) IsRest() bool      { return p.kind == Rest }
func (p PitchEvent) Step() Step        { return p.step }
func (p PitchEvent) Alter() int        { return p.alter }
func (p PitchEvent) Octave() int       { return p.octave }
func (p PitchEvent) Duration() float64 { return p.duration }

// WithDuration returns a copy of p with a different duration
func (p PitchEvent) WithDuration(duration float64) PitchEvent {
	p.duration = duration
	return p
}

// MIDI returns the MIDI note number (C4 = 60)
func (p PitchEvent) MIDI() (int, error) {
	if p.IsRest() {
		return 0, ErrUndefinedInterval
	}
	return p.midi(), nil
}

func (p PitchEvent) midi() int {
	return semitonesPerOctave*(p.octave+midiOctaveOffset) + naturalSemitones[p.step] + p.alter
}

// diatonicIndex counts letter steps from C0, ignoring alterations
func (p PitchEvent) diatonicIndex() int {
	return p.octave*stepsPerOctave + int(p.step)
}

// PitchClass returns the spelled pitch class without octave, e.g. "F#"
func (p PitchEvent) PitchClass() string {
	if p.IsRest() {
		return ""
	}
	return p.step.String() + accidental(p.alter)
}

// Name returns the spelled name with octave, e.g. "Eb4", or "rest"
func (p PitchEvent) Name() string {
	if p.IsRest() {
		return "rest"
	}
	return p.PitchClass() + strconv.Itoa(p.octave)
}

func (p PitchEvent) String() string {
	return p.Name()
}

func accidental(alter int) string {
	switch {
	case alter > 0:
		return strings.Repeat("#", alter)
	case alter < 0:
		return strings.Repeat("b", -alter)
	default:
		return ""
	}
}

// ParsePitchEvent parses a note name such as "C4", "F#3", "Bb4", "E-4"
// (music21 flat spelling), "Cx5" or "rest".
func ParsePitchEvent(name string, duration float64) (PitchEvent, error) {
	s := strings.TrimSpace(name)
	switch strings.ToLower(s) {
	case "r", "rest":
		return NewRest(duration), nil
	case "":
		return PitchEvent{}, fmt.Errorf("%w: empty note name", ErrInvalidPitch)
	}

	step, ok := parseStep(s[0])
	if !ok {
		return PitchEvent{}, fmt.Errorf("%w: %q has no step letter", ErrInvalidPitch, name)
	}

	i := 1
	alter := 0
accidentals:
	for ; i < len(s); i++ {
		switch s[i] {
		case '#':
			alter++
		case 'x':
			alter += 2
		case 'b', '-':
			alter--
		default:
			break accidentals
		}
	}

	if alter > maxAlter || alter < -maxAlter {
		return PitchEvent{}, fmt.Errorf("%w: %q alteration out of range", ErrInvalidPitch, name)
	}
	if i >= len(s) {
		return PitchEvent{}, fmt.Errorf("%w: %q has no octave", ErrInvalidPitch, name)
	}
	oct, err := strconv.Atoi(s[i:])
	if err != nil || oct < 0 {
		return PitchEvent{}, fmt.Errorf("%w: %q has invalid octave", ErrInvalidPitch, name)
	}

	return NewNote(step, alter, oct, duration), nil
}

// MustParse is like ParsePitchEvent but panics on error
func MustParse(name string, duration float64) PitchEvent {
	p, err := ParsePitchEvent(name, duration)
	if err != nil {
		panic(err)
	}
	return p
}

// IsValidPitchName reports whether name parses as a pitch or rest
func IsValidPitchName(name string) bool {
	_, err := ParsePitchEvent(name, WholeNote)
	return err == nil
}

func parseStep(c byte) (Step, bool) {
	upper := c
	if upper >= 'a' && upper <= 'z' {
		upper -= 'a' - 'A'
	}
	for i, l := range stepLetters {
		if l == upper {
			return Step(i), true
		}
	}
	return 0, false
}
