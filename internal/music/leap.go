package music

// LeapClass classifies the melodic motion between two adjacent events of
// one voice. The thresholds are literal semitone counts: FifthLeap is an
// ascending 8, not a perfect fifth.
type LeapClass int

const (
	NoLeap LeapClass = iota
	BigLeap
	FifthLeap
	OctaveLeapUp
	OctaveLeapDown
)

const (
	fifthLeapSemitones  = 8
	octaveLeapSemitones = 12
)

var bigLeapSemitones = map[int]bool{
	6: true, 9: true, 10: true, 11: true,
	-6: true, -8: true, -9: true, -10: true, -11: true,
}

var leapNames = map[LeapClass]string{
	NoLeap:         "no-leap",
	BigLeap:        "big-leap",
	FifthLeap:      "fifth-leap",
	OctaveLeapUp:   "octave-leap-up",
	OctaveLeapDown: "octave-leap-down",
}

func (l LeapClass) String() string {
	if name, ok := leapNames[l]; ok {
		return name
	}
	return "unknown"
}

// IsBig reports whether the leap is any big leap, recoverable or not
func (l LeapClass) IsBig() bool {
	return l != NoLeap
}

// Recoverable reports whether the leap is allowed when followed by a
// contrary recovery
func (l LeapClass) Recoverable() bool {
	return l == FifthLeap || l == OctaveLeapUp || l == OctaveLeapDown
}

// ClassifyLeap classifies the motion prev -> next. Motion from or to a rest
// is NoLeap.
func ClassifyLeap(prev, next PitchEvent) LeapClass {
	d, err := SemitoneDistance(prev, next)
	if err != nil {
		return NoLeap
	}
	switch {
	case bigLeapSemitones[d]:
		return BigLeap
	case d == fifthLeapSemitones:
		return FifthLeap
	case d == octaveLeapSemitones:
		return OctaveLeapUp
	case d == -octaveLeapSemitones:
		return OctaveLeapDown
	default:
		return NoLeap
	}
}

// Recovers reports whether the motion note -> next recovers the given leap:
// a fifth leap needs a fall of 1-5 semitones, an octave up a fall of 1-11,
// an octave down a rise of 1-11.
func Recovers(leap LeapClass, note, next PitchEvent) bool {
	d, err := SemitoneDistance(note, next)
	if err != nil {
		return false
	}
	switch leap {
	case FifthLeap:
		return d > -6 && d < 0
	case OctaveLeapUp:
		return d > -octaveLeapSemitones && d < 0
	case OctaveLeapDown:
		return d > 0 && d < octaveLeapSemitones
	default:
		return false
	}
}
