package music

// dissonantSemitones is the vertical dissonance table, keyed by signed
// distance from the reference pitch to the counterpoint pitch
var dissonantSemitones = map[int]bool{
	1: true, -1: true,
	2: true, -2: true,
	6: true, -6: true,
	10: true, -10: true,
	11: true, -11: true,
}

// IsDissonant reports whether note forms a dissonance against ref.
// Rests are never dissonant.
func IsDissonant(ref, note PitchEvent) bool {
	d, err := SemitoneDistance(ref, note)
	if err != nil {
		return false
	}
	return dissonantSemitones[d]
}

// IsStep reports whether a -> b moves by one or two semitones
func IsStep(a, b PitchEvent) bool {
	d, err := SemitoneDistance(a, b)
	if err != nil {
		return false
	}
	return d == 1 || d == -1 || d == 2 || d == -2
}

// ApproachedAndLeftByStep reports whether note is reached from prev and left
// to next by steps in either direction
func ApproachedAndLeftByStep(prev, note, next PitchEvent) bool {
	return IsStep(prev, note) && IsStep(note, next)
}

// Direction returns +1, -1 or 0 for the motion a -> b; 0 when either is a rest
func Direction(a, b PitchEvent) int {
	d, err := SemitoneDistance(a, b)
	switch {
	case err != nil || d == 0:
		return 0
	case d > 0:
		return 1
	default:
		return -1
	}
}
