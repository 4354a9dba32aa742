package counterpoint

import "github.com/Conceptual-Machines/counterpoint-api/internal/music"

// Outcome classifies a transition under one rule
type Outcome int

const (
	Acceptable Outcome = iota
	Violating
	// ConditionallyViolating needs the following note to decide
	ConditionallyViolating
)

func (o Outcome) String() string {
	switch o {
	case Acceptable:
		return "acceptable"
	case Violating:
		return "violating"
	case ConditionallyViolating:
		return "conditionally-violating"
	default:
		return "unknown"
	}
}

const tritoneSemitones = 6

// RepeatedNote is violated when prev is sounding and cur repeats it
func RepeatedNote(prev, cur music.PitchEvent) bool {
	return !prev.IsRest() && music.SameSoundingPitch(prev, cur)
}

// ParallelFifth is violated when both verticals are perfect fifths above the
// cantus firmus. A rest in the earlier counterpoint note never violates.
func ParallelFifth(refPrev, prev, ref, cur music.PitchEvent) bool {
	return parallelPerfect(music.PerfectFifth, refPrev, prev, ref, cur)
}

// ParallelOctave is ParallelFifth for perfect octaves
func ParallelOctave(refPrev, prev, ref, cur music.PitchEvent) bool {
	return parallelPerfect(music.PerfectOctave, refPrev, prev, ref, cur)
}

func parallelPerfect(interval music.IntervalName, refPrev, prev, ref, cur music.PitchEvent) bool {
	if prev.IsRest() {
		return false
	}
	return music.IsInterval(interval, refPrev, prev) && music.IsInterval(interval, ref, cur)
}

// LeapOutcome is Violating for an ordinary big leap and ConditionallyViolating
// for a fifth or octave leap, which must be recovered by the next note.
func LeapOutcome(prev, cur music.PitchEvent) Outcome {
	leap := music.ClassifyLeap(prev, cur)
	switch {
	case leap == music.BigLeap:
		return Violating
	case leap.Recoverable():
		return ConditionallyViolating
	default:
		return Acceptable
	}
}

// UnrecoveredLeap is violated when prev -> cur is a recoverable leap that
// cur -> next does not recover
func UnrecoveredLeap(prev, cur, next music.PitchEvent) bool {
	leap := music.ClassifyLeap(prev, cur)
	return leap.Recoverable() && !music.Recovers(leap, cur, next)
}

// DissonanceWithoutStep is violated when cur is dissonant against ref and is
// not approached and left by step
func DissonanceWithoutStep(ref, prev, cur, next music.PitchEvent) bool {
	return music.IsDissonant(ref, cur) && !music.ApproachedAndLeftByStep(prev, cur, next)
}

// ImperfectCadence is violated when the closing vertical is not a unison or
// octave
func ImperfectCadence(ref, cur music.PitchEvent) bool {
	d, err := music.SemitoneDistance(ref, cur)
	if err != nil {
		return true
	}
	return d%12 != 0
}

// ExposedTritone scans the whole line. Movement is accumulated as unsigned
// semitones over steps that start on a sounding note; the line is exposed
// when the running total is exactly a tritone at a step whose direction
// reverses the previous one. It returns the offending step index.
func ExposedTritone(line music.Voice) (bool, int) {
	if len(line) < 2 {
		return false, -1
	}
	total := 0
	directions := make([]int, len(line)-1)
	for i := 0; i < len(line)-1; i++ {
		if line[i].IsRest() {
			continue
		}
		d, err := music.SemitoneDistance(line[i], line[i+1])
		if err != nil {
			continue
		}
		if d < 0 {
			total -= d
		} else {
			total += d
		}
		directions[i] = music.Direction(line[i], line[i+1])

		if i >= 1 && total == tritoneSemitones && abs(directions[i-1]-directions[i]) >= 2 {
			return true, i
		}
	}
	return false, -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
