package counterpoint

import (
	"fmt"

	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
)

// Interval sets offered above the aligned cantus firmus note
var (
	openingIntervals = []music.IntervalName{
		music.PerfectUnison, music.PerfectFifth, music.PerfectOctave,
	}

	harmonicIntervals = []music.IntervalName{
		music.MinorThird, music.MajorThird, music.PerfectFourth, music.PerfectFifth,
		music.MinorSixth, music.MajorSixth, music.PerfectOctave,
	}

	// passingIntervals admits dissonances; the rule engine decides whether
	// they are treated as passing tones
	passingIntervals = []music.IntervalName{
		music.PerfectUnison, music.MinorSecond, music.MajorSecond,
		music.MinorThird, music.MajorThird, music.PerfectFourth, music.AugmentedFourth,
		music.PerfectFifth, music.MinorSixth, music.MajorSixth,
		music.MinorSeventh, music.MajorSeventh, music.PerfectOctave,
	}

	// onBeatEntryIntervals follow the leading rest choice when second species
	// may also start on the beat
	onBeatEntryIntervals = []music.IntervalName{
		music.PerfectFifth, music.PerfectOctave, music.PerfectUnison,
	}

	sixthIntervals = []music.IntervalName{music.MinorSixth, music.MajorSixth}
)

// Shaper produces the admissible pitches for each counterpoint position
type Shaper struct {
	species     Species
	onBeatEntry bool
}

// NewShaper creates a shaper for the given species. With onBeatEntry a
// second species line may open on the beat instead of after a half rest.
func NewShaper(species Species, onBeatEntry bool) (*Shaper, error) {
	if !species.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSpeciesConfiguration, species)
	}
	return &Shaper{species: species, onBeatEntry: onBeatEntry}, nil
}

// CandidateSet returns the ordered candidates at one counterpoint position
func (s *Shaper) CandidateSet(ref music.Voice, index int) ([]music.PitchEvent, error) {
	pos, err := s.species.PositionAt(len(ref), index)
	if err != nil {
		return nil, err
	}
	return s.candidates(ref, pos)
}

func (s *Shaper) candidates(ref music.Voice, pos Position) ([]music.PitchEvent, error) {
	cf := ref[pos.RefIndex]
	dur := s.species.NoteDuration()

	switch pos.Role {
	case RoleFirst:
		return above(cf, dur, openingIntervals...)
	case RoleInterior, RoleLast, RoleOnBeat:
		return above(cf, dur, harmonicIntervals...)
	case RolePenultimate:
		return above(cf, dur, music.MajorSixth)
	case RoleEntry:
		rest := music.NewRest(music.HalfNote)
		if !s.onBeatEntry {
			return []music.PitchEvent{rest}, nil
		}
		notes, err := above(cf, dur, onBeatEntryIntervals...)
		if err != nil {
			return nil, err
		}
		return append([]music.PitchEvent{rest}, notes...), nil
	case RoleOffBeat:
		return above(cf, dur, passingIntervals...)
	case RoleCadenceFifth:
		return above(cf, dur, music.PerfectFifth)
	case RoleCadenceSixth:
		return above(cf, dur, sixthIntervals...)
	case RoleCadenceOctave:
		return above(cf, music.WholeNote, music.PerfectOctave)
	default:
		return nil, fmt.Errorf("%w: role %s at position %d", ErrInvalidSpeciesConfiguration, pos.Role, pos.Index)
	}
}

// Shape returns the candidate set of every position in order
func (s *Shaper) Shape(ref music.Voice) ([][]music.PitchEvent, error) {
	positions, err := s.species.Positions(len(ref))
	if err != nil {
		return nil, err
	}
	sets := make([][]music.PitchEvent, len(positions))
	for i, pos := range positions {
		set, err := s.candidates(ref, pos)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		sets[i] = set
	}
	return sets, nil
}

func above(cf music.PitchEvent, duration float64, intervals ...music.IntervalName) ([]music.PitchEvent, error) {
	notes, err := music.TransposeAll(cf.WithDuration(duration), intervals...)
	if err != nil {
		return nil, fmt.Errorf("above %s: %w", cf, err)
	}
	return notes, nil
}
