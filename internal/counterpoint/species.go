package counterpoint

import (
	"fmt"

	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
)

// MinReferenceLength is the shortest cantus firmus that fills the first,
// penultimate and last roles without overlap
const MinReferenceLength = 3

// Species is the rhythmic discipline of the counterpoint
type Species int

const (
	FirstSpecies  Species = 1 // note against note
	SecondSpecies Species = 2 // two half notes against each whole, entering after a half rest
)

// ParseSpecies converts a numeric species, 0 meaning first species
func ParseSpecies(n int) (Species, error) {
	switch n {
	case 0, 1:
		return FirstSpecies, nil
	case 2:
		return SecondSpecies, nil
	default:
		return 0, fmt.Errorf("%w: species %d", ErrInvalidSpeciesConfiguration, n)
	}
}

func (s Species) Valid() bool {
	return s == FirstSpecies || s == SecondSpecies
}

func (s Species) String() string {
	switch s {
	case FirstSpecies:
		return "first"
	case SecondSpecies:
		return "second"
	default:
		return fmt.Sprintf("species(%d)", int(s))
	}
}

// NoteDuration is the quarter-length value of an ordinary counterpoint note
func (s Species) NoteDuration() float64 {
	if s == SecondSpecies {
		return music.HalfNote
	}
	return music.WholeNote
}

// CandidateLength returns the counterpoint length for a cantus firmus of refLen notes
func (s Species) CandidateLength(refLen int) int {
	if s == SecondSpecies {
		return 2*refLen - 1
	}
	return refLen
}

// Role is the part a counterpoint position plays in the line
type Role int

const (
	RoleFirst Role = iota
	RoleInterior
	RolePenultimate
	RoleLast
	RoleEntry
	RoleOnBeat
	RoleOffBeat
	RoleCadenceFifth
	RoleCadenceSixth
	RoleCadenceOctave
)

var roleNames = [...]string{
	RoleFirst:         "first",
	RoleInterior:      "interior",
	RolePenultimate:   "penultimate",
	RoleLast:          "last",
	RoleEntry:         "entry",
	RoleOnBeat:        "on-beat",
	RoleOffBeat:       "off-beat",
	RoleCadenceFifth:  "cadence-fifth",
	RoleCadenceSixth:  "cadence-sixth",
	RoleCadenceOctave: "cadence-octave",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// Position is the role of one counterpoint index and the cantus firmus note
// it sounds against
type Position struct {
	Index    int
	Role     Role
	RefIndex int
}

// PositionAt assigns the role of counterpoint index for a cantus firmus of
// refLen notes.
func (s Species) PositionAt(refLen, index int) (Position, error) {
	if refLen < MinReferenceLength {
		return Position{}, fmt.Errorf("%w: %d notes, need at least %d",
			ErrInvalidReferenceLength, refLen, MinReferenceLength)
	}
	if !s.Valid() {
		return Position{}, fmt.Errorf("%w: %s", ErrInvalidSpeciesConfiguration, s)
	}
	length := s.CandidateLength(refLen)
	if index < 0 || index >= length {
		return Position{}, fmt.Errorf("%w: position %d outside 0..%d",
			ErrInvalidSpeciesConfiguration, index, length-1)
	}

	if s == FirstSpecies {
		switch {
		case index == 0:
			return Position{index, RoleFirst, 0}, nil
		case index == refLen-2:
			return Position{index, RolePenultimate, index}, nil
		case index == refLen-1:
			return Position{index, RoleLast, index}, nil
		default:
			return Position{index, RoleInterior, index}, nil
		}
	}

	switch {
	case index == 0:
		return Position{index, RoleEntry, 0}, nil
	case index == length-3:
		return Position{index, RoleCadenceFifth, refLen - 2}, nil
	case index == length-2:
		return Position{index, RoleCadenceSixth, refLen - 2}, nil
	case index == length-1:
		return Position{index, RoleCadenceOctave, refLen - 1}, nil
	case index%2 == 1:
		return Position{index, RoleOffBeat, index / 2}, nil
	default:
		return Position{index, RoleOnBeat, index / 2}, nil
	}
}

// Positions assigns roles to every counterpoint index
func (s Species) Positions(refLen int) ([]Position, error) {
	if refLen < MinReferenceLength {
		return nil, fmt.Errorf("%w: %d notes, need at least %d",
			ErrInvalidReferenceLength, refLen, MinReferenceLength)
	}
	length := s.CandidateLength(refLen)
	positions := make([]Position, 0, length)
	for i := 0; i < length; i++ {
		p, err := s.PositionAt(refLen, i)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}
