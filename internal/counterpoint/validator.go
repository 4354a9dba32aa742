package counterpoint

import (
	"fmt"
	"slices"

	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
)

// Validator applies the rule battery to candidate lines. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	species Species
	trace   bool
	shaper  *Shaper
}

// ValidatorOption configures a Validator
type ValidatorOption func(*Validator)

// WithTrace records every check in Verdict.Trace
func WithTrace() ValidatorOption {
	return func(v *Validator) {
		v.trace = true
	}
}

// WithCandidateSets rejects lines holding a pitch the shaper would not offer
// at that position. Lines drawn from a search space never need it.
func WithCandidateSets(shaper *Shaper) ValidatorOption {
	return func(v *Validator) {
		v.shaper = shaper
	}
}

// NewValidator creates a validator for the given species
func NewValidator(species Species, opts ...ValidatorOption) (*Validator, error) {
	if !species.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSpeciesConfiguration, species)
	}
	v := &Validator{species: species}
	for _, opt := range opts {
		opt(v)
	}
	if v.shaper != nil && v.shaper.species != species {
		return nil, fmt.Errorf("%w: %s species shaper for a %s species validator",
			ErrInvalidSpeciesConfiguration, v.shaper.species, species)
	}
	return v, nil
}

// Validate judges one candidate line against the cantus firmus. Candidate set
// membership is checked first when configured, then the exposed tritone scan, then the interior transitions left to right, then
// the cadence. The first violation rejects the line.
func (v *Validator) Validate(ref, line music.Voice) (Verdict, error) {
	if len(ref) < MinReferenceLength {
		return Verdict{}, fmt.Errorf("%w: %d notes, need at least %d",
			ErrInvalidReferenceLength, len(ref), MinReferenceLength)
	}
	if want := v.species.CandidateLength(len(ref)); len(line) != want {
		return Verdict{}, fmt.Errorf("%w: counterpoint has %d notes, %s species needs %d",
			ErrInvalidSpeciesConfiguration, len(line), v.species, want)
	}

	c := &check{tracing: v.trace}

	if v.shaper != nil {
		viol, err := c.admissible(v.shaper, ref, line)
		if err != nil {
			return Verdict{}, err
		}
		if viol != nil {
			return c.reject(viol), nil
		}
	}

	if exposed, i := ExposedTritone(line); exposed {
		return c.reject(&Violation{
			Rule:      RuleExposedTritone,
			Positions: []int{i, i + 1},
			Detail:    fmt.Sprintf("outline reaches a tritone at %s -> %s", line[i], line[i+1]),
		}), nil
	}
	c.note("whole line: no exposed tritone")

	var viol *Violation
	if v.species == FirstSpecies {
		viol = c.firstSpecies(ref, line)
	} else {
		viol = c.secondSpecies(ref, line)
	}
	if viol != nil {
		return c.reject(viol), nil
	}
	return c.accept(), nil
}

// check carries the diagnostic record of a single validation
type check struct {
	tracing bool
	trace   []string
}

func (c *check) note(format string, args ...any) {
	if c.tracing {
		c.trace = append(c.trace, fmt.Sprintf(format, args...))
	}
}

func (c *check) reject(viol *Violation) Verdict {
	c.note("rejected: %s", viol)
	return Verdict{Accepted: false, Violation: viol, Trace: c.trace}
}

func (c *check) accept() Verdict {
	c.note("accepted")
	return Verdict{Accepted: true, Trace: c.trace}
}

// admissible checks every note against its position's candidate set
func (c *check) admissible(shaper *Shaper, ref, line music.Voice) (*Violation, error) {
	positions, err := shaper.species.Positions(len(ref))
	if err != nil {
		return nil, err
	}
	for i, note := range line {
		pos := positions[i]
		set, err := shaper.candidates(ref, pos)
		if err != nil {
			return nil, err
		}
		offered := slices.ContainsFunc(set, func(p music.PitchEvent) bool {
			return music.SameSoundingPitch(p, note)
		})
		if !offered {
			return &Violation{
				Rule:      RuleInadmissiblePitch,
				Positions: []int{i},
				Detail:    fmt.Sprintf("%s is not a %s candidate over %s", note, pos.Role, ref[pos.RefIndex]),
			}, nil
		}
	}
	c.note("whole line: every pitch admissible")
	return nil, nil
}

func (c *check) firstSpecies(ref, line music.Voice) *Violation {
	last := len(line) - 1

	for i := 1; i < last; i++ {
		prev, cur, next := line[i-1], line[i], line[i+1]
		if viol := repeated(i, prev, cur); viol != nil {
			return viol
		}
		if viol := parallels(ref[i-1], prev, ref[i], cur, i-1, i); viol != nil {
			return viol
		}
		if viol := leap(i, prev, cur, &next); viol != nil {
			return viol
		}
		c.note("%d: %s -> %s ok", i, prev, cur)
	}

	prev, cur := line[last-1], line[last]
	if viol := repeated(last, prev, cur); viol != nil {
		return viol
	}
	if viol := parallels(ref[last-1], prev, ref[last], cur, last-1, last); viol != nil {
		return viol
	}
	if viol := leap(last, prev, cur, nil); viol != nil {
		return viol
	}
	if viol := cadence(ref[len(ref)-1], cur, last); viol != nil {
		return viol
	}
	c.note("%d: %s -> %s cadence ok", last, prev, cur)
	return nil
}

func (c *check) secondSpecies(ref, line music.Voice) *Violation {
	last := len(line) - 1

	for i := 1; i < last; i++ {
		prev, cur, next := line[i-1], line[i], line[i+1]
		bar := i / 2
		if viol := repeated(i, prev, cur); viol != nil {
			return viol
		}
		if i%2 == 0 {
			if viol := parallels(ref[bar-1], line[i-2], ref[bar], cur, i-2, i); viol != nil {
				return viol
			}
		} else if viol := dissonance(i, ref[bar], prev, cur, next); viol != nil {
			return viol
		}
		if viol := leap(i, prev, cur, &next); viol != nil {
			return viol
		}
		c.note("%d: %s -> %s ok", i, prev, cur)
	}

	refLast := len(ref) - 1
	if viol := repeated(last, line[last-1], line[last]); viol != nil {
		return viol
	}
	if viol := parallels(ref[refLast-1], line[last-2], ref[refLast], line[last], last-2, last); viol != nil {
		return viol
	}
	if viol := dissonance(last-1, ref[refLast-1], line[last-2], line[last-1], line[last]); viol != nil {
		return viol
	}
	if viol := leap(last, line[last-1], line[last], nil); viol != nil {
		return viol
	}
	if viol := leap(last-1, line[last-2], line[last-1], nil); viol != nil {
		return viol
	}
	if viol := cadence(ref[refLast], line[last], last); viol != nil {
		return viol
	}
	c.note("%d: %s -> %s -> %s cadence ok", last-1, line[last-2], line[last-1], line[last])
	return nil
}

func repeated(i int, prev, cur music.PitchEvent) *Violation {
	if !RepeatedNote(prev, cur) {
		return nil
	}
	return &Violation{
		Rule:      RuleRepeatedNote,
		Positions: []int{i - 1, i},
		Detail:    fmt.Sprintf("%s repeated", cur),
	}
}

func parallels(refPrev, prev, ref, cur music.PitchEvent, prevIdx, i int) *Violation {
	if ParallelFifth(refPrev, prev, ref, cur) {
		return &Violation{
			Rule:      RuleParallelFifth,
			Positions: []int{prevIdx, i},
			Detail:    fmt.Sprintf("%s/%s then %s/%s", refPrev, prev, ref, cur),
		}
	}
	if ParallelOctave(refPrev, prev, ref, cur) {
		return &Violation{
			Rule:      RuleParallelOctave,
			Positions: []int{prevIdx, i},
			Detail:    fmt.Sprintf("%s/%s then %s/%s", refPrev, prev, ref, cur),
		}
	}
	return nil
}

func dissonance(i int, ref, prev, cur, next music.PitchEvent) *Violation {
	if !DissonanceWithoutStep(ref, prev, cur, next) {
		return nil
	}
	return &Violation{
		Rule:      RuleDissonance,
		Positions: []int{i - 1, i, i + 1},
		Detail:    fmt.Sprintf("%s against %s is not a passing tone", cur, ref),
	}
}

// leap checks prev -> cur. With next nil there is nothing to recover into,
// so any big leap is fatal.
func leap(i int, prev, cur music.PitchEvent, next *music.PitchEvent) *Violation {
	switch LeapOutcome(prev, cur) {
	case Violating:
		return &Violation{
			Rule:      RuleBigLeap,
			Positions: []int{i - 1, i},
			Detail:    fmt.Sprintf("%s -> %s", prev, cur),
		}
	case ConditionallyViolating:
		kind := music.ClassifyLeap(prev, cur)
		if next == nil {
			return &Violation{
				Rule:      RuleUnrecoveredLeap,
				Positions: []int{i - 1, i},
				Detail:    fmt.Sprintf("%s %s -> %s closes the line", kind, prev, cur),
			}
		}
		if !music.Recovers(kind, cur, *next) {
			return &Violation{
				Rule:      RuleUnrecoveredLeap,
				Positions: []int{i - 1, i, i + 1},
				Detail:    fmt.Sprintf("%s %s -> %s not recovered by %s", kind, prev, cur, *next),
			}
		}
	}
	return nil
}

func cadence(ref, cur music.PitchEvent, i int) *Violation {
	if !ImperfectCadence(ref, cur) {
		return nil
	}
	return &Violation{
		Rule:      RuleImperfectCadence,
		Positions: []int{i},
		Detail:    fmt.Sprintf("%s over %s is not a unison or octave", cur, ref),
	}
}
