package music

import (
	"fmt"
	"strings"
)

// Voice is an ordered sequence of pitch events
type Voice []PitchEvent

// ParseVoice parses note names into a voice with a uniform duration
func ParseVoice(names []string, duration float64) (Voice, error) {
	v := make(Voice, 0, len(names))
	for i, name := range names {
		p, err := ParsePitchEvent(name, duration)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		v = append(v, p)
	}
	return v, nil
}

// MustParseVoice is like ParseVoice but panics on error
func MustParseVoice(duration float64, names ...string) Voice {
	v, err := ParseVoice(names, duration)
	if err != nil {
		panic(err)
	}
	return v
}

// Names returns the spelled names of each event
func (v Voice) Names() []string {
	names := make([]string, len(v))
	for i, p := range v {
		names[i] = p.Name()
	}
	return names
}

// Equal reports whether both voices have the same events, durations included
func (v Voice) Equal(other Voice) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// TotalDuration sums the durations in quarter lengths
func (v Voice) TotalDuration() float64 {
	total := 0.0
	for _, p := range v {
		total += p.duration
	}
	return total
}

func (v Voice) String() string {
	return "[" + strings.Join(v.Names(), " ") + "]"
}
