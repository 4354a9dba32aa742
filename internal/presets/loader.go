package presets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/counterpoint-api/internal/counterpoint"
	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
	"github.com/Conceptual-Machines/counterpoint-api/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrPresetNotFound is returned for an unknown preset name
var ErrPresetNotFound = errors.New("preset not found")

// Preset is a named cantus firmus
type Preset struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Mode        string   `yaml:"mode" json:"mode"`
	Notes       []string `yaml:"notes" json:"notes"`
}

// Voice parses the preset notes as whole notes
func (p Preset) Voice() (music.Voice, error) {
	return music.ParseVoice(p.Notes, music.WholeNote)
}

// GenerableSpecies lists the species whose search space over the preset
// stays within maxSpace candidates (0 means no ceiling). Presets outside
// every species can still be used to validate a counterpoint.
func (p Preset) GenerableSpecies(maxSpace uint64) []int {
	ref, err := p.Voice()
	if err != nil {
		return nil
	}
	generable := []int{}
	for _, species := range []counterpoint.Species{counterpoint.FirstSpecies, counterpoint.SecondSpecies} {
		shaper, err := counterpoint.NewShaper(species, false)
		if err != nil {
			continue
		}
		space, err := counterpoint.BuildSearchSpace(ref, shaper)
		if err != nil {
			continue
		}
		count, ok := space.Count()
		if ok && (maxSpace == 0 || count <= maxSpace) {
			generable = append(generable, int(species))
		}
	}
	return generable
}

type catalogFile struct {
	Presets []Preset `yaml:"presets"`
}

// Loader serves the preset catalog
type Loader struct {
	presets []Preset
	byName  map[string]int
}

// NewLoader parses the embedded catalog
func NewLoader() (*Loader, error) {
	return Parse(embedded.CantusFirmiYAML)
}

// Parse builds a loader from catalog YAML. Every preset must have a unique
// name and at least three parseable sounding notes.
func Parse(data []byte) (*Loader, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse preset catalog: %w", err)
	}

	l := &Loader{byName: make(map[string]int, len(file.Presets))}
	for _, p := range file.Presets {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			return nil, fmt.Errorf("preset catalog: entry %d has no name", len(l.presets))
		}
		if _, dup := l.byName[key]; dup {
			return nil, fmt.Errorf("preset catalog: duplicate name %q", p.Name)
		}
		if len(p.Notes) < counterpoint.MinReferenceLength {
			return nil, fmt.Errorf("preset %q: %w", p.Name, counterpoint.ErrInvalidReferenceLength)
		}
		voice, err := p.Voice()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		for i, e := range voice {
			if e.IsRest() {
				return nil, fmt.Errorf("preset %q: note %d is a rest", p.Name, i)
			}
		}
		l.byName[key] = len(l.presets)
		l.presets = append(l.presets, p)
	}
	return l, nil
}

// List returns every preset in catalog order
func (l *Loader) List() []Preset {
	out := make([]Preset, len(l.presets))
	copy(out, l.presets)
	return out
}

// Get returns a preset by case-insensitive name
func (l *Loader) Get(name string) (Preset, error) {
	i, ok := l.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return l.presets[i], nil
}
