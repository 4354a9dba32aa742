package counterpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
)

const defaultMaxSearchSpace = 50_000_000

type options struct {
	workers  int
	maxSpace uint64
	seed     uint64
}

// Option configures a Generator
type Option func(*options)

// WithWorkers sets the enumeration worker count (<= 0 means one per CPU)
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxSearchSpace caps the number of candidate lines; 0 removes the cap
func WithMaxSearchSpace(n uint64) Option {
	return func(o *options) {
		o.maxSpace = n
	}
}

// WithSeed seeds the default selector
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// Request describes one generation
type Request struct {
	Reference music.Voice
	Species   Species
	// Seed overrides the generator's selector for this request
	Seed *uint64
	// OnBeatEntry lets second species open on the beat
	OnBeatEntry bool
}

// Result is a generated counterpoint with the full validated set
type Result struct {
	Species      Species
	Reference    music.Voice
	Counterpoint music.Voice
	Solutions    []music.Voice
	Stats        Stats
}

// Generator ties shaping, enumeration and selection together
type Generator struct {
	opts     options
	selector *Selector
}

// NewGenerator creates a generator
func NewGenerator(opts ...Option) *Generator {
	o := options{
		maxSpace: defaultMaxSearchSpace,
		seed:     uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{
		opts:     o,
		selector: NewSelector(o.seed),
	}
}

// Solve returns every counterpoint line that passes the rules
func (g *Generator) Solve(ctx context.Context, req Request) ([]music.Voice, Stats, error) {
	if len(req.Reference) < MinReferenceLength {
		return nil, Stats{}, fmt.Errorf("%w: %d notes, need at least %d",
			ErrInvalidReferenceLength, len(req.Reference), MinReferenceLength)
	}
	shaper, err := NewShaper(req.Species, req.OnBeatEntry)
	if err != nil {
		return nil, Stats{}, err
	}
	validator, err := NewValidator(req.Species)
	if err != nil {
		return nil, Stats{}, err
	}
	space, err := BuildSearchSpace(req.Reference, shaper)
	if err != nil {
		return nil, Stats{}, err
	}
	return NewEnumerator(validator, g.opts.workers, g.opts.maxSpace).Enumerate(ctx, req.Reference, space)
}

// Generate solves the request and selects one solution
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	solutions, stats, err := g.Solve(ctx, req)
	if err != nil {
		return nil, err
	}

	line, err := g.Pick(req.Seed, solutions)
	if err != nil {
		return nil, fmt.Errorf("%s species over %s: %w", req.Species, req.Reference, err)
	}

	return &Result{
		Species:      req.Species,
		Reference:    req.Reference,
		Counterpoint: line,
		Solutions:    solutions,
		Stats:        stats,
	}, nil
}

// Pick selects one of solutions. A non-nil seed uses a fresh selector so the
// choice is reproducible; otherwise the generator's shared selector is used.
func (g *Generator) Pick(seed *uint64, solutions []music.Voice) (music.Voice, error) {
	selector := g.selector
	if seed != nil {
		selector = NewSelector(*seed)
	}
	return selector.Select(solutions)
}
