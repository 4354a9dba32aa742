package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Conceptual-Machines/counterpoint-api/internal/config"
	"github.com/Conceptual-Machines/counterpoint-api/internal/counterpoint"
	"github.com/Conceptual-Machines/counterpoint-api/internal/logger"
	"github.com/Conceptual-Machines/counterpoint-api/internal/metrics"
	"github.com/Conceptual-Machines/counterpoint-api/internal/models"
	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
	"github.com/Conceptual-Machines/counterpoint-api/internal/presets"
	"github.com/google/uuid"
)

// ErrInvalidRequest marks requests that are malformed before reaching the engine
var ErrInvalidRequest = errors.New("invalid request")

const defaultMaxSolutions = 100

// CounterpointService runs the engine for API requests and records the
// results in metrics and, when configured, the composition store
type CounterpointService struct {
	generator      *counterpoint.Generator
	presets        *presets.Loader
	store          CompositionStore
	recorder       *metrics.Recorder
	defaultSpecies counterpoint.Species
	timeout        time.Duration
}

// NewCounterpointService wires the engine from configuration. store and
// recorder may be nil.
func NewCounterpointService(cfg *config.Config, loader *presets.Loader, store CompositionStore, recorder *metrics.Recorder) (*CounterpointService, error) {
	species, err := counterpoint.ParseSpecies(cfg.DefaultSpecies)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_SPECIES: %w", err)
	}
	return &CounterpointService{
		generator: counterpoint.NewGenerator(
			counterpoint.WithWorkers(cfg.EngineWorkers),
			counterpoint.WithMaxSearchSpace(cfg.MaxSearchSpace),
		),
		presets:        loader,
		store:          store,
		recorder:       recorder,
		defaultSpecies: species,
		timeout:        cfg.GenerationTimeout,
	}, nil
}

// HasStore reports whether compositions are persisted
func (s *CounterpointService) HasStore() bool {
	return s.store != nil
}

// Generate produces one counterpoint for req
func (s *CounterpointService) Generate(ctx context.Context, userID string, req models.CounterpointRequest) (*models.CounterpointResponse, error) {
	ref, presetName, err := s.reference(req.CantusFirmus, req.Preset)
	if err != nil {
		return nil, err
	}
	species, err := s.species(req.Species)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	engineReq := counterpoint.Request{
		Reference:   ref,
		Species:     species,
		Seed:        req.Seed,
		OnBeatEntry: req.OnBeatEntry,
	}
	solutions, stats, err := s.generator.Solve(ctx, engineReq)

	var line music.Voice
	if err == nil {
		line, err = s.generator.Pick(req.Seed, solutions)
	}
	s.record(ctx, species, stats, len(solutions), err)
	if err != nil {
		return nil, fmt.Errorf("%s species over %s: %w", species, ref, err)
	}

	resp := &models.CounterpointResponse{
		Species:      int(species),
		Preset:       presetName,
		CantusFirmus: ref.Names(),
		Counterpoint: line.Names(),
		Timeline:     BuildTimeline(ref, line),
		Stats:        models.NewGenerationStats(stats),
		Seed:         req.Seed,
	}
	if req.IncludeSolutions {
		limit := req.MaxSolutions
		if limit <= 0 {
			limit = defaultMaxSolutions
		}
		resp.Solutions = make([][]string, 0, min(limit, len(solutions)))
		for _, sol := range solutions[:min(limit, len(solutions))] {
			resp.Solutions = append(resp.Solutions, sol.Names())
		}
	}

	if s.store != nil {
		composition := &models.Composition{
			UserID:       userID,
			Species:      int(species),
			Preset:       presetName,
			CantusFirmus: resp.CantusFirmus,
			Counterpoint: resp.Counterpoint,
			Solutions:    len(solutions),
			SearchSpace:  stats.SearchSpaceSizeString(),
			Examined:     stats.Examined,
			DurationMs:   stats.Duration.Milliseconds(),
		}
		if req.Seed != nil {
			composition.Seed = strconv.FormatUint(*req.Seed, 10)
		}
		if err := s.store.Save(ctx, composition); err != nil {
			logger.Error("Failed to persist composition", err, logger.Fields{"user_id": userID})
		} else {
			resp.ID = composition.ID.String()
		}
	}

	return resp, nil
}

// Validate judges a caller-supplied counterpoint and returns the full trace
func (s *CounterpointService) Validate(_ context.Context, req models.ValidateRequest) (*models.ValidateResponse, error) {
	ref, _, err := s.reference(req.CantusFirmus, req.Preset)
	if err != nil {
		return nil, err
	}
	species, err := s.species(req.Species)
	if err != nil {
		return nil, err
	}
	line, err := counterpointVoice(species, req.Counterpoint)
	if err != nil {
		return nil, err
	}

	shaper, err := counterpoint.NewShaper(species, req.OnBeatEntry)
	if err != nil {
		return nil, err
	}
	validator, err := counterpoint.NewValidator(species,
		counterpoint.WithTrace(),
		counterpoint.WithCandidateSets(shaper),
	)
	if err != nil {
		return nil, err
	}
	verdict, err := validator.Validate(ref, line)
	if err != nil {
		return nil, err
	}

	fields := logger.Fields{"species": species.String(), "accepted": verdict.Accepted}
	if verdict.Violation != nil {
		fields["rule"] = string(verdict.Violation.Rule)
	}
	logger.Debug("Counterpoint validated", fields)

	return &models.ValidateResponse{
		Accepted:  verdict.Accepted,
		Violation: verdict.Violation,
		Trace:     verdict.Trace,
	}, nil
}

// GetComposition returns one stored composition of the user
func (s *CounterpointService) GetComposition(ctx context.Context, userID, id string) (*models.Composition, error) {
	if s.store == nil {
		return nil, ErrPersistenceDisabled
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCompositionNotFound, id)
	}
	return s.store.Get(ctx, userID, parsed)
}

// ListCompositions returns a page of the user's stored compositions
func (s *CounterpointService) ListCompositions(ctx context.Context, userID string, page, pageSize int) ([]models.Composition, int64, error) {
	if s.store == nil {
		return nil, 0, ErrPersistenceDisabled
	}
	return s.store.List(ctx, userID, page, pageSize)
}

// reference resolves the cantus firmus from inline notes or a preset name
func (s *CounterpointService) reference(notes []string, preset string) (music.Voice, string, error) {
	switch {
	case len(notes) > 0 && preset != "":
		return nil, "", fmt.Errorf("%w: give either cantus_firmus or preset, not both", ErrInvalidRequest)
	case preset != "":
		if s.presets == nil {
			return nil, "", fmt.Errorf("%w: %q", presets.ErrPresetNotFound, preset)
		}
		p, err := s.presets.Get(preset)
		if err != nil {
			return nil, "", err
		}
		v, err := p.Voice()
		return v, p.Name, err
	case len(notes) == 0:
		return nil, "", fmt.Errorf("%w: cantus_firmus or preset is required", ErrInvalidRequest)
	}

	v, err := music.ParseVoice(notes, music.WholeNote)
	if err != nil {
		return nil, "", err
	}
	for i, p := range v {
		if p.IsRest() {
			return nil, "", fmt.Errorf("%w: cantus firmus note %d is a rest", ErrInvalidRequest, i)
		}
	}
	return v, "", nil
}

func (s *CounterpointService) species(n int) (counterpoint.Species, error) {
	if n == 0 {
		return s.defaultSpecies, nil
	}
	return counterpoint.ParseSpecies(n)
}

// counterpointVoice parses a caller line with the durations of its species:
// whole notes for first species, half notes closing on a whole for second
func counterpointVoice(species counterpoint.Species, notes []string) (music.Voice, error) {
	line, err := music.ParseVoice(notes, species.NoteDuration())
	if err != nil {
		return nil, err
	}
	if len(line) > 0 {
		line[len(line)-1] = line[len(line)-1].WithDuration(music.WholeNote)
	}
	return line, nil
}

func (s *CounterpointService) record(ctx context.Context, species counterpoint.Species, stats counterpoint.Stats, solutions int, err error) {
	outcome := Outcome(err)

	g := metrics.Generation{
		Species:   species.String(),
		Outcome:   outcome,
		Examined:  stats.Examined,
		Solutions: solutions,
		Workers:   stats.Workers,
		Duration:  stats.Duration,
		Rejected:  make(map[string]int, len(stats.Rejected)),
	}
	if stats.SearchSpaceSize != nil {
		g.SearchSpace, _ = stats.SearchSpaceSize.Float64()
	}
	for rule, n := range stats.Rejected {
		g.Rejected[string(rule)] = n
	}
	s.recorder.RecordGeneration(ctx, g)

	logger.LogGenerationRequest(ctx, g.Species, stats.Duration, map[string]interface{}{
		"search_space": stats.SearchSpaceSizeString(),
		"examined":     stats.Examined,
		"solutions":    solutions,
	}, logger.Fields{"outcome": outcome, "workers": stats.Workers})
}

// Outcome classifies an engine error for metrics
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, counterpoint.ErrNoSolution):
		return metrics.OutcomeNoSolution
	case errors.Is(err, counterpoint.ErrSearchSpaceTooLarge):
		return metrics.OutcomeTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeTimeout
	case errors.Is(err, counterpoint.ErrInvalidReferenceLength),
		errors.Is(err, counterpoint.ErrInvalidSpeciesConfiguration),
		errors.Is(err, music.ErrInvalidPitch),
		errors.Is(err, music.ErrUndefinedInterval),
		errors.Is(err, music.ErrUnknownInterval):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
