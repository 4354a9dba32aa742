package models

import "github.com/Conceptual-Machines/counterpoint-api/internal/counterpoint"

// CounterpointRequest asks for a counterpoint above a cantus firmus, given
// either inline or by preset name
type CounterpointRequest struct {
	CantusFirmus     []string `json:"cantus_firmus" binding:"required_without=Preset,dive,pitch"`
	Preset           string   `json:"preset"`
	Species          int      `json:"species" binding:"omitempty,species"`
	Seed             *uint64  `json:"seed,omitempty"` // Optional seed for reproducibility
	IncludeSolutions bool     `json:"include_solutions"`
	MaxSolutions     int      `json:"max_solutions" binding:"omitempty,min=1,max=1000"`
	OnBeatEntry      bool     `json:"on_beat_entry"` // second species may open on the beat
}

// ValidateRequest checks a caller-supplied counterpoint
type ValidateRequest struct {
	CantusFirmus []string `json:"cantus_firmus" binding:"required_without=Preset,dive,pitch"`
	Preset       string   `json:"preset"`
	Species      int      `json:"species" binding:"omitempty,species"`
	Counterpoint []string `json:"counterpoint" binding:"required,min=1,dive,pitch_or_rest"`
	OnBeatEntry  bool     `json:"on_beat_entry"`
}

// GenerationStats is the JSON view of counterpoint.Stats
type GenerationStats struct {
	SearchSpace string         `json:"search_space"`
	Examined    uint64         `json:"examined"`
	Accepted    uint64         `json:"accepted"`
	Rejected    map[string]int `json:"rejected"`
	Workers     int            `json:"workers"`
	DurationMs  int64          `json:"duration_ms"`
}

// NewGenerationStats converts engine statistics
func NewGenerationStats(s counterpoint.Stats) GenerationStats {
	rejected := make(map[string]int, len(s.Rejected))
	for rule, n := range s.Rejected {
		rejected[string(rule)] = n
	}
	return GenerationStats{
		SearchSpace: s.SearchSpaceSizeString(),
		Examined:    s.Examined,
		Accepted:    s.Accepted,
		Rejected:    rejected,
		Workers:     s.Workers,
		DurationMs:  s.Duration.Milliseconds(),
	}
}

// CounterpointResponse is a generated counterpoint
type CounterpointResponse struct {
	ID           string          `json:"id,omitempty"`
	Species      int             `json:"species"`
	Preset       string          `json:"preset,omitempty"`
	CantusFirmus []string        `json:"cantus_firmus"`
	Counterpoint []string        `json:"counterpoint"`
	Timeline     Timeline        `json:"timeline"`
	Stats        GenerationStats `json:"stats"`
	Solutions    [][]string      `json:"solutions,omitempty"`
	Seed         *uint64         `json:"seed,omitempty"`
}

// ValidateResponse is the verdict on one counterpoint
type ValidateResponse struct {
	Accepted  bool                    `json:"accepted"`
	Violation *counterpoint.Violation `json:"violation,omitempty"`
	Trace     []string                `json:"trace"`
}
