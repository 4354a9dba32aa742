package metrics

import (
	"context"
	"time"
)

// Generation outcomes
const (
	OutcomeOK         = "ok"
	OutcomeNoSolution = "no_solution"
	OutcomeTooLarge   = "too_large"
	OutcomeTimeout    = "timeout"
	OutcomeInvalid    = "invalid"
	OutcomeError      = "error"
)

// Generation is one engine run as seen by the metrics backends
type Generation struct {
	Species     string
	Outcome     string
	SearchSpace float64 // approximate for spaces beyond float64 precision
	Examined    uint64
	Solutions   int
	Rejected    map[string]int
	Workers     int
	Duration    time.Duration
}

// Recorder fans one generation out to every configured backend
type Recorder struct {
	sentry     *SentryMetrics
	cloudwatch *Client
	prometheus bool
}

// NewRecorder combines the backends. A nil CloudWatch client is skipped.
func NewRecorder(sentry *SentryMetrics, cloudwatch *Client, prometheus bool) *Recorder {
	return &Recorder{
		sentry:     sentry,
		cloudwatch: cloudwatch,
		prometheus: prometheus,
	}
}

// RecordGeneration sends g to Sentry, CloudWatch and Prometheus
func (r *Recorder) RecordGeneration(ctx context.Context, g Generation) {
	if r == nil {
		return
	}
	if r.sentry != nil {
		r.sentry.RecordGeneration(ctx, g)
	}
	if r.cloudwatch != nil {
		r.cloudwatch.RecordGeneration(g)
	}
	if r.prometheus {
		ObserveGeneration(g)
	}
}
