package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordGeneration records one enumeration as a span on the request transaction
func (m *SentryMetrics) RecordGeneration(ctx context.Context, g Generation) {
	if !m.enabled {
		return
	}

	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("counterpoint.species", g.Species)
		transaction.SetTag("counterpoint.outcome", g.Outcome)
	}

	span := sentry.StartSpan(ctx, "counterpoint.enumerate")
	defer span.Finish()

	span.SetTag("species", g.Species)
	span.SetTag("outcome", g.Outcome)

	span.SetData("duration_ms", g.Duration.Milliseconds())
	span.SetData("search_space", g.SearchSpace)
	span.SetData("examined", g.Examined)
	span.SetData("solutions", g.Solutions)
	span.SetData("rejected", g.Rejected)

	switch g.Outcome {
	case OutcomeOK, OutcomeNoSolution:
		span.Status = sentry.SpanStatusOK
	case OutcomeTimeout:
		span.Status = sentry.SpanStatusDeadlineExceeded
	case OutcomeTooLarge:
		span.Status = sentry.SpanStatusResourceExhausted
	default:
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("Counterpoint: %s species (%s)", g.Species, g.Outcome)
}
