package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DisabledOutsideProduction(t *testing.T) {
	client, err := NewClient(context.Background(), "development")
	require.NoError(t, err)
	assert.False(t, client.enabled)

	// no-ops when disabled
	client.RecordAPIRequest("/api/v1/counterpoint", 200, time.Millisecond)
	client.RecordGeneration(Generation{Species: "first", Outcome: OutcomeOK})
	assert.NoError(t, client.putMetric(context.Background(), "x", 1, "Count", nil))
}

func TestObserveGeneration(t *testing.T) {
	tests := []struct {
		name          string
		gen           Generation
		wantExamined  float64
		wantRejection float64
	}{
		{
			name: "successful run records everything",
			gen: Generation{
				Species: "first", Outcome: OutcomeOK, SearchSpace: 1029, Examined: 1029,
				Solutions: 12, Rejected: map[string]int{"big-leap": 400}, Duration: 3 * time.Millisecond,
			},
			wantExamined:  1029,
			wantRejection: 400,
		},
		{
			name:         "oversized run only counts the request",
			gen:          Generation{Species: "second", Outcome: OutcomeTooLarge, SearchSpace: 1e9},
			wantExamined: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(generationsTotal.WithLabelValues(tt.gen.Species, tt.gen.Outcome))
			examined := testutil.ToFloat64(candidatesExamined.WithLabelValues(tt.gen.Species))
			rejected := testutil.ToFloat64(rejectionsTotal.WithLabelValues(tt.gen.Species, "big-leap"))

			ObserveGeneration(tt.gen)

			assert.Equal(t, before+1, testutil.ToFloat64(generationsTotal.WithLabelValues(tt.gen.Species, tt.gen.Outcome)))
			assert.Equal(t, examined+tt.wantExamined, testutil.ToFloat64(candidatesExamined.WithLabelValues(tt.gen.Species)))
			assert.Equal(t, rejected+tt.wantRejection, testutil.ToFloat64(rejectionsTotal.WithLabelValues(tt.gen.Species, "big-leap")))
		})
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", "404"))
	ObserveHTTPRequest("", 404, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", "404")))
}

func TestRecorder(t *testing.T) {
	var nilRecorder *Recorder
	nilRecorder.RecordGeneration(context.Background(), Generation{})

	gen := Generation{Species: "first", Outcome: OutcomeNoSolution, SearchSpace: 21, Examined: 21}
	before := testutil.ToFloat64(generationsTotal.WithLabelValues("first", OutcomeNoSolution))

	NewRecorder(NewSentryMetrics(), nil, true).RecordGeneration(context.Background(), gen)
	assert.Equal(t, before+1, testutil.ToFloat64(generationsTotal.WithLabelValues("first", OutcomeNoSolution)))

	NewRecorder(nil, nil, false).RecordGeneration(context.Background(), gen)
	assert.Equal(t, before+1, testutil.ToFloat64(generationsTotal.WithLabelValues("first", OutcomeNoSolution)))
}
