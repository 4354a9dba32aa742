package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// generationsTotal counts engine runs.
	// Labels: species, outcome (ok, no_solution, too_large, timeout, invalid, error)
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "counterpoint",
		Subsystem: "engine",
		Name:      "generations_total",
		Help:      "Total counterpoint generations by outcome",
	}, []string{"species", "outcome"})

	// generationDuration measures enumeration wall time.
	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "counterpoint",
		Subsystem: "engine",
		Name:      "duration_seconds",
		Help:      "Counterpoint enumeration latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"species"})

	// searchSpaceSize tracks how many candidates each request asks for.
	searchSpaceSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "counterpoint",
		Subsystem: "engine",
		Name:      "search_space_size",
		Help:      "Distribution of candidate search space sizes",
		Buckets:   prometheus.ExponentialBuckets(10, 10, 9),
	}, []string{"species"})

	// candidatesExamined counts validated candidate lines.
	candidatesExamined = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "counterpoint",
		Subsystem: "engine",
		Name:      "candidates_examined_total",
		Help:      "Total candidate lines validated",
	}, []string{"species"})

	// rejectionsTotal counts rejected candidates by the first rule they broke.
	rejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "counterpoint",
		Subsystem: "rules",
		Name:      "rejections_total",
		Help:      "Total rejected candidate lines by rule",
	}, []string{"species", "rule"})

	// solutionsFound tracks the size of the accepted set.
	solutionsFound = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "counterpoint",
		Subsystem: "engine",
		Name:      "solutions",
		Help:      "Number of valid counterpoint lines per generation",
		Buckets:   []float64{0, 1, 10, 100, 1000, 10000, 100000},
	}, []string{"species"})

	// httpRequests counts API requests.
	// Labels: route (the gin route template), status
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "counterpoint",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route and status",
	}, []string{"route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "counterpoint",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

// ObserveGeneration records g in the Prometheus registry
func ObserveGeneration(g Generation) {
	generationsTotal.WithLabelValues(g.Species, g.Outcome).Inc()
	if g.SearchSpace > 0 {
		searchSpaceSize.WithLabelValues(g.Species).Observe(g.SearchSpace)
	}
	if g.Outcome != OutcomeOK && g.Outcome != OutcomeNoSolution {
		return
	}
	generationDuration.WithLabelValues(g.Species).Observe(g.Duration.Seconds())
	candidatesExamined.WithLabelValues(g.Species).Add(float64(g.Examined))
	solutionsFound.WithLabelValues(g.Species).Observe(float64(g.Solutions))
	for rule, n := range g.Rejected {
		rejectionsTotal.WithLabelValues(g.Species, rule).Add(float64(n))
	}
}

// ObserveHTTPRequest records one API request
func ObserveHTTPRequest(route string, statusCode int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, strconv.Itoa(statusCode)).Inc()
	httpLatency.WithLabelValues(route).Observe(duration.Seconds())
}
