// Package metrics holds the prometheus collectors shared by the API and the
// background workers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

var (
	// AssessmentTransitions counts assessment status changes by target status.
	AssessmentTransitions = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "vantage",
		Name:      "assessment_transitions_total",
		Help:      "Number of assessment status transitions.",
	}, []string{"status"})

	// MOVUploads counts MOV records created, by uploader role.
	MOVUploads = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "vantage",
		Name:      "mov_uploads_total",
		Help:      "Number of MOV files registered.",
	}, []string{"role"})

	// JobDuration observes background job run time by kind and outcome.
	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
		Namespace: "vantage",
		Name:      "job_duration_seconds",
		Help:      "Duration of background jobs.",
		Buckets:   DefaultBuckets,
	}, []string{"kind", "outcome"})
)
