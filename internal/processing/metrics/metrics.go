package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the processing pipeline.
type Metrics struct {
	ApplicationsProcessed *prometheus.CounterVec
	ProcessingDuration    prometheus.Histogram
	PublishFailures       prometheus.Counter
}

// New creates and registers all pipeline metrics.
func New() *Metrics {
	return &Metrics{
		ApplicationsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_applications_processed_total",
			Help: "Applications processed, by product and outcome.",
		}, []string{"product", "outcome"}),
		ProcessingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "onboarding_processing_duration_seconds",
			Help:    "End-to-end pipeline duration per application.",
			Buckets: prometheus.DefBuckets,
		}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_event_publish_failures_total",
			Help: "Domain event publications that returned an error.",
		}),
	}
}

// ObserveProcessed records one completed pipeline run.
func (m *Metrics) ObserveProcessed(product, outcome string, elapsed time.Duration) {
	m.ApplicationsProcessed.WithLabelValues(product, outcome).Inc()
	m.ProcessingDuration.Observe(elapsed.Seconds())
}

// IncrementPublishFailures records a failed event publication.
func (m *Metrics) IncrementPublishFailures() {
	m.PublishFailures.Inc()
}
