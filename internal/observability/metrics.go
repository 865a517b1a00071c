package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the skill.
type Metrics struct {
	IntentRequests *prometheus.CounterVec // labels: intent, outcome={answered,guidance,error}

	// Feed fetch metrics.
	FeedFetchDuration *prometheus.HistogramVec // label: feed={sightings,crew}
	FeedFetchErrors   *prometheus.CounterVec   // label: feed

	// Analytics event publishing metrics.
	EventsPublished    prometheus.Counter
	EventPublishErrors prometheus.Counter

	SkillReady prometheus.Gauge
}

// NewMetrics creates and registers all skill metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		IntentRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iss_skill",
			Name:      "intent_requests_total",
			Help:      "Handled intent requests by intent name and outcome.",
		}, []string{"intent", "outcome"}),
		FeedFetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "iss_skill",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Remote feed fetch-and-parse duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"feed"}),
		FeedFetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iss_skill",
			Name:      "feed_fetch_errors_total",
			Help:      "Remote feed fetch failures by feed.",
		}, []string{"feed"}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iss_skill",
			Name:      "intent_events_published_total",
			Help:      "Intent-outcome events written to the analytics topic.",
		}),
		EventPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iss_skill",
			Name:      "intent_event_publish_errors_total",
			Help:      "Failed intent-outcome event publishes.",
		}),
		SkillReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "iss_skill",
			Name:      "ready",
			Help:      "1 when the skill has reference data loaded, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.IntentRequests,
		m.FeedFetchDuration,
		m.FeedFetchErrors,
		m.EventsPublished,
		m.EventPublishErrors,
		m.SkillReady,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		IntentRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "iss_skill", Name: "intent_requests_total"}, []string{"intent", "outcome"}),
		FeedFetchDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "iss_skill", Name: "feed_fetch_duration_seconds"}, []string{"feed"}),
		FeedFetchErrors:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "iss_skill", Name: "feed_fetch_errors_total"}, []string{"feed"}),
		EventsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "iss_skill", Name: "intent_events_published_total"}),
		EventPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "iss_skill", Name: "intent_event_publish_errors_total"}),
		SkillReady:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "iss_skill", Name: "ready"}),
	}
}
