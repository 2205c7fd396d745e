package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SamplerMetrics holds all Prometheus metrics for the sampling pipeline
type SamplerMetrics struct {
	// Sample metrics
	SamplesTotal *prometheus.CounterVec
	AttemptsHist prometheus.Histogram

	// Requirement metrics
	RejectionsTotal *prometheus.CounterVec
	CheckLatency    *prometheus.HistogramVec

	// Verdict cache metrics
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter
}

// NewSamplerMetrics creates a new metrics instance registered on reg.
// A nil reg uses the default registerer.
func NewSamplerMetrics(reg prometheus.Registerer) *SamplerMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &SamplerMetrics{
		SamplesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampler_samples_total",
				Help: "Total number of samples checked",
			},
			[]string{"status"},
		),

		AttemptsHist: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sampler_attempts_per_accept",
				Help:    "Number of attempts needed per accepted sample",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),

		RejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampler_rejections_total",
				Help: "Total number of rejections by violation reason",
			},
			[]string{"reason"},
		),

		CheckLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sampler_check_latency_seconds",
				Help:    "Requirement check latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),

		CacheHitsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sampler_verdict_cache_hits_total",
				Help: "Total number of verdict cache hits",
			},
		),

		CacheMissesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sampler_verdict_cache_misses_total",
				Help: "Total number of verdict cache misses",
			},
		),
	}
}

// RecordAccepted records an accepted sample and the attempts it took
func (m *SamplerMetrics) RecordAccepted(attempts int) {
	m.SamplesTotal.WithLabelValues("accepted").Inc()
	m.AttemptsHist.Observe(float64(attempts))
}

// RecordRejected records one rejected attempt
func (m *SamplerMetrics) RecordRejected(reason string) {
	m.SamplesTotal.WithLabelValues("rejected").Inc()
	m.RejectionsTotal.WithLabelValues(reason).Inc()
}

// RecordCheckLatency records the latency of one checker call
func (m *SamplerMetrics) RecordCheckLatency(strategy string, duration time.Duration) {
	m.CheckLatency.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordCacheHit records a verdict cache hit
func (m *SamplerMetrics) RecordCacheHit() {
	m.CacheHitsTotal.Inc()
}

// RecordCacheMiss records a verdict cache miss
func (m *SamplerMetrics) RecordCacheMiss() {
	m.CacheMissesTotal.Inc()
}
