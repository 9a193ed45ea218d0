package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "brewlog"

// Metrics holds every Prometheus collector the service exposes.
type Metrics struct {
	PassesTotal     *prometheus.CounterVec
	PassDuration    prometheus.Histogram
	BucketsEmitted  prometheus.Counter
	KeyFailures     prometheus.Counter
	KeysTracked     prometheus.Gauge
	EventsRecorded  prometheus.Counter
	Registrations   *prometheus.CounterVec
	SeenCacheHits   prometheus.Counter
	SeenCacheMisses prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PassesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "aggregation",
			Name:      "passes_total",
			Help:      "Total number of aggregation passes by outcome.",
		}, []string{"outcome"}), // outcome: ok, partial
		PassDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "aggregation",
			Name:      "pass_duration_seconds",
			Help:      "Wall time spent in one aggregation pass.",
			Buckets:   prometheus.DefBuckets,
		}),
		BucketsEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "aggregation",
			Name:      "buckets_emitted_total",
			Help:      "Total number of buckets appended by the engine.",
		}),
		KeyFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "aggregation",
			Name:      "key_failures_total",
			Help:      "Total number of brews whose bucket chain failed in a pass.",
		}),
		KeysTracked: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "aggregation",
			Name:      "keys",
			Help:      "Number of registered brews seen by the last pass.",
		}),
		EventsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "events_total",
			Help:      "Total number of recorded brew events.",
		}),
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "registrations_total",
			Help:      "Total number of new brew registrations by source.",
		}, []string{"source"}), // source: explicit, auto
		SeenCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "seen_cache_hits_total",
			Help:      "Total number of seen-cache hits.",
		}),
		SeenCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "seen_cache_misses_total",
			Help:      "Total number of seen-cache misses.",
		}),
	}
}

// NewNop returns collectors registered on a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
