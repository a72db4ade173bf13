package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Summary metrics
	SummariesComputed *prometheus.CounterVec
	SummaryDuration   prometheus.Histogram
	SummaryCacheHits  prometheus.Counter
	SummaryCacheMiss  prometheus.Counter

	// Ledger metrics
	EntriesCreated *prometheus.CounterVec
	SnapshotsSaved prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Summary metrics
		SummariesComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nestegg_summaries_computed_total",
				Help: "Total number of period summaries served, by range selector",
			},
			[]string{"selector"},
		),
		SummaryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "nestegg_summary_duration_seconds",
			Help:    "Duration of summary computations",
			Buckets: prometheus.DefBuckets,
		}),
		SummaryCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nestegg_summary_cache_hits_total",
			Help: "Total number of summaries served from cache",
		}),
		SummaryCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nestegg_summary_cache_misses_total",
			Help: "Total number of summaries recomputed on cache miss",
		}),

		// Ledger metrics
		EntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nestegg_entries_created_total",
				Help: "Total number of ledger entries created, by kind",
			},
			[]string{"kind"},
		),
		SnapshotsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nestegg_snapshots_saved_total",
			Help: "Total number of net worth snapshots saved",
		}),
	}
}

// SummaryComputed implements usecase.MetricsRecorder.
func (m *Metrics) SummaryComputed(selector string, duration time.Duration, cacheHit bool) {
	m.SummariesComputed.WithLabelValues(selector).Inc()
	m.SummaryDuration.Observe(duration.Seconds())
	if cacheHit {
		m.SummaryCacheHits.Inc()
	} else {
		m.SummaryCacheMiss.Inc()
	}
}

// EntryCreated implements usecase.MetricsRecorder.
func (m *Metrics) EntryCreated(kind string) {
	m.EntriesCreated.WithLabelValues(kind).Inc()
}

// SnapshotSaved implements usecase.MetricsRecorder.
func (m *Metrics) SnapshotSaved() {
	m.SnapshotsSaved.Inc()
}
