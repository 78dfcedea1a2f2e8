package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Export outcomes.
const (
	OutcomeComplete  = "complete"
	OutcomeTruncated = "truncated"
	OutcomeRejected  = "rejected"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Export metrics
	ExportsStarted  *prometheus.CounterVec
	ExportsFinished *prometheus.CounterVec
	ExportRows      *prometheus.CounterVec
	ExportDuration  *prometheus.HistogramVec
	ExportsInFlight prometheus.Gauge

	// Store page metrics
	PagesFetched *prometheus.CounterVec
	PageRows     *prometheus.HistogramVec
	PageDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates and registers all Prometheus metrics on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Export metrics
		ExportsStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerexport_exports_started_total",
				Help: "Total number of exports started by kind",
			},
			[]string{"kind"},
		),
		ExportsFinished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerexport_exports_finished_total",
				Help: "Total number of exports finished by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		ExportRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerexport_export_rows_total",
				Help: "Total number of rows written by exports",
			},
			[]string{"kind"},
		),
		ExportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerexport_export_duration_seconds",
				Help:    "Duration of exports from first query to last row",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
			[]string{"kind"},
		),
		ExportsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerexport_exports_in_flight",
			Help: "Number of exports currently streaming",
		}),

		// Store page metrics
		PagesFetched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerexport_pages_fetched_total",
				Help: "Total number of store pages fetched by source",
			},
			[]string{"source"},
		),
		PageRows: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerexport_page_rows",
				Help:    "Rows per fetched store page",
				Buckets: []float64{0, 10, 100, 1000, 5000, 10000, 30000},
			},
			[]string{"source"},
		),
		PageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerexport_page_duration_seconds",
				Help:    "Duration of store page fetches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
}

// ObservePage implements usecase.ExportObserver.
func (m *Metrics) ObservePage(source string, rows int, elapsed time.Duration) {
	m.PagesFetched.WithLabelValues(source).Inc()
	m.PageRows.WithLabelValues(source).Observe(float64(rows))
	m.PageDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// ExportStarted records the start of an export.
func (m *Metrics) ExportStarted(kind string) {
	m.ExportsStarted.WithLabelValues(kind).Inc()
	m.ExportsInFlight.Inc()
}

// ExportFinished records the end of an export started with ExportStarted.
func (m *Metrics) ExportFinished(kind, outcome string, rows int, elapsed time.Duration) {
	m.ExportsInFlight.Dec()
	m.ExportsFinished.WithLabelValues(kind, outcome).Inc()
	m.ExportRows.WithLabelValues(kind).Add(float64(rows))
	m.ExportDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
