package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the report
// workflow, catalog API and adapters.
type Metrics struct {
	// Report session metrics.
	ReportsSubmitted   prometheus.Counter
	ReportsDispatched  prometheus.Counter
	ValidationFailures prometheus.Counter
	DispatchFailures   prometheus.Counter
	SessionResets      *prometheus.CounterVec // labels: reason={auto,explicit}
	DispatchDuration   prometheus.Histogram
	ActiveSessions     prometheus.Gauge
	SessionsEvicted    *prometheus.CounterVec // labels: reason={idle,capacity}

	// Catalog metrics.
	CatalogRequests *prometheus.CounterVec // labels: resource={zones,centers,tips}, filter
	CatalogIssues   *prometheus.GaugeVec   // labels: level={error,warning}

	// Geolocation metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.ReportsDispatched,
		m.ValidationFailures,
		m.DispatchFailures,
		m.SessionResets,
		m.DispatchDuration,
		m.ActiveSessions,
		m.SessionsEvicted,
		m.CatalogRequests,
		m.CatalogIssues,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatguard",
			Name:      "reports_submitted_total",
			Help:      "Reports that passed validation and entered the submitting state.",
		}),
		ReportsDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatguard",
			Name:      "reports_dispatched_total",
			Help:      "Reports acknowledged by the dispatch service.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatguard",
			Name:      "report_validation_failures_total",
			Help:      "Submit attempts rejected by validation.",
		}),
		DispatchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatguard",
			Name:      "dispatch_failures_total",
			Help:      "Submissions the dispatch service failed to accept.",
		}),
		SessionResets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatguard",
			Name:      "session_resets_total",
			Help:      "Report sessions returned to an empty draft, by reason.",
		}, []string{"reason"}),
		DispatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatguard",
			Name:      "dispatch_duration_seconds",
			Help:      "Time from submit to dispatch acknowledgement or failure.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 1.5, 2.5, 5, 10},
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "heatguard",
			Name:      "active_report_sessions",
			Help:      "Report sessions currently held by the session store.",
		}),
		SessionsEvicted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatguard",
			Name:      "report_sessions_evicted_total",
			Help:      "Report sessions closed by the store without a delete, by reason.",
		}, []string{"reason"}),
		CatalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatguard",
			Name:      "catalog_requests_total",
			Help:      "Catalog reads by resource and filter key.",
		}, []string{"resource", "filter"}),
		CatalogIssues: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "heatguard",
			Name:      "catalog_issues",
			Help:      "Data-quality issues found in the loaded catalog, by level.",
		}, []string{"level"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatguard",
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatguard",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatguard",
			Name:      "geocode_api_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}
