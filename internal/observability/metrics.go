// Package observability exposes Prometheus metrics for the dashboard server.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/huangsam/treehealth/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors recorded by the dashboard. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	snapshotRows      *prometheus.GaugeVec
	snapshotSpecies   prometheus.Gauge
}

// NewMetrics creates the collectors on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "treehealth_http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "treehealth_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "treehealth_chart_cache_hits_total",
			Help: "Total chart cache hits observed.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "treehealth_chart_cache_misses_total",
			Help: "Total chart cache misses observed.",
		}),
		snapshotRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "treehealth_snapshot_rows",
			Help: "Rows in the loaded snapshot by kind (fetched, kept, dropped, proportion, health_index).",
		}, []string{"kind"}),
		snapshotSpecies: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "treehealth_snapshot_species",
			Help: "Distinct species in the loaded snapshot.",
		}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.cacheHits,
		m.cacheMisses,
		m.snapshotRows,
		m.snapshotSpecies,
	)
	return m
}

// Registry returns the registry the collectors are registered on, or nil.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// CacheHit counts a chart served from the cache.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

// CacheMiss counts a chart that had to be rendered.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

// SetSnapshot publishes the row counts of the loaded snapshot.
func (m *Metrics) SetSnapshot(s schema.SnapshotSummary) {
	if m == nil {
		return
	}
	m.snapshotRows.WithLabelValues("fetched").Set(float64(s.FetchedRows))
	m.snapshotRows.WithLabelValues("kept").Set(float64(s.KeptRows))
	m.snapshotRows.WithLabelValues("dropped").Set(float64(s.DroppedRows))
	m.snapshotRows.WithLabelValues("proportion").Set(float64(s.ProportionRows))
	m.snapshotRows.WithLabelValues("health_index").Set(float64(s.HealthIndexRows))
	m.snapshotSpecies.Set(float64(s.SpeciesCount))
}
