package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on /metrics. Each instance owns its
// own registry so tests and multiple servers never collide.
type Metrics struct {
	registry *prometheus.Registry

	previewRenders  *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	catalogReloads  *prometheus.CounterVec
	catalogEntries  *prometheus.GaugeVec
	websocketClient prometheus.Gauge
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		previewRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webref",
			Name:      "preview_renders_total",
			Help:      "Previews rendered, by scene.",
		}, []string{"scene"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webref",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method and status code.",
		}, []string{"method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "webref",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		catalogReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webref",
			Name:      "catalog_reloads_total",
			Help:      "Catalog overlay reloads, by result.",
		}, []string{"result"}),
		catalogEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "webref",
			Name:      "catalog_entries",
			Help:      "Entries currently in the catalog, by kind.",
		}, []string{"kind"}),
		websocketClient: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "webref",
			Name:      "websocket_clients",
			Help:      "Connected live-reload clients.",
		}),
	}

	m.registry.MustRegister(
		m.previewRenders,
		m.httpRequests,
		m.httpDuration,
		m.catalogReloads,
		m.catalogEntries,
		m.websocketClient,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// PreviewRendered counts one rendered preview.
func (m *Metrics) PreviewRendered(scene string) {
	m.previewRenders.WithLabelValues(scene).Inc()
}

// RequestServed records one HTTP request.
func (m *Metrics) RequestServed(method string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// CatalogReloaded records a reload attempt.
func (m *Metrics) CatalogReloaded(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.catalogReloads.WithLabelValues(result).Inc()
}

// SetCatalogEntries records the size of one table.
func (m *Metrics) SetCatalogEntries(kind string, n int) {
	m.catalogEntries.WithLabelValues(kind).Set(float64(n))
}

// SetWebSocketClients records the live-reload client count.
func (m *Metrics) SetWebSocketClients(n int) {
	m.websocketClient.Set(float64(n))
}
