package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the portal:
// inbound HTTP traffic, upstream gateway calls and reference cache
// effectiveness.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	upstreamTotal    *prometheus.CounterVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
}

// NewMetricsService registers the portal collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of calls to the results API in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	upstreamTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Total number of calls to the results API",
	}, []string{"endpoint", "status"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reference_cache_hits_total",
		Help: "Reference cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reference_cache_misses_total",
		Help: "Reference cache misses",
	})

	registry.MustRegister(
		requestDuration,
		requestTotal,
		upstreamDuration,
		upstreamTotal,
		cacheHits,
		cacheMisses,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		upstreamDuration: upstreamDuration,
		upstreamTotal:    upstreamTotal,
		cacheHits:        cacheHits,
		cacheMisses:      cacheMisses,
	}
}

// ObserveHTTPRequest records one inbound request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	m.requestDuration.With(labels).Observe(duration.Seconds())
	m.requestTotal.With(labels).Inc()
}

// ObserveUpstream records one gateway call. Status 0 marks a transport
// failure.
func (m *MetricsService) ObserveUpstream(endpoint string, status int, duration time.Duration) {
	labels := prometheus.Labels{"endpoint": endpoint, "status": strconv.Itoa(status)}
	m.upstreamDuration.With(labels).Observe(duration.Seconds())
	m.upstreamTotal.With(labels).Inc()
}

// CacheHit counts a reference cache hit.
func (m *MetricsService) CacheHit() { m.cacheHits.Inc() }

// CacheMiss counts a reference cache miss.
func (m *MetricsService) CacheMiss() { m.cacheMisses.Inc() }

// Handler exposes the scrape endpoint.
func (m *MetricsService) Handler() http.Handler { return m.handler }
