package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsOption customises NewMetrics.
type MetricsOption func(*metricsConfig)

type metricsConfig struct {
	namespace string
	labels    prometheus.Labels
	buckets   []float64
	registry  prometheus.Registerer
}

// WithNamespace prefixes every metric name. The default is "site".
func WithNamespace(ns string) MetricsOption {
	return func(c *metricsConfig) { c.namespace = ns }
}

// WithConstLabels attaches labels to every series.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *metricsConfig) { c.labels = labels }
}

// WithBuckets replaces the request latency buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *metricsConfig) { c.buckets = buckets }
}

// WithRegistry registers the collectors on reg instead of the default
// registerer.
func WithRegistry(reg prometheus.Registerer) MetricsOption {
	return func(c *metricsConfig) { c.registry = reg }
}

// Metrics holds the site's Prometheus collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	renders  *prometheus.CounterVec
	reloads  *prometheus.CounterVec
}

// NewMetrics registers the collectors. Registering twice on the same
// registry panics, so create one Metrics per registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	c := metricsConfig{
		namespace: "site",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&c)
	}
	f := promauto.With(c.registry)
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return f.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.namespace, Name: name, Help: help, ConstLabels: c.labels,
		}, labels)
	}

	return &Metrics{
		requests: counter("requests_total", "HTTP requests served.", "route", "method", "status"),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   c.namespace,
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: c.labels,
			Buckets:     c.buckets,
		}, []string{"route"}),
		renders: counter("page_renders_total", "Page renders by result.", "route", "result"),
		reloads: counter("content_reloads_total", "Content reloads by result.", "result"),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Handler is the middleware recording request count and latency.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, _ := withRoute(r.Context())
		r = r.WithContext(ctx)
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		start := time.Now()
		next.ServeHTTP(ww, r)
		duration := time.Since(start).Seconds()

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := Route(r)
		m.latency.WithLabelValues(route).Observe(duration)
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}

// RecordRender counts a page render. A nil Metrics is a no-op.
func (m *Metrics) RecordRender(route string, err error) {
	if m != nil {
		m.renders.WithLabelValues(route, result(err)).Inc()
	}
}

// RecordReload counts a content reload. A nil Metrics is a no-op.
func (m *Metrics) RecordReload(err error) {
	if m != nil {
		m.reloads.WithLabelValues(result(err)).Inc()
	}
}
