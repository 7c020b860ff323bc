package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "isobench"

// Prometheus implements BenchHooks, CacheHooks and HTTPHooks on top of
// Prometheus collectors.
type Prometheus struct {
	// ChecksTotal counts pairwise decisions.
	// Labels: method (tree, general), result (isomorphic, non_isomorphic)
	ChecksTotal *prometheus.CounterVec

	// CheckDurationSeconds measures a single pairwise decision.
	// Labels: method
	CheckDurationSeconds *prometheus.HistogramVec

	// FilesTotal counts processed dataset files.
	// Labels: status (success, error)
	FilesTotal *prometheus.CounterVec

	// CacheOpsTotal counts cache operations.
	// Labels: key_type, op (hit, miss, set)
	CacheOpsTotal *prometheus.CounterVec

	// HTTPRequestsTotal counts API requests.
	// Labels: method, route, status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPDurationSeconds measures API request latency.
	// Labels: method, route
	HTTPDurationSeconds *prometheus.HistogramVec

	// HTTPInFlight tracks requests currently being served.
	HTTPInFlight prometheus.Gauge
}

// NewPrometheus creates the collectors and registers them with reg.
// Registering twice with the same registerer panics.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		ChecksTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "bench",
				Name:      "checks_total",
				Help:      "Total number of isomorphism checks by method and result",
			},
			[]string{"method", "result"},
		),
		CheckDurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "bench",
				Name:      "check_duration_seconds",
				Help:      "Duration of a single isomorphism check",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"method"},
		),
		FilesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "bench",
				Name:      "files_total",
				Help:      "Total number of benchmarked dataset files by status",
			},
			[]string{"status"},
		),
		CacheOpsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "cache",
				Name:      "operations_total",
				Help:      "Total number of cache operations by key type and operation",
			},
			[]string{"key_type", "op"},
		),
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of API requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "API request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of API requests currently being served",
			},
		),
	}
}

// OnCheck implements BenchHooks.
func (p *Prometheus) OnCheck(_ context.Context, method string, isomorphic bool, d time.Duration) {
	result := "non_isomorphic"
	if isomorphic {
		result = "isomorphic"
	}
	p.ChecksTotal.WithLabelValues(method, result).Inc()
	p.CheckDurationSeconds.WithLabelValues(method).Observe(d.Seconds())
}

// OnFileStart implements BenchHooks.
func (p *Prometheus) OnFileStart(context.Context, string, int) {}

// OnFileComplete implements BenchHooks.
func (p *Prometheus) OnFileComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.FilesTotal.WithLabelValues(status).Inc()
}

// OnCacheHit implements CacheHooks.
func (p *Prometheus) OnCacheHit(_ context.Context, keyType string) {
	p.CacheOpsTotal.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements CacheHooks.
func (p *Prometheus) OnCacheMiss(_ context.Context, keyType string) {
	p.CacheOpsTotal.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements CacheHooks.
func (p *Prometheus) OnCacheSet(_ context.Context, keyType string, _ int) {
	p.CacheOpsTotal.WithLabelValues(keyType, "set").Inc()
}

// OnRequest implements HTTPHooks.
func (p *Prometheus) OnRequest(context.Context, string, string) {
	p.HTTPInFlight.Inc()
}

// OnResponse implements HTTPHooks.
func (p *Prometheus) OnResponse(_ context.Context, method, route string, statusCode int, d time.Duration) {
	p.HTTPInFlight.Dec()
	p.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	p.HTTPDurationSeconds.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ BenchHooks = (*Prometheus)(nil)
	_ CacheHooks = (*Prometheus)(nil)
	_ HTTPHooks  = (*Prometheus)(nil)
)
