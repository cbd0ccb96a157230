// Package metrics exposes Prometheus counters for the agent and its control
// surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "judgmentroutingbot"

// Action outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeDuplicate = "duplicate"
	OutcomeThrottled = "throttled"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)

// Metrics owns a private registry so that several instances (one per test)
// never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	postsEvaluated  *prometheus.CounterVec
	decisions       *prometheus.CounterVec
	actions         *prometheus.CounterVec
	cycles          *prometheus.CounterVec
	cycleDuration   prometheus.Histogram
	heartbeats      *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	lastCycleFinish prometheus.Gauge
}

// New creates and registers every collector
func New(version string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.postsEvaluated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_evaluated_total",
		Help:      "Posts run through the classifier, by source",
	}, []string{"source"})

	m.decisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decisions_total",
		Help:      "Engagement decisions, by winning rule",
	}, []string{"rule"})

	m.actions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Platform actions attempted, by action and outcome",
	}, []string{"action", "outcome"})

	m.cycles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cycles_total",
		Help:      "Completed interaction cycles, by result",
	}, []string{"result"})

	m.cycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cycle_duration_seconds",
		Help:      "Wall time of an interaction cycle",
		Buckets:   []float64{1, 5, 10, 20, 30, 60, 120, 300},
	})

	m.heartbeats = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "heartbeats_total",
		Help:      "Heartbeat document fetches, by result",
	}, []string{"result"})

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "endpoint", "status"})

	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	m.lastCycleFinish = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_cycle_timestamp_seconds",
		Help:      "Unix time the last cycle finished",
	})

	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "build_info",
		Help:      "Build information",
	}, []string{"version"})
	info.WithLabelValues(version).Set(1)

	m.registry.MustRegister(
		m.postsEvaluated,
		m.decisions,
		m.actions,
		m.cycles,
		m.cycleDuration,
		m.heartbeats,
		m.httpRequests,
		m.httpDuration,
		m.lastCycleFinish,
		info,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing these metrics
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// PostEvaluated counts a classified post
func (m *Metrics) PostEvaluated(source string) {
	m.postsEvaluated.WithLabelValues(source).Inc()
}

// Decision counts the rule that decided a post
func (m *Metrics) Decision(rule string) {
	m.decisions.WithLabelValues(rule).Inc()
}

// Action counts a platform action outcome
func (m *Metrics) Action(action, outcome string) {
	m.actions.WithLabelValues(action, outcome).Inc()
}

// CycleFinished records a cycle's duration and result
func (m *Metrics) CycleFinished(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.cycles.WithLabelValues(result).Inc()
	m.cycleDuration.Observe(d.Seconds())
	m.lastCycleFinish.SetToCurrentTime()
}

// Heartbeat counts a heartbeat fetch
func (m *Metrics) Heartbeat(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.heartbeats.WithLabelValues(result).Inc()
}

// Middleware returns gin middleware that collects HTTP metrics
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.httpRequests.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the Prometheus scrape handler
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
