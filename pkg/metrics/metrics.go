package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the dashboard's prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	storeLoadsTotal    *prometheus.CounterVec
	reportExportsTotal *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scd",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scd",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "scd",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being served.",
		},
	)
	storeLoadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scd",
			Subsystem: "store",
			Name:      "loads_total",
			Help:      "Contract store load operations by kind and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	reportExportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scd",
			Subsystem: "reports",
			Name:      "exports_total",
			Help:      "Report exports by format.",
		},
		[]string{"format"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		storeLoadsTotal,
		reportExportsTotal,
	)

	return &Metrics{
		registry:           registry,
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		requestInFlight:    requestInFlight,
		storeLoadsTotal:    storeLoadsTotal,
		reportExportsTotal: reportExportsTotal,
	}
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count, duration and in-flight gauge.
// The route template is used as the path label to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.requestInFlight.Inc()

		c.Next()

		m.requestInFlight.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}

// ObserveStoreLoad counts one store load operation.
func (m *Metrics) ObserveStoreLoad(operation, outcome string) {
	m.storeLoadsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveExport counts one report export.
func (m *Metrics) ObserveExport(format string) {
	m.reportExportsTotal.WithLabelValues(format).Inc()
}
