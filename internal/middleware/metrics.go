package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for the analysis service.
// Each instance carries its own registry so tests can run in parallel
// without collector name collisions.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	IndicatorsAnalyzed prometheus.Counter
	IndicatorsRejected prometheus.Counter
	AnomaliesDetected  prometheus.Counter
	BatchSize          prometheus.Histogram
}

// NewMetrics registers and returns the service metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "indicata_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "indicata_http_request_duration_seconds",
			Help:    "HTTP request duration by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		IndicatorsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "indicata_indicators_analyzed_total",
			Help: "Total indicators analyzed successfully",
		}),
		IndicatorsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "indicata_indicators_rejected_total",
			Help: "Total indicators rejected for violating the input contract",
		}),
		AnomaliesDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "indicata_anomalies_detected_total",
			Help: "Total anomalous points flagged across all analyses",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "indicata_batch_size",
			Help:    "Number of series per batch analysis request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.IndicatorsAnalyzed,
		m.IndicatorsRejected,
		m.AnomaliesDetected,
		m.BatchSize,
	)

	return m
}

// Middleware returns a Fiber middleware that records request counts and
// durations.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.RequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler returns the /metrics endpoint handler for this registry.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
