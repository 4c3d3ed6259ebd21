package middleware

import (
	"strconv"
	"time"

	"tapadmin/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records per-request Prometheus counters and latency.
type MetricsMiddleware struct {
	registry *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware.
func NewMetricsMiddleware(registry *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{registry: registry}
}

// Handle observes the request after the handler chain finishes. The route
// template (not the raw URI) labels the series to keep cardinality bounded.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		method := c.Request().Method
		m.registry.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
		m.registry.HTTPLatency.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}
