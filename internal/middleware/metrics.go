package middleware

import (
	"fmt"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records a request counter and latency histogram per
// route, method and status code.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.GetOrCreateCounter(fmt.Sprintf(`http_requests_total{path=%q, method=%q, status="%d"}`, path, c.Request.Method, c.Writer.Status())).Inc()
		metrics.GetOrCreateHistogram(fmt.Sprintf(`http_requests_latency{path=%q, method=%q, status="%d"}`, path, c.Request.Method, c.Writer.Status())).UpdateDuration(start)
	}
}

// MetricsHandler exposes collected metrics in Prometheus text format.
func MetricsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		metrics.WritePrometheus(c.Writer, true)
	}
}
