package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/internal/logging"
	"github.com/Bhavuk-Devex/AVO/internal/metrics"
)

// Logging writes one access log entry per request and records its latency
func Logging(logger *logging.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		m.ObserveRequest(c.Request.Method, route, status, elapsed)

		if logger == nil {
			return
		}
		logger.InfoFields(c.Request.Context(), "request.complete", map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": elapsed.Milliseconds(),
			"client_ip":   c.ClientIP(),
		})
	}
}
