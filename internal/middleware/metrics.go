package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"users-api/internal/observability"
)

const metricsPath = "/metrics"

// Metrics records count and latency per matched route. Scrapes of the
// metrics endpoint itself are not recorded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == metricsPath {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		observability.RecordHTTPRequest(
			c.Request.Method,
			route,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
