package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"eathub.backend/internal/infrastructure/metrics"
)

// MetricsMiddleware records the request counter and latency histogram. The
// route template keeps label cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
