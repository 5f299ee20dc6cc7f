package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/innercircle/lessons-api/internal/infrastructure/metrics"
)

// RequestMetrics counts every processed request by method, matched route and
// status code.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
