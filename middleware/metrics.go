package middleware

import (
	"strconv"
	"time"

	"k8s-hello/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per registered route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = metrics.UnmatchedRoute
		}
		method := c.Request.Method

		metrics.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
