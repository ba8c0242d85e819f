package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/userhub/user-service/pkg/metrics"
)

// Metrics records request counts and latency per route. The route label uses
// the matched pattern (e.g. /api/users/:id), not the raw path, to keep
// cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
