package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/greenops/ecocycle/pkg/metrics"
)

// Metrics records request counts and latency per route.
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
