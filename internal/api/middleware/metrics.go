package middleware

import (
	"strconv"
	"time"

	"btc-energy-value/internal/observability"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency by matched route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.RecordRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
