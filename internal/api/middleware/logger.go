package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request trace id.
const RequestIDHeader = "X-Request-ID"

// Logger writes a start and completion entry for every request, tagged with a
// trace id taken from X-Request-ID or generated.
func Logger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader(RequestIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set("traceid", traceID)
		c.Header(RequestIDHeader, traceID)

		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		log.Infow("request started", "traceid", traceID, "method", c.Request.Method, "path", path,
			"remoteaddr", c.ClientIP())

		c.Next()

		log.Infow("request completed", "traceid", traceID, "method", c.Request.Method, "path", path,
			"remoteaddr", c.ClientIP(), "statuscode", c.Writer.Status(), "since", time.Since(start))
	}
}
