package middleware

import (
	"fmt"
	"net/http"

	"btc-energy-value/internal/api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler recovers from panics in handlers, logs them and answers with
// the INTERNAL_ERROR envelope.
func ErrorHandler(log *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorw("panic", "method", c.Request.Method, "path", c.Request.URL.Path, "ERROR", fmt.Sprint(recovered))

		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}
