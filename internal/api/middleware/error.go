package middleware

import (
	"net/http"

	"equipment-valuation/internal/api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler middleware recovers panics into a 500 with a detail body.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic while handling request",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		if msg, ok := recovered.(string); ok {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: msg})
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "An unexpected error occurred"})
		}
		c.Abort()
	})
}
