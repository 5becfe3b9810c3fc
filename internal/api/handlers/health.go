package handlers

import (
	"net/http"

	"equipment-valuation/internal/api/models"

	"github.com/gin-gonic/gin"
)

// Counter reports how many classifications are loaded.
type Counter interface {
	Len() int
}

// Health handles GET /health
func Health(store Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:          "ok",
			Classifications: store.Len(),
		})
	}
}
