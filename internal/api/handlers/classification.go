package handlers

import (
	"fmt"
	"net/http"

	"equipment-valuation/internal/api/models"
	"equipment-valuation/internal/valuation"

	"github.com/gin-gonic/gin"
)

// ClassificationHandler exposes stored classification records
type ClassificationHandler struct {
	store valuation.Store
}

func NewClassificationHandler(store valuation.Store) *ClassificationHandler {
	return &ClassificationHandler{store: store}
}

// GetClassification handles GET /v1/classifications/:classification_id
func (h *ClassificationHandler) GetClassification(c *gin.Context) {
	var uri models.ClassificationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "classification_id must be an integer",
		})
		return
	}

	cls, ok := h.store.Get(uri.ClassificationID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Detail: fmt.Sprintf("Unknown classification_id=%d.", uri.ClassificationID),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewClassificationResponse(cls))
}
