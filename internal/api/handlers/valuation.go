package handlers

import (
	"net/http"

	"equipment-valuation/internal/api/models"
	"equipment-valuation/internal/model"
	"equipment-valuation/internal/valuation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Valuer computes a valuation; *valuation.Engine satisfies it.
type Valuer interface {
	Compute(classificationID, modelYear int) (*model.ValuationResult, error)
}

// ValuationHandler handles valuation requests
type ValuationHandler struct {
	valuer Valuer
	logger *zap.Logger
}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler(valuer Valuer, logger *zap.Logger) *ValuationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValuationHandler{valuer: valuer, logger: logger}
}

// GetValuation handles GET /v1/valuations/:classification_id?year=YYYY
func (h *ValuationHandler) GetValuation(c *gin.Context) {
	var uri models.ValuationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "classification_id must be an integer",
		})
		return
	}

	var query models.ValuationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "year query parameter is required and must be an integer",
		})
		return
	}

	result, err := h.valuer.Compute(uri.ClassificationID, *query.Year)
	if err != nil {
		status := statusForValuationError(err)
		// Expected outcomes of bad input, not faults.
		h.logger.Debug("valuation rejected",
			zap.Int("classification_id", uri.ClassificationID),
			zap.Int("model_year", *query.Year),
			zap.Int("status", status),
			zap.Error(err),
		)
		c.JSON(status, models.ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewValuationResponse(result))
}

func statusForValuationError(err error) int {
	switch valuation.KindOf(err) {
	case valuation.KindYearOutOfRange:
		return http.StatusBadRequest
	case valuation.KindUnknownClassification:
		return http.StatusNotFound
	case valuation.KindMissingRatio:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
