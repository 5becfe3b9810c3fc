// Package api wires the valuation HTTP routes onto a gin engine.
package api

import (
	"net/http"

	"equipment-valuation/internal/api/handlers"
	"equipment-valuation/internal/api/middleware"
	"equipment-valuation/internal/api/models"
	"equipment-valuation/internal/data"
	"equipment-valuation/internal/valuation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterOptions struct {
	Logger             *zap.Logger
	CORSAllowedOrigins []string
}

// NewRouter builds the HTTP routes over an already loaded store.
func NewRouter(store *data.ClassificationStore, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS(origins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	engine := valuation.New(store)
	valuationHandler := handlers.NewValuationHandler(engine, logger)
	classificationHandler := handlers.NewClassificationHandler(store)

	router.GET("/health", handlers.Health(store))

	v1 := router.Group("/v1")
	{
		v1.GET("/valuations/:classification_id", valuationHandler.GetValuation)
		v1.GET("/classifications/:classification_id", classificationHandler.GetClassification)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not found"})
	})

	return router
}
