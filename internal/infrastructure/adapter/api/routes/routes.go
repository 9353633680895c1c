package routes

import (
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Import      *handler.ImportHandler
	Batch       *handler.BatchHandler
	Transaction *handler.TransactionHandler
	Dedup       *handler.DedupHandler
	Health      *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Check)

	importRoutes := router.Group("/imports")
	{
		// POST /imports/preview parses without persisting
		importRoutes.POST("/preview", h.Import.Preview)

		// POST /imports parses, commits and deduplicates
		importRoutes.POST("", h.Import.Import)

		// POST /imports/commit persists client-reviewed drafts
		importRoutes.POST("/commit", h.Import.Commit)
	}

	batchRoutes := router.Group("/batches")
	{
		batchRoutes.GET("", h.Batch.List)
		batchRoutes.GET("/:id", h.Batch.Get)
		batchRoutes.DELETE("/:id", h.Batch.Delete)
	}

	router.GET("/transactions", h.Transaction.List)
	router.POST("/dedup", h.Dedup.Run)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Request id first so every later middleware can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
