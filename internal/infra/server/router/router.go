// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finflow/backend/internal/integration/entrypoint/controller"
	"github.com/finflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	summaryController     *controller.SummaryController
	transactionController *controller.TransactionController
	profileController     *controller.ProfileController
	insightController     *controller.InsightController
	ingestionController   *controller.IngestionController
	ingestionRateLimiter  *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	summaryController *controller.SummaryController,
	transactionController *controller.TransactionController,
	profileController *controller.ProfileController,
	insightController *controller.InsightController,
	ingestionController *controller.IngestionController,
	ingestionRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		summaryController:     summaryController,
		transactionController: transactionController,
		profileController:     profileController,
		insightController:     insightController,
		ingestionController:   ingestionController,
		ingestionRateLimiter:  ingestionRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route requires a session.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		if r.summaryController != nil {
			summary := v1.Group("/summary")
			{
				summary.GET("", r.summaryController.Get)
				summary.POST("/compute", r.summaryController.Compute)
			}
		}

		if r.transactionController != nil {
			v1.GET("/transactions", r.transactionController.List)
		}

		if r.profileController != nil {
			v1.GET("/profile", r.profileController.Get)
		}

		if r.insightController != nil {
			v1.GET("/insights", r.insightController.Get)
		}

		if r.ingestionController != nil {
			ingestion := v1.Group("/ingestion")
			{
				ingestion.POST("/statements", r.ingestionRateLimiter.Middleware(), r.ingestionController.UploadStatement)
				ingestion.POST("/forecast", r.ingestionRateLimiter.Middleware(), r.ingestionController.RequestForecast)
				ingestion.GET("/status", r.ingestionController.GetStatus)
			}
		}
	}
}

// Engine returns the Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
