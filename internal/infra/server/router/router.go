// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/duobudget/backend/internal/integration/entrypoint/controller"
	"github.com/duobudget/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	coupleController         *controller.CoupleController
	transactionController    *controller.TransactionController
	harmonizationController  *controller.HarmonizationController
	subscriptionController   *controller.SubscriptionController
	categorizationController *controller.CategorizationController
	loginRateLimiter         *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	coupleController *controller.CoupleController,
	transactionController *controller.TransactionController,
	harmonizationController *controller.HarmonizationController,
	subscriptionController *controller.SubscriptionController,
	categorizationController *controller.CategorizationController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		coupleController:         coupleController,
		transactionController:    transactionController,
		harmonizationController:  harmonizationController,
		subscriptionController:   subscriptionController,
		categorizationController: categorizationController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				if r.loginRateLimiter != nil {
					auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				} else {
					auth.POST("/login", r.authController.Login)
				}
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Couple routes (require authentication)
		if r.coupleController != nil && r.authMiddleware != nil {
			couple := v1.Group("/couple")
			couple.Use(r.authMiddleware.Authenticate())
			{
				couple.POST("", r.coupleController.Create)
				couple.GET("", r.coupleController.Get)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Balance and settlement routes (require authentication)
		if r.harmonizationController != nil && r.authMiddleware != nil {
			balance := v1.Group("/balance")
			balance.Use(r.authMiddleware.Authenticate())
			{
				balance.GET("", r.harmonizationController.GetBalance)
			}

			settlements := v1.Group("/settlements")
			settlements.Use(r.authMiddleware.Authenticate())
			{
				settlements.GET("", r.harmonizationController.ListSettlements)
				settlements.POST("", r.harmonizationController.RecordSettlement)
				settlements.DELETE("/:id", r.harmonizationController.VoidSettlement)
			}
		}

		// Recurring-charge routes (require authentication)
		if r.subscriptionController != nil && r.authMiddleware != nil {
			subscriptions := v1.Group("/subscriptions")
			subscriptions.Use(r.authMiddleware.Authenticate())
			{
				subscriptions.GET("", r.subscriptionController.GetOverview)
				subscriptions.PUT("/settings", r.subscriptionController.UpsertSetting)
			}
		}

		// AI categorization routes (require authentication)
		if r.categorizationController != nil && r.authMiddleware != nil {
			categorization := v1.Group("/categorization")
			categorization.Use(r.authMiddleware.Authenticate())
			{
				categorization.POST("/suggest", r.categorizationController.Suggest)
				categorization.GET("/suggestions", r.categorizationController.List)
				categorization.POST("/suggestions/:id/approve", r.categorizationController.Approve)
				categorization.POST("/suggestions/:id/reject", r.categorizationController.Reject)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
