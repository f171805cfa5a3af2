package routes

import (
	"net/http"

	coreport "github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	sessionHandler *handler.SessionHandler,
	walletHandler *handler.WalletHandler,
) {
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Session routes
	sessionRoutes := router.Group("/session")
	{
		sessionRoutes.GET("", sessionHandler.Current)
		sessionRoutes.POST("/login", sessionHandler.Login)
		sessionRoutes.POST("/logout", sessionHandler.Logout)
	}

	// Dashboard for the currently logged-in user
	router.GET("/dashboard", walletHandler.Dashboard)

	// User routes
	userRoutes := router.Group("/user")
	{
		// GET /user/:userId/transactions
		userRoutes.GET("/:userId/transactions", walletHandler.ListTransactions)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
