package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feral-file/ff-account-sync/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Operational endpoints (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Sync triggers (requires authentication)
		v1.POST("/accounts/sync", middleware.Auth(authCfg), handler.SyncAccounts)
		v1.POST("/accounts/watch", middleware.Auth(authCfg), handler.WatchAccounts)

		// Account reads (public read access)
		account := v1.Group("/accounts/:address/chains/:chain_id")
		account.GET("/transactions", handler.ListTransactions)
		account.GET("/checkpoints", handler.GetCheckpoints)
		account.GET("/tokens", handler.ListTokens)
	}
}
