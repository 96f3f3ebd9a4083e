package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/hisabapp/hisab/internal/core/services"
	"github.com/hisabapp/hisab/internal/middleware"
	"github.com/hisabapp/hisab/internal/platform/config"
)

// RegisterHandlers mounts every route. The auth group is public; everything
// under /api/v1 requires the application JWT.
func RegisterHandlers(r *gin.Engine, cfg *config.Config, svcs *services.ServiceContainer) {
	r.GET("/healthz", healthCheck)

	authGroup := r.Group("/auth")
	registerAuthRoutes(authGroup, svcs.GoogleOAuth, svcs.Token)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		registerSessionRoute(api)
		registerMemberRoutes(api, svcs.Members, svcs.Refresher)
		registerLoanRoutes(api, svcs.Loans, svcs.Refresher)
		registerAccountRoutes(api, svcs.Accounts, svcs.Refresher)
		registerCategoryRoutes(api, svcs.Categories, svcs.Refresher)
		registerTransactionRoutes(api, svcs.Transactions, svcs.Refresher)
		registerStatisticsRoutes(api, svcs.Statistics, svcs.Refresher)
		registerRefreshRoute(api, svcs.Refresher)
	}
}
