package router

import (
	"myDiverseMarket/internal/middleware"
	"myDiverseMarket/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetDiverseRecommendationRoutes(api *echo.Group, handler *rest.DiverseRecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.POST("/diverse", handler.Recommend, middleware.OptionalAuth())
	reco.POST("/diverse/debug", handler.Debug, middleware.AuthMiddleware())
}

func SetDiversityAdminRoutes(api *echo.Group, handler *rest.DiversityAdminHandler) {
	admin := api.Group("/admin/diversity", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
	admin.GET("/analytics", handler.GetAnalytics)
}

func SetOpsRoutes(e *echo.Echo, health *rest.HealthHandler) {
	e.GET("/healthz", health.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
