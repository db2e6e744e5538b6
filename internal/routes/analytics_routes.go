package routes

import (
	"github.com/labstack/echo/v4"

	"wander/internal/handlers"
	"wander/internal/utils/logger"
)

func SetupAnalyticsRoutes(e *echo.Echo, timeline handlers.TimelineFetcher, staticDir string) {
	log := logger.New("analytics_routes")

	h := handlers.NewAnalyticsHandler(timeline, staticDir)

	e.GET("/", h.Dashboard)
	e.GET("/analytics", h.Analytics)
	e.GET("/backup_tweets", h.BackupTweets)

	log.Success("Analytics routes initialized successfully")
}
