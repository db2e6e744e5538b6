package routes

import (
	"github.com/labstack/echo/v4"

	"wander/internal/handlers"
	"wander/internal/utils/logger"
)

func SetupDMRoutes(e *echo.Echo, messenger handlers.DirectMessenger) {
	log := logger.New("dm_routes")

	h := handlers.NewDMHandler(messenger)

	e.POST("/manage_dm_newsletter", h.ManageDMNewsletter)
	e.POST("/manage_auto_replies", h.ManageAutoReplies)

	log.Success("DM routes initialized successfully")
}
