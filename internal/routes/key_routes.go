package routes

import (
	"github.com/labstack/echo/v4"

	"wander/internal/credentials"
	"wander/internal/handlers"
	"wander/internal/utils/logger"
)

func SetupKeyRoutes(e *echo.Echo, store *credentials.Store) {
	log := logger.New("key_routes")

	h := handlers.NewKeysHandler(store)

	e.POST("/api_keys", h.UpdateAPIKeys)

	log.Success("Key routes initialized successfully")
}
