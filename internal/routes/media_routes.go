package routes

import (
	"github.com/labstack/echo/v4"

	"wander/internal/handlers"
	"wander/internal/utils/logger"
)

func SetupMediaRoutes(e *echo.Echo, uploader handlers.MediaUploader, staticDir string) {
	log := logger.New("media_routes")

	h := handlers.NewMediaHandler(uploader, staticDir)

	e.POST("/upload_media", h.UploadMedia)

	log.Success("Media routes initialized successfully")
}
