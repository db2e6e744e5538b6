package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wander/internal/utils/logger"
)

// MediaUploader pushes a local file to the platform and returns its
// media ID.
type MediaUploader interface {
	UploadMedia(ctx context.Context, path string) (string, error)
}

type MediaHandler struct {
	uploader  MediaUploader
	staticDir string
	log       *logger.Logger
}

func NewMediaHandler(uploader MediaUploader, staticDir string) *MediaHandler {
	return &MediaHandler{
		uploader:  uploader,
		staticDir: staticDir,
		log:       logger.New("media_handler"),
	}
}

// UploadMedia saves the posted file under the static-assets directory,
// uploads it to the platform and returns the media ID.
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "No file provided",
		})
	}

	name := filepath.Base(file.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = uuid.NewString()
	}
	path := filepath.Join(h.staticDir, name)

	if err := h.saveFile(file, path); err != nil {
		h.log.Error("Failed to save uploaded file: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to save uploaded file",
		})
	}

	mediaID, err := h.uploader.UploadMedia(c.Request().Context(), path)
	if err != nil {
		h.log.Error("Failed to upload media: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	h.log.Success("Media uploaded successfully: %s", mediaID)
	return c.JSON(http.StatusOK, map[string]string{"media_id": mediaID})
}

func (h *MediaHandler) saveFile(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
