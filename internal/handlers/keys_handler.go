package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wander/internal/credentials"
	"wander/internal/utils/logger"
)

type KeysHandler struct {
	store *credentials.Store
	log   *logger.Logger
}

func NewKeysHandler(store *credentials.Store) *KeysHandler {
	return &KeysHandler{
		store: store,
		log:   logger.New("keys_handler"),
	}
}

// UpdateAPIKeys overwrites stored credentials with the supplied values.
// Unrecognized names are ignored; the next outbound call picks up the
// new values.
func (h *KeysHandler) UpdateAPIKeys(c echo.Context) error {
	var req map[string]string
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	for name, value := range req {
		if !credentials.IsRecognized(name) {
			h.log.Warn("Ignoring unrecognized credential name: %s", name)
			continue
		}
		h.store.Set(name, value)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "API keys updated successfully!",
	})
}
