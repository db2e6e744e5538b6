package handlers

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"wander/internal/utils/logger"
)

// DefaultNewsletterMessage is sent when a newsletter request does not
// override the message body.
const DefaultNewsletterMessage = "Hey! 🌍 Here's your daily travel inspiration. Stay adventurous! #TravelMore"

// DirectMessenger delivers a direct message to a platform user.
type DirectMessenger interface {
	SendDirectMessage(ctx context.Context, userID, text string) error
}

type DMHandler struct {
	messenger   DirectMessenger
	autoReplies atomic.Bool
	log         *logger.Logger
}

func NewDMHandler(messenger DirectMessenger) *DMHandler {
	h := &DMHandler{
		messenger: messenger,
		log:       logger.New("dm_handler"),
	}
	h.autoReplies.Store(true)
	return h
}

type NewsletterRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message"`
}

// ManageDMNewsletter sends the travel newsletter DM to one user. A
// platform rejection is reported as a structured error payload with a
// success status; it never surfaces as a server failure.
func (h *DMHandler) ManageDMNewsletter(c echo.Context) error {
	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Message == "" {
		req.Message = DefaultNewsletterMessage
	}

	if err := h.messenger.SendDirectMessage(c.Request().Context(), req.UserID, req.Message); err != nil {
		h.log.Warn("DM to %s rejected: %v", req.UserID, err)
		return c.JSON(http.StatusOK, map[string]string{"error": err.Error()})
	}

	h.log.Success("DM sent to %s", req.UserID)
	return c.JSON(http.StatusOK, map[string]string{"message": "DM sent successfully!"})
}

type AutoRepliesRequest struct {
	Enabled *bool `json:"enabled"`
}

// ManageAutoReplies toggles the auto-reply flag, defaulting to enabled
// when the field is absent.
func (h *DMHandler) ManageAutoReplies(c echo.Context) error {
	var req AutoRepliesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	h.autoReplies.Store(enabled)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Auto-replies updated!",
		"enabled": enabled,
	})
}

// AutoRepliesEnabled reports the current auto-reply setting.
func (h *DMHandler) AutoRepliesEnabled() bool {
	return h.autoReplies.Load()
}
