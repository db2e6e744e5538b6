package handlers

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"wander/internal/analytics"
	"wander/internal/models"
	"wander/internal/storage"
	"wander/internal/utils/logger"
)

// TimelineFetchCount is how many recent tweets the analytics and backup
// endpoints pull from the platform.
const TimelineFetchCount = 100

// TimelineFetcher reads the authenticated account's recent tweets.
type TimelineFetcher interface {
	UserTimeline(ctx context.Context, count int) ([]models.Tweet, error)
}

type AnalyticsHandler struct {
	timeline  TimelineFetcher
	staticDir string
	log       *logger.Logger
}

func NewAnalyticsHandler(timeline TimelineFetcher, staticDir string) *AnalyticsHandler {
	return &AnalyticsHandler{
		timeline:  timeline,
		staticDir: staticDir,
		log:       logger.New("analytics_handler"),
	}
}

// Dashboard renders the landing page.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard.html", nil)
}

// Analytics rebuilds the engagement chart from the recent timeline and
// renders the page embedding it. The chart file is regenerated on every
// call, replacing any prior render.
func (h *AnalyticsHandler) Analytics(c echo.Context) error {
	tweets, err := h.timeline.UserTimeline(c.Request().Context(), TimelineFetchCount)
	if err != nil {
		h.log.Error("Failed to fetch timeline: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	chartPath := filepath.Join(h.staticDir, analytics.ChartFileName)
	if err := analytics.BuildChart(tweets, chartPath); err != nil {
		h.log.Error("Failed to build chart: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to build analytics chart",
		})
	}

	return c.Render(http.StatusOK, "analytics.html", map[string]interface{}{
		"ChartURL": "/static/" + analytics.ChartFileName,
	})
}

// BackupTweets writes the recent timeline to the backup CSV and returns
// its public URL.
func (h *AnalyticsHandler) BackupTweets(c echo.Context) error {
	tweets, err := h.timeline.UserTimeline(c.Request().Context(), TimelineFetchCount)
	if err != nil {
		h.log.Error("Failed to fetch timeline: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	backupPath := filepath.Join(h.staticDir, storage.BackupFileName)
	if err := storage.WriteBackup(tweets, backupPath); err != nil {
		h.log.Error("Failed to write backup: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to write backup file",
		})
	}

	h.log.Success("Backed up %d tweets", len(tweets))
	return c.JSON(http.StatusOK, map[string]string{
		"message":    "Tweets backed up successfully!",
		"backup_url": "/static/" + storage.BackupFileName,
	})
}
