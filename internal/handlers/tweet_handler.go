package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"wander/internal/services"
	"wander/internal/utils/logger"
)

// DefaultImageQuery is used when a scheduled tweet carries no
// image_query of its own.
const DefaultImageQuery = "travel"

// TweetPipeline runs the full scheduled-post flow.
type TweetPipeline interface {
	Run(ctx context.Context, text, imageQuery string) (string, error)
}

// TweetGenerator produces tweet text from a prompt.
type TweetGenerator interface {
	GenerateTweet(ctx context.Context, prompt string) (string, error)
}

type TweetHandler struct {
	pipeline  TweetPipeline
	generator TweetGenerator
	log       *logger.Logger
}

func NewTweetHandler(pipeline TweetPipeline, generator TweetGenerator) *TweetHandler {
	return &TweetHandler{
		pipeline:  pipeline,
		generator: generator,
		log:       logger.New("tweet_handler"),
	}
}

type ScheduleTweetRequest struct {
	Text       string `json:"text" validate:"required"`
	ImageQuery string `json:"image_query"`
}

// ScheduleTweet posts a tweet, attaching an image found for the query
// when the image service returns one.
func (h *TweetHandler) ScheduleTweet(c echo.Context) error {
	var req ScheduleTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.ImageQuery == "" {
		req.ImageQuery = DefaultImageQuery
	}

	tweetID, err := h.pipeline.Run(c.Request().Context(), req.Text, req.ImageQuery)
	if err != nil {
		var stageErr *services.PipelineError
		if errors.As(err, &stageErr) {
			h.log.Error("Scheduled tweet failed at %s: %v", stageErr.Stage, stageErr.Err)
			return c.JSON(http.StatusBadGateway, map[string]string{
				"error": stageErr.Err.Error(),
				"stage": stageErr.Stage,
			})
		}
		h.log.Error("Scheduled tweet failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	h.log.Success("Scheduled tweet posted: %s", tweetID)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Scheduled Tweet posted successfully!",
	})
}

type GenerateTweetRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateAITweet returns generated tweet text for the prompt, falling
// back to the default travel prompt when none is supplied.
func (h *TweetHandler) GenerateAITweet(c echo.Context) error {
	var req GenerateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	tweet, err := h.generator.GenerateTweet(c.Request().Context(), req.Prompt)
	if err != nil {
		h.log.Error("Tweet generation failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"tweet": tweet})
}
