package routes

import (
	"github.com/labstack/echo/v4"

	"wander/internal/handlers"
	"wander/internal/utils/logger"
)

func SetupTweetRoutes(e *echo.Echo, pipeline handlers.TweetPipeline, generator handlers.TweetGenerator) {
	log := logger.New("tweet_routes")

	h := handlers.NewTweetHandler(pipeline, generator)

	e.POST("/schedule_tweet", h.ScheduleTweet)
	e.POST("/generate_ai_tweet", h.GenerateAITweet)

	log.Success("Tweet routes initialized successfully")
}
