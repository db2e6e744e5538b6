package api

import (
	"wander/internal/credentials"
	"wander/internal/routes"
	"wander/internal/services"
)

func (s *Server) registerRoutes(store *credentials.Store) {
	twitter := services.NewTwitterClient(
		s.config.Twitter.APIBaseURL,
		s.config.Twitter.UploadBaseURL,
		store,
	)
	unsplash := services.NewUnsplashClient(s.config.Unsplash.BaseURL, store)
	openai := services.NewOpenAIClient(
		s.config.OpenAI.BaseURL,
		s.config.OpenAI.Model,
		s.config.OpenAI.MaxTokens,
		store,
	)
	pipeline := services.NewPostPipeline(unsplash, twitter, s.config.Storage.StaticDir)

	// Health check
	s.echo.GET("/health", s.healthCheck)

	routes.SetupAnalyticsRoutes(s.echo, twitter, s.config.Storage.StaticDir)
	routes.SetupTweetRoutes(s.echo, pipeline, openai)
	routes.SetupMediaRoutes(s.echo, twitter, s.config.Storage.StaticDir)
	routes.SetupDMRoutes(s.echo, twitter)
	routes.SetupKeyRoutes(s.echo, store)
}
