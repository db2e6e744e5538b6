package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wander/internal/api"
	"wander/internal/config"
	"wander/internal/credentials"
	"wander/internal/utils/logger"
)

func main() {
	logger := logger.New("wander")

	// check if .env file exists
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		logger.Info("No .env file found, skipping environment variable loading")
	} else {
		logger.Info("Loading environment variables from .env file")
		if err := godotenv.Load(); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Seed the credential store from the environment-sourced config;
	// /api_keys can overwrite any of these at runtime.
	store := credentials.NewStore(map[string]string{
		credentials.TwitterAPIKey:      cfg.Twitter.APIKey,
		credentials.TwitterAPISecret:   cfg.Twitter.APISecret,
		credentials.TwitterAccessToken: cfg.Twitter.AccessToken,
		credentials.TwitterTokenSecret: cfg.Twitter.AccessSecret,
		credentials.OpenAIAPIKey:       cfg.OpenAI.APIKey,
		credentials.UnsplashAccessKey:  cfg.Unsplash.AccessKey,
	})

	// Initialize API server
	apiServer, err := api.NewServer(cfg, store)
	if err != nil {
		log.Fatalf("Failed to initialize API server: %v", err)
	}

	go func() {
		logger.Success("API server started")
		if err := apiServer.Start(); err != nil {
			logger.Error("API server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Create a deadline for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown API server: %v", err)
	}

	logger.Info("Server shutdown gracefully")
}
