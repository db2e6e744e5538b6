package config

import (
	"encoding/json"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Twitter  TwitterConfig
	OpenAI   OpenAIConfig
	Unsplash UnsplashConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type TwitterConfig struct {
	APIKey        string
	APISecret     string
	AccessToken   string
	AccessSecret  string
	APIBaseURL    string
	UploadBaseURL string
}

type OpenAIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

type UnsplashConfig struct {
	AccessKey string
	BaseURL   string
}

type StorageConfig struct {
	StaticDir   string
	TemplateDir string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Twitter: TwitterConfig{
			APIKey:        getEnv("API_KEY", ""),
			APISecret:     getEnv("API_SECRET", ""),
			AccessToken:   getEnv("ACCESS_TOKEN", ""),
			AccessSecret:  getEnv("ACCESS_SECRET", ""),
			APIBaseURL:    getEnv("TWITTER_API_BASE_URL", "https://api.twitter.com"),
			UploadBaseURL: getEnv("TWITTER_UPLOAD_BASE_URL", "https://upload.twitter.com"),
		},
		OpenAI: OpenAIConfig{
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			BaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvAsInt("OPENAI_MAX_TOKENS", 50),
		},
		Unsplash: UnsplashConfig{
			AccessKey: getEnv("UNSPLASH_ACCESS_KEY", ""),
			BaseURL:   getEnv("UNSPLASH_BASE_URL", "https://api.unsplash.com"),
		},
		Storage: StorageConfig{
			StaticDir:   getEnv("STATIC_DIR", "./static"),
			TemplateDir: getEnv("TEMPLATE_DIR", "./templates"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
