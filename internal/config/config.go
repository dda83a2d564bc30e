package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// ProviderConfig holds the LLM provider credentials. Loaded once at startup
// and treated as read-only afterwards.
type ProviderConfig struct {
	Name       string
	APIKey     string
	Endpoint   string
	Model      string
	APIVersion string
	Timeout    time.Duration
}

type StorageConfig struct {
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Provider: ProviderConfig{
			Name:       getEnv("LLM_PROVIDER", "openai"),
			APIKey:     getEnv("LLM_API_KEY", ""),
			Endpoint:   getEnv("LLM_ENDPOINT", ""),
			Model:      getEnv("LLM_MODEL", "gpt-4o-mini"),
			APIVersion: getEnv("LLM_API_VERSION", ""),
			Timeout:    getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

// Validate checks the startup-time invariants. A missing API key is fatal
// before the server accepts any request.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required but not set")
	}
	switch c.Provider.Name {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q (expected openai or gemini)", c.Provider.Name)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
