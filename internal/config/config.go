package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	TelegramToken    string // TELEGRAM_BOT_TOKEN
	DataMindURL      string // DATAMIND_URL
	ImageGatewayURL  string // IMAGE_GATEWAY_URL, secondary gateway toggle
	RequestTimeout   int    // REQUEST_TIMEOUT, seconds
	LogLevel         string // LOG_LEVEL
	RedisAddr        string // REDIS_ADDR, empty = in-memory cache
	CacheTTLHours    int    // CACHE_TTL_HOURS
	PublicURL        string // PUBLIC_URL, webhook base + keep-alive target
	WebhookSecret    string // WEBHOOK_SECRET, inbound auth token
	KeepaliveMinutes int    // KEEPALIVE_MINUTES, 0 disables the pinger
	Port             int    // PORT
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := Config{
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		DataMindURL:      os.Getenv("DATAMIND_URL"),
		ImageGatewayURL:  os.Getenv("IMAGE_GATEWAY_URL"),
		RequestTimeout:   getEnvIntWithDefault("REQUEST_TIMEOUT", 15),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		CacheTTLHours:    getEnvIntWithDefault("CACHE_TTL_HOURS", 24),
		PublicURL:        os.Getenv("PUBLIC_URL"),
		WebhookSecret:    os.Getenv("WEBHOOK_SECRET"),
		KeepaliveMinutes: getEnvIntWithDefault("KEEPALIVE_MINUTES", 0),
		Port:             getEnvIntWithDefault("PORT", 10000),
	}

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
