package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	DatabaseSchema   string

	// Event sink
	KafkaBroker string
	KafkaTopic  string

	// Shared cache for submission windows and alerts, empty keeps them in process
	RedisAddr string

	// Integrity engine
	AlertCapacity     int
	RapidWindow       time.Duration
	RapidThreshold    int
	CompletionWorkers int

	// Other
	HTTPPort  string
	LogLevel  string
	LogFormat string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),
		DatabaseSchema:   getEnvWithDefault("DATABASE_SCHEMA", "scorecard"),

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnvWithDefault("KAFKA_TOPIC", "tournament-events"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		AlertCapacity:     getEnvAsInt("ALERT_CAPACITY", 500),
		RapidWindow:       time.Duration(getEnvAsInt("RAPID_WINDOW_SECONDS", 120)) * time.Second,
		RapidThreshold:    getEnvAsInt("RAPID_THRESHOLD", 3),
		CompletionWorkers: getEnvAsInt("COMPLETION_WORKERS", 4),

		HTTPPort:  getEnvWithDefault("HTTP_PORT", "8000"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvWithDefault("LOG_FORMAT", "text"),
	}
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
// getEnv falls back to developmentDefault outside production and panics when the key is missing in production.
func getEnv(key string, developmentDefault string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	if IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return developmentDefault
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}
