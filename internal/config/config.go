// Package config manages application configuration via environment
// variables.
//
// # Environment variables
//
// ## Server
//   - SERVER_PORT: HTTP listen port (default: 8080)
//   - SEED_DEMO_DATA: load the demo announcement catalog at startup
//     (default: true; the store is in-memory and rebuilt on every restart)
//
// ## Tracing
//   - TRACING_ENABLED: enable OTLP tracing (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC collector endpoint (default: localhost:4317)
//
// ## Recommendations
//   - SEARCH_HISTORY_LIMIT: per-user search history cap (default: 20)
//
// ## Uploads
//   - UPLOAD_DIR: directory for issue report attachments (default: uploads)
//   - MAX_UPLOAD_SIZE_MB: per-file upload limit (default: 5)
//
// ## Gateway
//   - GATEWAY_BASE_URL: base URL when uploads are served through a gateway
//     (default: empty, served by this process)
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	SeedDemoData bool

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string

	// Recommendation engine configuration
	SearchHistoryLimit int

	// Upload configuration
	UploadDir       string
	MaxUploadSizeMB int

	// Gateway configuration for attachment URL wrapping
	GatewayBaseURL string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "true") == "true",

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		SearchHistoryLimit: getEnvInt("SEARCH_HISTORY_LIMIT", 20),

		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 5),

		GatewayBaseURL: getEnv("GATEWAY_BASE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
