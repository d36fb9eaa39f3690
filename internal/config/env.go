package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultMaxUploadMB = 5

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	supabaseConnStr := os.Getenv("SUPABASE_CONNECTION_STRING")
	jwtSecret := os.Getenv("SUPABASE_JWT_SECRET")
	redisURL := os.Getenv("REDIS_URL")
	environment := os.Getenv("ENVIRONMENT")

	if geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	if supabaseConnStr == "" {
		return nil, fmt.Errorf("SUPABASE_CONNECTION_STRING environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("SUPABASE_JWT_SECRET environment variable is required")
	}

	// REDIS_URL is optional: without it usage records live in process memory
	// and reset on restart, which is acceptable for single-instance deploys

	maxUploadMB := defaultMaxUploadMB

	if raw := os.Getenv("MAX_UPLOAD_MB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("MAX_UPLOAD_MB must be a positive integer, got %q", raw)
		}
		maxUploadMB = parsed
	}

	return &Config{
		GeminiAPIKey:       geminiKey,
		SupabaseConnString: supabaseConnStr,
		SupabaseJWTSecret:  jwtSecret,
		RedisURL:           redisURL,
		Environment:        environment,
		MaxUploadBytes:     int64(maxUploadMB) * 1024 * 1024,
	}, nil
}
