package config

type Config struct {
	GeminiAPIKey       string
	SupabaseConnString string
	SupabaseJWTSecret  string
	RedisURL           string
	Environment        string
	MaxUploadBytes     int64
}
