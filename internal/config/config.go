package config

import (
	"os"
	"strconv"
)

// SimulationConfig controls how closely the service imitates a remote backend.
type SimulationConfig struct {
	// LatencyScale multiplies every simulated delay; 0 disables them.
	LatencyScale float64
	SeedEnabled  bool
	// SeedFile overrides the embedded fixtures when set.
	SeedFile string
}

// UploadConfig holds the limits enforced before an upload reaches the service.
type UploadConfig struct {
	MaxBytes int64
}

// MinIOConfig holds object storage settings for MinIO.
// An empty Endpoint keeps uploads in process memory.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RateLimitConfig configures the Redis fixed-window limiter guarding generation routes.
// An empty RedisAddr disables limiting.
type RateLimitConfig struct {
	RedisAddr     string
	RedisPassword string
	Prefix        string
	Requests      int
	WindowSec     int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost    string
	Port       string
	LogLevel   string
	OwnerID    int64
	Simulation SimulationConfig
	Upload     UploadConfig
	MinIO      MinIOConfig
	RateLimit  RateLimitConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		OwnerID:  getEnvInt64("OWNER_ID", 1),
		Simulation: SimulationConfig{
			LatencyScale: getEnvFloat("LATENCY_SCALE", 1.0),
			SeedEnabled:  getEnvBool("SEED_ENABLED", true),
			SeedFile:     getEnv("SEED_FILE", ""),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvInt64("UPLOAD_MAX_BYTES", 10*1024*1024),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		RateLimit: RateLimitConfig{
			RedisAddr:     getEnv("RATE_LIMIT_REDIS_ADDR", ""),
			RedisPassword: getEnv("RATE_LIMIT_REDIS_PASSWORD", ""),
			Prefix:        getEnv("RATE_LIMIT_PREFIX", "studyaid:ratelimit"),
			Requests:      getEnvInt("RATE_LIMIT_REQUESTS", 30),
			WindowSec:     getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && f >= 0 {
			return f
		}
	}
	return def
}
