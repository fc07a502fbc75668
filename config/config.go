package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	SupabaseUrl       string
	SupabaseJWTSecret string
	FrontendURL       string
	// Deadline applied to every request. Mirrors the frontend's 7s
	// request timeout so neither side waits on the other forever.
	RequestTimeout time.Duration
	// S3-compatible storage for resumes
	StorageAccessKeyID     string
	StorageSecretAccessKey string
	StorageRegion          string
	StorageEndpoint        string
	StorageBucket          string
	StoragePublicBaseURL   string
	// Redis (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Trailing slashes cause double-slash URLs downstream
		SupabaseUrl:       strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", ""),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		RequestTimeout:    time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 7)) * time.Second,

		StorageAccessKeyID:     getEnv("STORAGE_ACCESS_KEY_ID", ""),
		StorageSecretAccessKey: getEnv("STORAGE_SECRET_ACCESS_KEY", ""),
		StorageRegion:          getEnv("STORAGE_REGION", "us-east-1"),
		StorageEndpoint:        getEnv("STORAGE_ENDPOINT", ""),
		StorageBucket:          getEnv("STORAGE_BUCKET", "resumes"),
		StoragePublicBaseURL:   strings.TrimRight(getEnv("STORAGE_PUBLIC_BASE_URL", ""), "/"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
