package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	ServiceName string
	DBUrl       string
	FrontendURL string
	LogLevel    string
	// Catalog (facets, form schema, dashboard content); empty uses the embedded default
	CatalogPath string
	// Apply per-field format rules on top of presence checks
	FormStrictValidation bool
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitFormThreshold   int
	// Reject form submissions with 503 when the Redis counter is unreachable
	RateLimitFormFailClosed bool
	// Redis read-through cache for Postgres listings; 0 disables it
	ListingCacheTTLSeconds int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; a missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		ServiceName: getEnv("SERVICE_NAME", "access-hire-api"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		// Strip trailing slash so CORS origin comparison is exact
		FrontendURL:          strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:             strings.ToLower(getEnv("LOG_LEVEL", "debug")),
		CatalogPath:          getEnv("CATALOG_PATH", ""),
		FormStrictValidation: getEnvBool("FORM_STRICT_VALIDATION", false),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		RateLimitFormThreshold:   getEnvInt("RATE_LIMIT_FORM_THRESHOLD", 30),    // 30 form submissions per window
		RateLimitFormFailClosed:  getEnvBool("RATE_LIMIT_FORM_FAIL_CLOSED", false),
		ListingCacheTTLSeconds:   getEnvInt("LISTING_CACHE_TTL_SECONDS", 300),
	}

	if cfg.DBUrl == "" {
		log.Println("INFO: DATABASE_URL not set. Listings are served from the catalog seed.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
