package config

import (
	"os"
	"time"
)

type Config struct {
	AppName     string
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	// Token configuration
	AccessTokenSecret string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	// Object storage (S3-compatible) configuration
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	// Fallback image assigned to folders created without one
	DefaultImageURL string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		AppName:     getEnv("APP_NAME", "litmark"),
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		AccessTokenTTL:    getDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:   getDuration("REFRESH_TOKEN_TTL", 720*time.Hour),

		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", "litmark"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),

		DefaultImageURL: getEnv("DEFAULT_IMAGE_URL", "https://static.litmark.app/default-folder.png"),

		// Debug defaults to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
