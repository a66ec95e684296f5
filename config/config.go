package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	switch GetEnvWithDefault("APP_ENV", "development") {
	case "production":
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.DebugLevel)
	}
}

// Config holds all configuration for the application, loaded from
// environment variables (a .env file is honored outside production).
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration: DatabaseURL wins when set, otherwise the
	// discrete DB_* fields are assembled into a DSN.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Optional Redis, used for rate limiting the caption endpoint.
	RedisURL string

	// Caption service configuration
	CaptionAPIURL string
	CaptionAPIKey string

	// S3 recipe image storage (optional)
	S3Bucket  string
	AWSRegion string

	// Origin allowed by CORS
	FrontendOrigin string
}

// LoadConfig reads configuration from the environment and validates it.
func LoadConfig() (*Config, error) {
	if GetEnvWithDefault("APP_ENV", "development") != "production" {
		if err := godotenv.Load(); err == nil {
			log.Debug("loaded configuration overrides from .env")
		}
	}

	cfg := &Config{
		ServerPort:     GetEnvWithDefault("PORT", "8080"),
		ServerHost:     GetEnvWithDefault("SERVER_HOST", "0.0.0.0"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         GetEnvWithDefault("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSSLMode:      GetEnvWithDefault("DB_SSL_MODE", "disable"),
		RedisURL:       os.Getenv("REDIS_URL"),
		CaptionAPIURL:  os.Getenv("CAPTION_API_URL"),
		CaptionAPIKey:  os.Getenv("CAPTION_API_KEY"),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:      os.Getenv("AWS_REGION"),
		FrontendOrigin: GetEnvWithDefault("FRONTEND_ORIGIN", "http://localhost:5173"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.WithField("config", cfg.String()).Debug("configuration loaded")
	return cfg, nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Validate checks that a working store connection can be built and the
// port is numeric.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" && (c.DBName == "" || c.DBUser == "") {
		return fmt.Errorf("either DATABASE_URL or DB_NAME and DB_USER must be set")
	}
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.ServerPort)
	}
	return nil
}

// String returns the config with credentials masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, Host: %s, DatabaseURL: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], RedisURL: %s, CaptionAPIURL: %s, CaptionAPIKey: [REDACTED], S3Bucket: %s, FrontendOrigin: %s}",
		c.ServerPort, c.ServerHost, maskDatabaseURL(c.DatabaseURL), c.DBHost, c.DBName, c.DBUser,
		maskDatabaseURL(c.RedisURL), c.CaptionAPIURL, c.S3Bucket, c.FrontendOrigin)
}

// maskDatabaseURL masks the password in a connection URL.
func maskDatabaseURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "REDACTED")
	}
	return u.String()
}

// GetEnvWithDefault returns the env var value or fallback when unset.
func GetEnvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
