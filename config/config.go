package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadENV loads the environment variables from .env when GO_ENV is unset or "development".
// A missing .env file is not an error; the process environment is used as-is.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}

const (
	DefaultDatabaseURL        = "postgres://postgres:pass@db:5432/vee?sslmode=disable"
	DefaultSecretKey          = "VEE_SECRET"
	DefaultAlgorithm          = "HS256"
	DefaultTokenExpireMinutes = 30
	DefaultPort               = 8080
	DefaultBcryptCost         = 12
	DefaultAllowedOrigins     = "http://localhost:3000"
	DefaultAuditRetentionDays = 90
)

type EnvironmentVariable struct {
	GO_ENV string
	PORT   int
	// Database
	DATABASE_URL string
	// Token signing
	SECRET_KEY                  string
	ALGORITHM                   string
	ACCESS_TOKEN_EXPIRE_MINUTES int
	// Credentials
	BCRYPT_COST int
	// Redis (login brute force protection)
	REDIS_URL string
	// HTTP
	ALLOWED_ORIGINS string
	// Background jobs
	CRON_ENABLED         bool
	AUDIT_RETENTION_DAYS int
}

// Get reads the configuration from the process environment, applying defaults.
// A set but malformed number is an error rather than a silent default.
func Get() (*EnvironmentVariable, error) {
	envVariables := &EnvironmentVariable{
		GO_ENV:          os.Getenv("GO_ENV"),
		DATABASE_URL:    stringEnv("DATABASE_URL", DefaultDatabaseURL),
		SECRET_KEY:      stringEnv("SECRET_KEY", DefaultSecretKey),
		ALGORITHM:       stringEnv("ALGORITHM", DefaultAlgorithm),
		REDIS_URL:       os.Getenv("REDIS_URL"),
		ALLOWED_ORIGINS: stringEnv("ALLOWED_ORIGINS", DefaultAllowedOrigins),
		CRON_ENABLED:    os.Getenv("CRON_ENABLED") != "false", // Default to enabled
	}

	var err error
	if envVariables.PORT, err = intEnv("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if envVariables.ACCESS_TOKEN_EXPIRE_MINUTES, err = intEnv("ACCESS_TOKEN_EXPIRE_MINUTES", DefaultTokenExpireMinutes); err != nil {
		return nil, err
	}
	if envVariables.BCRYPT_COST, err = intEnv("BCRYPT_COST", DefaultBcryptCost); err != nil {
		return nil, err
	}
	if envVariables.AUDIT_RETENTION_DAYS, err = intEnv("AUDIT_RETENTION_DAYS", DefaultAuditRetentionDays); err != nil {
		return nil, err
	}

	if envVariables.ACCESS_TOKEN_EXPIRE_MINUTES <= 0 {
		return nil, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	// The audit purge cutoff is now minus this many days.
	if envVariables.AUDIT_RETENTION_DAYS <= 0 {
		return nil, errors.New("AUDIT_RETENTION_DAYS must be positive")
	}

	return envVariables, nil
}

// TokenTTL is the lifetime of issued access tokens.
func (e *EnvironmentVariable) TokenTTL() time.Duration {
	return time.Duration(e.ACCESS_TOKEN_EXPIRE_MINUTES) * time.Minute
}

func (e *EnvironmentVariable) IsProduction() bool {
	return e.GO_ENV == "production"
}

func stringEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return value, nil
}
