package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration from environment.
type Config struct {
	DatabaseURL      string
	HTTPAddr         string
	CollectToken     string
	CollectSchedule  string
	FetchTimeoutSec  int
	SessionSecret    string
	BaseURL          string
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
}

// Default values when env vars are unset.
const (
	DefaultHTTPAddr        = ":8080"
	DefaultCollectSchedule = "0 5 * * *"
	DefaultFetchTimeoutSec = 30
)

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first, if present. Uses defaults for
// optional values when unset.
func Load() *Config {
	_ = godotenv.Load()
	c := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		HTTPAddr:         DefaultHTTPAddr,
		CollectToken:     os.Getenv("COLLECT_TOKEN"),
		CollectSchedule:  DefaultCollectSchedule,
		FetchTimeoutSec:  DefaultFetchTimeoutSec,
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		BaseURL:          os.Getenv("BASE_URL"),
		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v, ok := os.LookupEnv("COLLECT_SCHEDULE"); ok {
		// An explicitly empty value disables the scheduled run.
		c.CollectSchedule = v
	}
	if v := os.Getenv("FETCH_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.FetchTimeoutSec = n
		}
	}
	return c
}
