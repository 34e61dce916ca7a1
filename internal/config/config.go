package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBackendURL is used when the backend dictionary has no "url" entry.
const DefaultBackendURL = "https://graphql.fauna.com/graphql"

// BackendPrefix namespaces the backend dictionary ("fauna_env") in the
// environment: "key" is read from FAUNA_KEY and "url" from FAUNA_URL.
const BackendPrefix = "FAUNA_"

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Auth    AuthConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	HealthPath      string // empty disables the health endpoint
}

// BackendConfig locates the GraphQL API every product request is sent to.
type BackendConfig struct {
	URL    string
	APIKey string
}

type AuthConfig struct {
	APIKeys []string // empty disables inbound API key checks
}

type CORSConfig struct {
	AllowedOrigins []string // empty disables CORS handling
}

type LogConfig struct {
	Level      string
	File       string // empty logs to stdout
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Load reads an optional .env file (ENV_FILE, default ".env") and then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	envFile := EnvSource{}.get("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	return LoadFrom(EnvSource{})
}

// LoadFrom builds a Config from src.
func LoadFrom(src Source) (*Config, error) {
	backend := Prefixed(src, BackendPrefix)

	apiKey, ok := backend.Lookup("key")
	if !ok || apiKey == "" {
		return nil, fmt.Errorf("invalid configuration: %skey is required", BackendPrefix)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getString(src, "PORT", "8080"),
			Host:            getString(src, "HOST", "0.0.0.0"),
			ReadTimeout:     getInt(src, "READ_TIMEOUT", 15),
			WriteTimeout:    getInt(src, "WRITE_TIMEOUT", 15),
			ShutdownTimeout: getInt(src, "SHUTDOWN_TIMEOUT", 30),
			HealthPath:      getString(src, "HEALTH_PATH", ""),
		},
		Backend: BackendConfig{
			URL:    getString(backend, "url", DefaultBackendURL),
			APIKey: apiKey,
		},
		Auth: AuthConfig{
			APIKeys: getSlice(src, "INBOUND_API_KEYS", nil),
		},
		CORS: CORSConfig{
			AllowedOrigins: getSlice(src, "CORS_ALLOWED_ORIGINS", nil),
		},
		Log: LogConfig{
			Level:      getString(src, "LOG_LEVEL", "info"),
			File:       getString(src, "LOG_FILE", ""),
			MaxSizeMB:  getInt(src, "LOG_MAX_SIZE_MB", 10),
			MaxBackups: getInt(src, "LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getInt(src, "LOG_MAX_AGE_DAYS", 28),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Backend.APIKey == "" {
		return fmt.Errorf("%skey is required", BackendPrefix)
	}

	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid backend url: %q", c.Backend.URL)
	}

	if c.Server.HealthPath != "" && !strings.HasPrefix(c.Server.HealthPath, "/") {
		return fmt.Errorf("HEALTH_PATH must start with /: %q", c.Server.HealthPath)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}

	return nil
}

// Helper functions for reading values from a Source

func getString(src Source, key, defaultValue string) string {
	if value, ok := src.Lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getInt(src Source, key string, defaultValue int) int {
	valueStr := getString(src, key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getSlice(src Source, key string, defaultValue []string) []string {
	valueStr := getString(src, key, "")
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
