package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the keepsake server.
// Environment variables are automatically parsed from the KEEPSAKE_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"3000"`

	// DataDir holds the flat JSON record sets (memories.json, songs.json,
	// dates.json, sessions.json, password.json).
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	// StaticDir is the front-end bundle served at /.
	StaticDir string `envconfig:"STATIC_DIR" default:"./frontend"`

	// UploadDir receives stored assets, served at /assets/uploads/.
	// Empty derives <StaticDir>/assets/uploads.
	UploadDir string `envconfig:"UPLOAD_DIR" default:""`

	// MaxUploadBytes bounds a single multipart upload.
	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"52428800"`

	// SessionTTLHours is the lifetime of a minted session token.
	SessionTTLHours int `envconfig:"SESSION_TTL_HOURS" default:"168"`
}

// ResolveDefaults derives dependent settings and validates bounds.
func (c *Config) ResolveDefaults() error {
	if c.UploadDir == "" {
		c.UploadDir = filepath.Join(c.StaticDir, "assets", "uploads")
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid MAX_UPLOAD_BYTES: %d", c.MaxUploadBytes)
	}
	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("invalid SESSION_TTL_HOURS: %d", c.SessionTTLHours)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: KEEPSAKE_HTTP_PORT, KEEPSAKE_DATA_DIR.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("KEEPSAKE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("data_dir", cfg.DataDir).
		Str("static_dir", cfg.StaticDir).
		Str("upload_dir", cfg.UploadDir).
		Int64("max_upload_bytes", cfg.MaxUploadBytes).
		Int("session_ttl_hours", cfg.SessionTTLHours).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config rooted in the given scratch directory.
func NewForTesting(dir string) *Config {
	cfg := &Config{
		Environment:     EnvTesting,
		HTTPPort:        3000,
		DataDir:         filepath.Join(dir, "data"),
		StaticDir:       filepath.Join(dir, "frontend"),
		MaxUploadBytes:  52428800,
		SessionTTLHours: 168,
	}
	_ = cfg.ResolveDefaults()
	return cfg
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
