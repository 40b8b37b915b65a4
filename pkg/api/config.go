package api

import (
	"os"
	"time"

	"github.com/marmos91/finfo/internal/logger"
)

// EnvAPISecret is the name of the environment variable for the API's bearer-token signing secret.
const EnvAPISecret = "FINFO_API_SECRET"

// APIConfig configures the REST API HTTP server.
//
// The API server exposes health check endpoints and the remote attribute
// collection endpoint. Authentication is optional: when no token secret is
// configured the /api/v1 routes are served unauthenticated.
type APIConfig struct {
	// Enabled controls whether the API server is started.
	// Default: true (API is enabled by default)
	// Use a pointer to distinguish "not set" from "explicitly false"
	Enabled *bool `mapstructure:"enabled" yaml:"enabled"`

	// Port is the HTTP port for the API endpoints.
	// Default: 8080
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means there is no timeout.
	// Default: 10s
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	// A zero or negative value means there is no timeout.
	// Default: 10s
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled. If zero, the value of ReadTimeout is used.
	// Default: 60s
	IdleTimeout time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`

	// Auth configures bearer-token authentication for API endpoints.
	Auth AuthConfig `mapstructure:"auth" yaml:"auth"`
}

// AuthConfig configures bearer-token generation and validation.
type AuthConfig struct {
	// Secret is the HMAC signing key for API tokens.
	// Must be at least 32 characters long when set.
	// Can also be set via the FINFO_API_SECRET environment variable.
	// Environment variable takes precedence over config file.
	// When empty, the API serves requests without authentication.
	Secret string `mapstructure:"secret" yaml:"secret"`

	// TokenDuration is the lifetime of tokens minted with `finfod token create`.
	// Default: 168h (7 days)
	TokenDuration time.Duration `mapstructure:"token_duration" yaml:"token_duration"`
}

// IsEnabled returns whether the API server is enabled.
// Defaults to true if not explicitly set.
func (c *APIConfig) IsEnabled() bool {
	if c.Enabled == nil {
		return true // Default: enabled
	}
	return *c.Enabled
}

// applyDefaults fills in zero values with sensible defaults.
func (c *APIConfig) applyDefaults() {
	if c.Port <= 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.Auth.TokenDuration == 0 {
		c.Auth.TokenDuration = 7 * 24 * time.Hour
	}
}

// GetSecret returns the token secret, preferring the environment variable.
// Returns empty string if neither env var nor config secret is set.
// Logs a warning if the environment variable overrides a config file value.
func (c *APIConfig) GetSecret() string {
	envSecret := os.Getenv(EnvAPISecret)
	if envSecret != "" {
		if c.Auth.Secret != "" && c.Auth.Secret != envSecret {
			logger.Warn("API token secret from environment variable overrides config file value",
				"env_var", EnvAPISecret)
		}
		return envSecret
	}
	return c.Auth.Secret
}

// HasSecret returns whether a token secret is configured.
func (c *APIConfig) HasSecret() bool {
	return c.GetSecret() != ""
}
