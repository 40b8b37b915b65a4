package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// configTemplate is the commented configuration file written by InitConfigToPath.
// It is a template rather than a yaml.Marshal of GetDefaultConfig so the
// generated file can carry explanatory comments; keep it in sync with the
// Config struct and ApplyDefaults.
const configTemplate = `# finfo Configuration File
#
# Generated by 'finfod init'. Values left at their defaults may be
# omitted. Environment variables with the FINFO_ prefix override
# anything set here (e.g. FINFO_LOGGING_LEVEL=DEBUG).

logging:
  # Minimum log level: DEBUG, INFO, WARN, ERROR
  level: INFO
  # Output format: text, json
  format: text
  # Where logs are written: stdout, stderr, or a file path
  output: stdout

# Maximum time to wait for graceful shutdown
shutdown_timeout: 30s

api:
  # HTTP port for the attribute collection API
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  idle_timeout: 60s
  auth:
    # Bearer token secret (HS256), generated during init. Rotate it by
    # replacing this value or by setting FINFO_API_SECRET.
    secret: "%s"
    # Lifetime of tokens minted with 'finfod token create'
    token_duration: 168h

collector:
  # Cap on the bytes read for a single extended attribute value
  max_value_size: 4Mi
  # Absolute paths the API will collect attributes for.
  # An empty list allows any path.
  roots: []

# Distributed tracing (OTLP) is disabled by default.
# telemetry:
#   enabled: true
#   endpoint: localhost:4317

# Prometheus metrics are disabled by default.
# metrics:
#   enabled: true
#   port: 9090
`

// InitConfig creates a configuration file at the default location
// ($XDG_CONFIG_HOME/finfo/config.yaml or ~/.config/finfo/config.yaml).
//
// Returns the path of the created file. Fails if a file already exists
// unless force is true.
func InitConfig(force bool) (string, error) {
	configPath := GetDefaultConfigPath()
	if err := InitConfigToPath(configPath, force); err != nil {
		return "", err
	}
	return configPath, nil
}

// InitConfigToPath creates a configuration file at the given path,
// creating parent directories as needed. Fails if a file already exists
// unless force is true.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	secret, err := generateSecret()
	if err != nil {
		return err
	}

	content := fmt.Sprintf(configTemplate, secret)

	// 0600: the file contains the API secret
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateSecret returns a random 64-character hex string suitable as an
// HS256 signing secret.
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate API secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
