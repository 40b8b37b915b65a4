package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration for errors.
//
// Struct tag validation (via go-playground/validator) covers individual
// field constraints. Cross-field rules that tags cannot express are
// checked explicitly afterwards.
//
// Validate does not modify the configuration. Normalization (such as
// uppercasing the log level) happens in ApplyDefaults.
func Validate(cfg *Config) error {
	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		return err
	}

	// Cross-field rules that struct tags cannot express
	if err := validateTelemetry(&cfg.Telemetry); err != nil {
		return err
	}
	if err := validateCollector(&cfg.Collector); err != nil {
		return err
	}

	return nil
}

// validateTelemetry checks telemetry cross-field constraints.
func validateTelemetry(cfg *TelemetryConfig) error {
	if cfg.Enabled && cfg.Endpoint == "" {
		return fmt.Errorf("telemetry is enabled but no endpoint is configured")
	}
	return nil
}

// validateCollector checks collector cross-field constraints.
// Roots must be absolute so that request paths can be matched against
// them without any working-directory ambiguity.
func validateCollector(cfg *CollectorConfig) error {
	for _, root := range cfg.Roots {
		if root == "" {
			return fmt.Errorf("collector roots must not contain empty entries")
		}
		if !filepath.IsAbs(root) {
			return fmt.Errorf("collector root %q must be an absolute path", root)
		}
	}
	return nil
}
