package config

import (
	"fmt"

	"github.com/marmos91/finfo/pkg/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the finfo configuration file.

Checks for syntax errors, missing required fields, and invalid values.

Examples:
  # Validate default config
  finfod config validate

  # Validate specific config file
  finfod config validate --config /etc/finfo/config.yaml`,
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	// Get config path from parent's persistent flag
	configPath, _ := cmd.Flags().GetString("config")

	// Load and validate configuration
	cfg, err := config.MustLoad(configPath)
	if err != nil {
		return err
	}

	// Determine path for display
	displayPath := configPath
	if displayPath == "" {
		displayPath = config.GetDefaultConfigPath()
	}

	// Additional validation checks
	var warnings []string

	// Check API secret is configured
	if !cfg.API.HasSecret() {
		warnings = append(warnings, "API secret not configured - the API will serve requests without authentication")
	}

	// Check collection roots are set
	if len(cfg.Collector.Roots) == 0 {
		warnings = append(warnings, "No collection roots configured - the API may stat any absolute path")
	}

	// Print results
	fmt.Printf("Configuration file: %s\n", displayPath)
	fmt.Println("Validation: OK")

	if len(warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	fmt.Printf("\nConfiguration summary:\n")
	fmt.Printf("  API port:         %d\n", cfg.API.Port)
	fmt.Printf("  Log level:        %s\n", cfg.Logging.Level)
	fmt.Printf("  Max value size:   %s\n", cfg.Collector.MaxValueSize)
	fmt.Printf("  Collection roots: %d\n", len(cfg.Collector.Roots))

	return nil
}
