package commands

import (
	"fmt"

	"github.com/marmos91/finfo/internal/cli/output"
	"github.com/marmos91/finfo/internal/cli/timeutil"
	"github.com/marmos91/finfo/pkg/api"
	"github.com/marmos91/finfo/pkg/api/auth"
	"github.com/marmos91/finfo/pkg/config"
	"github.com/spf13/cobra"
)

var tokenOutput string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "API token management",
	Long: `Manage bearer tokens for the finfod REST API.

Tokens are minted from the API secret in the daemon configuration, so this
command must run on the daemon host (or with the same configuration).`,
}

var tokenCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Mint a new API token",
	Long: `Mint a bearer token for the finfod REST API.

The optional name is embedded in the token subject so tokens handed to
different clients can be told apart in logs. Tokens expire after the
configured token duration (default: 7 days).

Examples:
  # Mint a token for finfoctl
  finfod token create

  # Mint a named token for a monitoring job
  finfod token create backup-scanner

  # Print the full token response as JSON
  finfod token create -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenCreate,
}

func init() {
	tokenCreateCmd.Flags().StringVarP(&tokenOutput, "output", "o", "table", "Output format (table|json)")
	tokenCmd.AddCommand(tokenCreateCmd)
}

func runTokenCreate(cmd *cobra.Command, args []string) error {
	name := "finfoctl"
	if len(args) == 1 {
		name = args[0]
	}

	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	if !cfg.API.HasSecret() {
		return fmt.Errorf("no API secret configured - tokens cannot be minted\n\n"+
			"Set a secret in the configuration file (api.auth.secret) or via the\n"+
			"%s environment variable, then restart the daemon", api.EnvAPISecret)
	}

	service, err := auth.NewTokenService(auth.TokenConfig{
		Secret:        cfg.API.GetSecret(),
		TokenDuration: cfg.API.Auth.TokenDuration,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	token, err := service.Generate(name)
	if err != nil {
		return fmt.Errorf("failed to mint token: %w", err)
	}

	format, err := output.ParseFormat(tokenOutput)
	if err != nil {
		return err
	}
	if format == output.FormatJSON {
		return output.PrintJSON(cmd.OutOrStdout(), token)
	}

	fmt.Printf("Token minted for %q (expires %s)\n\n", name, timeutil.FormatLocal(token.ExpiresAt))
	fmt.Println(token.Token)
	fmt.Println("\nUse it with finfoctl:")
	fmt.Printf("  finfoctl context set local --server http://localhost:%d --token <token>\n", cfg.API.Port)
	fmt.Println("Or directly against the API:")
	fmt.Println("  curl -H \"Authorization: Bearer <token>\" ...")

	return nil
}
