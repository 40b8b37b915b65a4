// Package commands implements the CLI commands for the finfoctl client.
package commands

import (
	"os"

	"github.com/marmos91/finfo/cmd/finfoctl/cmdutil"
	ctxcmd "github.com/marmos91/finfo/cmd/finfoctl/commands/context"
	"github.com/marmos91/finfo/internal/cli/credentials"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "finfoctl",
	Short: "finfo control - Remote file attribute client",
	Long: `finfoctl is the command-line client for querying finfod servers remotely.

Use this tool to collect file attributes over the REST API and to manage
connection contexts for multiple servers.

Use "finfoctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Sync flags to cmdutil.Flags for subcommands
		cmdutil.Flags.ServerURL, _ = cmd.Flags().GetString("server")
		cmdutil.Flags.Token, _ = cmd.Flags().GetString("token")
		cmdutil.Flags.Output, _ = cmd.Flags().GetString("output")
		cmdutil.Flags.NoColor, _ = cmd.Flags().GetBool("no-color")
		cmdutil.Flags.Verbose, _ = cmd.Flags().GetBool("verbose")

		applyPreferences(cmd)
	},
}

// applyPreferences layers stored preferences under unset flags.
func applyPreferences(cmd *cobra.Command) {
	store, err := credentials.NewStore()
	if err != nil {
		return
	}
	prefs := store.GetPreferences()

	if !cmd.Flags().Changed("output") && prefs.DefaultOutput != "" {
		cmdutil.Flags.Output = prefs.DefaultOutput
	}
	if !cmd.Flags().Changed("no-color") && prefs.Color == "never" {
		cmdutil.Flags.NoColor = true
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().String("server", "", "Server URL (overrides stored context)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token (overrides stored context)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(ctxcmd.Cmd)
	rootCmd.AddCommand(completionCmd)

	// Hide the default completion command (we provide our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// PrintErr prints an error message to stderr.
func PrintErr(format string, args ...any) {
	rootCmd.PrintErrf(format+"\n", args...)
}

// Exit prints an error and exits with code 1.
func Exit(format string, args ...any) {
	PrintErr(format, args...)
	os.Exit(1)
}
