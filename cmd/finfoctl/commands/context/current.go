package context

import (
	"fmt"
	"os"

	"github.com/marmos91/finfo/cmd/finfoctl/cmdutil"
	"github.com/marmos91/finfo/internal/cli/credentials"
	"github.com/marmos91/finfo/internal/cli/output"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show current context",
	Long: `Display information about the current active context.

Examples:
  # Show current context
  finfoctl context current

  # Show as JSON
  finfoctl context current -o json`,
	RunE: runContextCurrent,
}

func runContextCurrent(cmd *cobra.Command, args []string) error {
	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize context store: %w", err)
	}

	contextName := store.GetCurrentContextName()
	if contextName == "" {
		return fmt.Errorf("no current context set\n\n" +
			"Create one first:\n" +
			"  finfoctl context set <name> --server <url>")
	}

	ctx, err := store.GetContext(contextName)
	if err != nil {
		return fmt.Errorf("failed to get context: %w", err)
	}

	info := ContextInfo{
		Name:      contextName,
		Current:   true,
		ServerURL: ctx.ServerURL,
		HasToken:  ctx.HasToken(),
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, info)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, info)
	default:
		fmt.Printf("Current context: %s\n", contextName)
		fmt.Printf("  Server: %s\n", ctx.ServerURL)
		if info.HasToken {
			fmt.Printf("  Token:  stored\n")
		} else {
			fmt.Printf("  Token:  none\n")
		}
	}

	return nil
}
