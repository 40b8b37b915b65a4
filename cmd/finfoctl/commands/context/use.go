package context

import (
	"fmt"

	"github.com/marmos91/finfo/cmd/finfoctl/cmdutil"
	"github.com/marmos91/finfo/internal/cli/credentials"
	"github.com/marmos91/finfo/internal/cli/prompt"
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Switch to a different context",
	Long: `Switch to a different server context.

This changes the active context used for subsequent commands. Without an
argument, an interactive picker lists the configured contexts.

Examples:
  # Switch to context named "fileserver"
  finfoctl context use fileserver

  # Pick a context interactively
  finfoctl context use`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContextUse,
}

func runContextUse(cmd *cobra.Command, args []string) error {
	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize context store: %w", err)
	}

	var contextName string
	if len(args) == 1 {
		contextName = args[0]
	} else {
		names := store.ListContexts()
		if len(names) == 0 {
			return fmt.Errorf("no contexts configured\n\n" +
				"Create one first:\n" +
				"  finfoctl context set <name> --server <url>")
		}
		contextName, err = prompt.SelectString("Select context", names)
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	if err := store.UseContext(contextName); err != nil {
		if err == credentials.ErrContextNotFound {
			return fmt.Errorf("context '%s' not found\n\n"+
				"List available contexts:\n"+
				"  finfoctl context list", contextName)
		}
		return fmt.Errorf("failed to switch context: %w", err)
	}

	fmt.Printf("Switched to context: %s\n", contextName)
	return nil
}
