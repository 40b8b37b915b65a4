package context

import (
	"fmt"
	"net/url"

	"github.com/marmos91/finfo/cmd/finfoctl/cmdutil"
	"github.com/marmos91/finfo/internal/cli/credentials"
	"github.com/marmos91/finfo/internal/cli/prompt"
	"github.com/spf13/cobra"
)

var (
	setServer string
	setToken  string
)

var setCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or update a context",
	Long: `Create or update a server context and make it the current one.

Tokens are static bearer tokens minted on the server with 'finfod token
create'. A context without a token talks to servers that run with
authentication disabled.

Missing values are prompted for interactively; token input is not echoed.

Examples:
  # Local server without authentication
  finfoctl context set local --server http://localhost:8080

  # Remote server with a bearer token
  finfoctl context set fileserver --server https://files.example.com:8080 --token <token>

  # Update the stored token
  finfoctl context set fileserver --token <new-token>`,
	Args: cobra.ExactArgs(1),
	RunE: runContextSet,
}

func init() {
	setCmd.Flags().StringVar(&setServer, "server", "", "Server URL")
	setCmd.Flags().StringVar(&setToken, "token", "", "Bearer token (empty clears the stored token)")
}

func runContextSet(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize context store: %w", err)
	}

	existing, err := store.GetContext(name)
	if err != nil && err != credentials.ErrContextNotFound {
		return fmt.Errorf("failed to get context: %w", err)
	}

	// Determine server URL
	serverURL := setServer
	if !cmd.Flags().Changed("server") {
		if existing != nil {
			serverURL, err = prompt.Input("Server URL", existing.ServerURL)
		} else {
			serverURL, err = prompt.InputRequired("Server URL")
		}
		if err != nil {
			return cmdutil.HandleAbort(err)
		}
	}

	parsedURL, err := url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	if parsedURL.Scheme == "" {
		parsedURL.Scheme = "http"
		serverURL = parsedURL.String()
	}

	// Determine token. The flag wins even when empty so a stored token can be
	// cleared; fresh contexts prompt without echo.
	token := setToken
	if !cmd.Flags().Changed("token") {
		if existing != nil {
			token = existing.Token
		} else {
			token, err = prompt.Secret("API token (empty for servers without authentication)")
			if err != nil {
				return cmdutil.HandleAbort(err)
			}
		}
	}

	ctx := &credentials.Context{
		ServerURL: serverURL,
		Token:     token,
	}

	if err := store.SetContext(name, ctx); err != nil {
		return fmt.Errorf("failed to save context: %w", err)
	}

	if err := store.UseContext(name); err != nil {
		return fmt.Errorf("failed to set current context: %w", err)
	}

	fmt.Printf("Context saved: %s\n", name)
	fmt.Printf("  Server: %s\n", ctx.ServerURL)
	if ctx.HasToken() {
		fmt.Printf("  Token:  stored\n")
	} else {
		fmt.Printf("  Token:  none (requests are sent unauthenticated)\n")
	}
	fmt.Printf("Saved to: %s\n", store.ConfigPath())

	return nil
}
