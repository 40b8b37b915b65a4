// finfoctl is the remote management client for finfod servers.
package main

import (
	"fmt"
	"os"

	"github.com/marmos91/finfo/cmd/finfoctl/commands"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
