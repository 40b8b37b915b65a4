package commands

import (
	"fmt"
	"os"

	"github.com/marmos91/finfo/cmd/finfoctl/cmdutil"
	"github.com/marmos91/finfo/internal/cli/output"
	"github.com/marmos91/finfo/internal/cli/timeutil"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Long: `Display the status of the connected finfod server.

This command checks the server health and readiness endpoints and displays
status, uptime, version, and MAC label support.

Examples:
  # Check status of connected server
  finfoctl status

  # Output as JSON
  finfoctl status -o json`,
	RunE: runStatus,
}

// ServerStatus represents the server status for display.
type ServerStatus struct {
	Server    string `json:"server" yaml:"server"`
	Status    string `json:"status" yaml:"status"`
	Healthy   bool   `json:"healthy" yaml:"healthy"`
	Service   string `json:"service,omitempty" yaml:"service,omitempty"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	StartedAt string `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	Uptime    string `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	MACLabels string `json:"mac_labels,omitempty" yaml:"mac_labels,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetClient()
	if err != nil {
		return err
	}

	status := ServerStatus{
		Server:  client.BaseURL(),
		Status:  "unreachable",
		Healthy: false,
	}

	health, err := client.Health()
	if err != nil {
		status.Error = err.Error()
	} else {
		status.Status = "healthy"
		status.Healthy = true
		status.Service = health.Service
		status.Version = health.Version
		status.StartedAt = health.StartedAt
		status.Uptime = health.Uptime

		// The daemon is alive; check whether it can serve collections.
		ready, err := client.Ready()
		if err != nil {
			status.Status = "not ready"
			status.Healthy = false
			status.Error = err.Error()
		} else {
			status.MACLabels = ready.MACLabels
		}
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, status)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, status)
	default:
		printStatusTable(status)
	}

	return nil
}

func printStatusTable(status ServerStatus) {
	fmt.Println()
	fmt.Println("finfod Server Status")
	fmt.Println("====================")
	fmt.Println()
	fmt.Printf("  Server:     %s\n", status.Server)

	if status.Healthy {
		fmt.Printf("  Status:     \033[32m● %s\033[0m\n", status.Status)
	} else if status.Status == "unreachable" {
		fmt.Printf("  Status:     \033[31m○ %s\033[0m\n", status.Status)
	} else {
		fmt.Printf("  Status:     \033[33m● %s\033[0m\n", status.Status)
	}

	if status.Service != "" {
		fmt.Printf("  Service:    %s\n", status.Service)
	}
	if status.Version != "" {
		fmt.Printf("  Version:    %s\n", status.Version)
	}
	if status.StartedAt != "" {
		fmt.Printf("  Started:    %s\n", timeutil.FormatTime(status.StartedAt))
	}
	if status.Uptime != "" {
		fmt.Printf("  Uptime:     %s\n", timeutil.FormatUptime(status.Uptime))
	}
	if status.MACLabels != "" {
		fmt.Printf("  MAC labels: %s\n", status.MACLabels)
	}
	if status.Error != "" {
		fmt.Printf("  Error:      %s\n", status.Error)
	}
	fmt.Println()
}
