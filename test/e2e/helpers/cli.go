//go:build e2e

package helpers

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// CLIRunner executes finfoctl commands with JSON output for reliable parsing.
type CLIRunner struct {
	serverURL string
	token     string
	binary    string
}

// NewCLIRunner creates a new CLI runner for the given server URL and auth token.
func NewCLIRunner(serverURL, token string) *CLIRunner {
	return &CLIRunner{
		serverURL: serverURL,
		token:     token,
	}
}

// Run executes finfoctl with --output json, --server, and --token prepended.
// Returns the raw output bytes and any error.
func (r *CLIRunner) Run(args ...string) ([]byte, error) {
	fullArgs := []string{"--output", "json"}
	if r.serverURL != "" {
		fullArgs = append(fullArgs, "--server", r.serverURL)
	}
	if r.token != "" {
		fullArgs = append(fullArgs, "--token", r.token)
	}
	fullArgs = append(fullArgs, args...)

	return r.execFinfoctl(fullArgs...)
}

// RunRaw executes finfoctl without prepending standard args.
func (r *CLIRunner) RunRaw(args ...string) ([]byte, error) {
	return r.execFinfoctl(args...)
}

// SetToken updates the authentication token.
func (r *CLIRunner) SetToken(token string) {
	r.token = token
}

// execFinfoctl runs the finfoctl binary with the given arguments.
func (r *CLIRunner) execFinfoctl(args ...string) ([]byte, error) {
	binary := r.getBinary()
	cmd := exec.Command(binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Include stderr in error for better debugging
		return stdout.Bytes(), fmt.Errorf("finfoctl %s failed: %w\nstderr: %s",
			strings.Join(args, " "), err, stderr.String())
	}

	return stdout.Bytes(), nil
}

// getBinary returns the path to the finfoctl binary, building it if necessary.
func (r *CLIRunner) getBinary() string {
	if r.binary != "" {
		return r.binary
	}

	if path, err := exec.LookPath("finfoctl"); err == nil {
		r.binary = path
		return r.binary
	}

	projectRoot := findProjectRootForCLI()
	localBinary := filepath.Join(projectRoot, "finfoctl")
	if _, err := os.Stat(localBinary); err == nil {
		r.binary = localBinary
		return r.binary
	}

	cmd := exec.Command("go", "build", "-o", localBinary, "./cmd/finfoctl/")
	cmd.Dir = projectRoot
	if _, err := cmd.CombinedOutput(); err != nil {
		// Fall back to just "finfoctl" and let it fail later with better error
		r.binary = "finfoctl"
		return r.binary
	}

	r.binary = localBinary
	return r.binary
}

// findProjectRootForCLI locates the project root by looking for go.mod.
func findProjectRootForCLI() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}

// RunFinfod runs a finfod subcommand (status, token create, ...) and returns
// its stdout. The daemon binary is built on demand.
func RunFinfod(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()

	binary := FindFinfodBinary(t)
	cmd := exec.Command(binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return stdout.Bytes(), fmt.Errorf("finfod %s failed: %w\nstderr: %s",
			strings.Join(args, " "), err, stderr.String())
	}

	return stdout.Bytes(), nil
}
