//go:build e2e

// Package helpers provides process and CLI harnesses for finfo end-to-end tests.
package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

// ServerProcess manages a finfod subprocess for E2E testing.
// It provides methods to start the daemon, check health, send signals, and stop gracefully.
type ServerProcess struct {
	cmd           *exec.Cmd
	pidFile       string
	apiPort       int
	logFile       string
	stateDir      string
	configFile    string
	process       *os.Process
	logFileHandle *os.File
}

// ServerOptions configures the daemon under test.
type ServerOptions struct {
	// Roots restricts collection to these directories. Empty allows any path.
	Roots []string

	// APISecret enables bearer-token authentication when non-empty.
	// Must be at least 32 characters.
	APISecret string
}

// HealthResponse represents the /health endpoint response structure.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
	Data      struct {
		Service   string `json:"service,omitempty"`
		Version   string `json:"version,omitempty"`
		Instance  string `json:"instance,omitempty"`
		StartedAt string `json:"started_at,omitempty"`
		Uptime    string `json:"uptime,omitempty"`
		UptimeSec int64  `json:"uptime_sec,omitempty"`
	} `json:"data,omitempty"`
}

// ReadinessResponse represents the /health/ready endpoint response structure.
type ReadinessResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
	Data      struct {
		Collector string `json:"collector,omitempty"`
		MACLabels string `json:"mac_labels,omitempty"`
	} `json:"data,omitempty"`
}

// FindFreePort finds an available TCP port by binding to :0 and reading the assigned port.
func FindFreePort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	defer func() { _ = listener.Close() }()

	addr := listener.Addr().(*net.TCPAddr)
	return addr.Port
}

// StartServerProcess starts a finfod daemon in foreground mode with a generated
// config and polls /health until it responds. State (pid file, log file, config)
// lives in t.TempDir().
func StartServerProcess(t *testing.T, opts ServerOptions) *ServerProcess {
	t.Helper()

	stateDir := t.TempDir()
	apiPort := FindFreePort(t)

	configFile := writeConfig(t, stateDir, apiPort, opts)

	pidFile := filepath.Join(stateDir, "finfod.pid")
	logFile := filepath.Join(stateDir, "finfod.log")

	finfodPath := FindFinfodBinary(t)

	// Start daemon in foreground mode
	cmd := exec.Command(finfodPath, "start", "--foreground",
		"--config", configFile,
		"--pid-file", pidFile,
		"--log-file", logFile)

	// Redirect stdout/stderr to log file
	logFileHandle, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatalf("Failed to create log file: %v", err)
	}

	cmd.Stdout = logFileHandle
	cmd.Stderr = logFileHandle

	if err := cmd.Start(); err != nil {
		_ = logFileHandle.Close()
		t.Fatalf("Failed to start finfod: %v", err)
	}

	sp := &ServerProcess{
		cmd:           cmd,
		pidFile:       pidFile,
		apiPort:       apiPort,
		logFile:       logFile,
		stateDir:      stateDir,
		configFile:    configFile,
		process:       cmd.Process,
		logFileHandle: logFileHandle,
	}

	if err := sp.WaitReady(5 * time.Second); err != nil {
		sp.dumpLogs(t)
		sp.ForceKill()
		t.Fatalf("Server failed to become ready: %v", err)
	}

	return sp
}

// writeConfig renders a minimal daemon config for the test into stateDir.
func writeConfig(t *testing.T, stateDir string, apiPort int, opts ServerOptions) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("# Test configuration generated by e2e test\n")
	b.WriteString("logging:\n")
	b.WriteString("  level: DEBUG\n")
	b.WriteString("  format: text\n")
	b.WriteString("  output: stdout\n")
	b.WriteString("\n")
	b.WriteString("api:\n")
	fmt.Fprintf(&b, "  port: %d\n", apiPort)
	if opts.APISecret != "" {
		b.WriteString("  auth:\n")
		fmt.Fprintf(&b, "    secret: %q\n", opts.APISecret)
	}
	b.WriteString("\n")
	b.WriteString("metrics:\n")
	b.WriteString("  enabled: false\n")
	if len(opts.Roots) > 0 {
		b.WriteString("\n")
		b.WriteString("collector:\n")
		b.WriteString("  roots:\n")
		for _, root := range opts.Roots {
			fmt.Fprintf(&b, "    - %q\n", root)
		}
	}

	configFile := filepath.Join(stateDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte(b.String()), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	return configFile
}

// WaitReady polls the /health endpoint until the daemon responds or timeout.
func (sp *ServerProcess) WaitReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 500 * time.Millisecond}
	url := fmt.Sprintf("http://127.0.0.1:%d/health", sp.apiPort)

	var lastErr error
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err != nil {
			lastErr = err
			time.Sleep(100 * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			return nil
		}

		lastErr = fmt.Errorf("health check returned %d: %s", resp.StatusCode, string(body))
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server not healthy after %v: %w", timeout, lastErr)
}

// CheckHealth performs a GET /health and parses the response.
func (sp *ServerProcess) CheckHealth() (*HealthResponse, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	url := fmt.Sprintf("http://127.0.0.1:%d/health", sp.apiPort)

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var healthResp HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&healthResp); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}

	return &healthResp, nil
}

// CheckReady performs a GET /health/ready and parses the response.
// The response is returned even when the daemon reports 503.
func (sp *ServerProcess) CheckReady() (*ReadinessResponse, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	url := fmt.Sprintf("http://127.0.0.1:%d/health/ready", sp.apiPort)

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("readiness check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var readyResp ReadinessResponse
	if err := json.NewDecoder(resp.Body).Decode(&readyResp); err != nil {
		return nil, fmt.Errorf("failed to decode readiness response: %w", err)
	}

	return &readyResp, nil
}

// SendSignal sends a signal to the daemon process.
func (sp *ServerProcess) SendSignal(sig syscall.Signal) error {
	if sp.process == nil {
		return fmt.Errorf("no process to signal")
	}
	return sp.process.Signal(sig)
}

// WaitForExit waits for the process to exit within the timeout.
func (sp *ServerProcess) WaitForExit(timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		_, err := sp.process.Wait()
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process did not exit within %v", timeout)
	}
}

// ForceKill terminates the daemon, trying SIGTERM first so the API listener
// closes cleanly, then falling back to SIGKILL.
func (sp *ServerProcess) ForceKill() {
	if sp.process == nil {
		return
	}

	_ = sp.process.Signal(syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		_, _ = sp.process.Wait()
		close(done)
	}()

	select {
	case <-done:
		// Process exited gracefully
	case <-time.After(2 * time.Second):
		_ = sp.process.Kill()
		<-done
	}

	if sp.logFileHandle != nil {
		_ = sp.logFileHandle.Close()
		sp.logFileHandle = nil
	}
}

// StopGracefully sends SIGTERM and waits for clean exit.
func (sp *ServerProcess) StopGracefully() error {
	if err := sp.SendSignal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to send SIGTERM: %w", err)
	}
	return sp.WaitForExit(10 * time.Second)
}

// APIPort returns the API port for client connections.
func (sp *ServerProcess) APIPort() int {
	return sp.apiPort
}

// APIURL returns the full API URL for the daemon.
func (sp *ServerProcess) APIURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", sp.apiPort)
}

// LogFile returns the path to the daemon log file.
func (sp *ServerProcess) LogFile() string {
	return sp.logFile
}

// PidFile returns the path to the daemon PID file.
func (sp *ServerProcess) PidFile() string {
	return sp.pidFile
}

// ConfigFile returns the path to the daemon config file.
func (sp *ServerProcess) ConfigFile() string {
	return sp.configFile
}

// ProcessRunning checks if the daemon process is still running.
func (sp *ServerProcess) ProcessRunning() bool {
	if sp.process == nil {
		return false
	}
	// Signal 0 probes for existence without delivering anything
	err := sp.process.Signal(syscall.Signal(0))
	return err == nil
}

// PID returns the process ID of the daemon, or 0 if not running.
func (sp *ServerProcess) PID() int {
	if sp.process == nil {
		return 0
	}
	return sp.process.Pid
}

// dumpLogs prints the log file contents to help debug failures.
func (sp *ServerProcess) dumpLogs(t *testing.T) {
	t.Helper()

	content, err := os.ReadFile(sp.logFile)
	if err != nil {
		t.Logf("Could not read log file: %v", err)
		return
	}

	t.Logf("Server logs:\n%s", string(content))
}

// DumpLogs is the exported version of dumpLogs for use by tests.
func (sp *ServerProcess) DumpLogs(t *testing.T) {
	sp.dumpLogs(t)
}

// FindFinfodBinary locates the finfod binary, building it if necessary.
func FindFinfodBinary(t *testing.T) string {
	t.Helper()

	if path, err := exec.LookPath("finfod"); err == nil {
		return path
	}

	projectRoot := findProjectRoot(t)
	localBinary := filepath.Join(projectRoot, "finfod")
	if _, err := os.Stat(localBinary); err == nil {
		return localBinary
	}

	t.Log("Building finfod binary...")
	cmd := exec.Command("go", "build", "-o", localBinary, "./cmd/finfod/")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build finfod: %v\n%s", err, output)
	}

	return localBinary
}

// findProjectRoot locates the project root by looking for go.mod.
func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("Could not find project root (go.mod not found)")
		}
		dir = parent
	}
}
