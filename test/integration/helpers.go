//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Mailto     string
	BaseURL    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Mailto:     os.Getenv("CROSSREF_INTEGRATION_MAILTO"),
		BaseURL:    os.Getenv("CROSSREF_INTEGRATION_BASE_URL"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("CROSSREF_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the crossref binary.
func getBinaryPath() string {
	if path := os.Getenv("CROSSREF_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../crossref",
		"./crossref",
		"../crossref",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "crossref"
}

// SkipIfMissingConfig skips the test unless a contact address for the polite
// pool and the binary are available.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Mailto == "" {
		t.Skip("CROSSREF_INTEGRATION_MAILTO not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("crossref binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the crossref binary against the live API.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a command with JSON output and returns stdout and stderr.
func (runner *CommandRunner) Run(args ...string) (string, string, error) {
	full := append([]string{"--output", "json", "--mailto", runner.config.Mailto}, args...)
	if runner.config.BaseURL != "" {
		full = append([]string{"--base-url", runner.config.BaseURL}, full...)
	}

	// #nosec G204
	cmd := exec.Command(runner.config.BinaryPath, full...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(full, " "))
	}

	err := cmd.Run()
	stdout, stderr := stdoutBuf.String(), stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a command and decodes its output into v.
func (runner *CommandRunner) RunJSON(v interface{}, args ...string) {
	runner.t.Helper()

	stdout, stderr, err := runner.Run(args...)
	if err != nil {
		runner.t.Fatalf("crossref %s failed: %v\n%s", strings.Join(args, " "), err, stderr)
	}

	err = json.Unmarshal([]byte(stdout), v)
	if err != nil {
		runner.t.Fatalf("Output does not appear to be JSON: %v\n%s", err, stdout)
	}
}
