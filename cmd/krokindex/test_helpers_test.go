package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"krokindex/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputPath string
}

type envOption func(*envConfig)

type envConfig struct {
	remoteURL  string
	sqlitePath string
}

func withRemoteURL(url string) envOption {
	return func(c *envConfig) { c.remoteURL = url }
}

func withSQLite(path string) envOption {
	return func(c *envConfig) { c.sqlitePath = path }
}

func setupCLITestEnv(t *testing.T, opts ...envOption) *cliTestEnv {
	t.Helper()

	root := t.TempDir()
	homeDir := filepath.Join(root, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("GITHUB_TOKEN", "")
	os.Unsetenv("GITHUB_TOKEN")
	t.Setenv("GH_TOKEN", "")
	os.Unsetenv("GH_TOKEN")
	t.Chdir(root)

	baseDir := filepath.Join(root, "library")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("mkdir base: %v", err)
	}

	var ec envConfig
	for _, opt := range opts {
		opt(&ec)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[paths]\nbase_dir = %q\n\n", baseDir)
	if ec.remoteURL != "" {
		fmt.Fprintf(&b, "[remote]\nenabled = true\napi_base_url = %q\ntimeout_seconds = 5\n\n", ec.remoteURL)
	} else {
		b.WriteString("[remote]\nenabled = false\n\n")
	}
	if ec.sqlitePath != "" {
		fmt.Fprintf(&b, "[export]\nsqlite_path = %q\n\n", ec.sqlitePath)
	}
	b.WriteString("[logging]\nlevel = \"warn\"\n")

	configPath := filepath.Join(root, "config.toml")
	if err := os.WriteFile(configPath, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		baseDir:    baseDir,
		configPath: configPath,
		outputPath: filepath.Join(baseDir, "master_registry.json"),
	}
}

func (e *cliTestEnv) seed(t *testing.T, rels ...string) {
	t.Helper()
	testsupport.WriteTree(t, e.baseDir, rels...)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
