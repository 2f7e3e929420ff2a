package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"krokindex/internal/config"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultConfigUsesOriginalConstants(t *testing.T) {
	isolateEnv(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if cfg.Paths.BaseDir != cwd {
		t.Fatalf("unexpected base dir: got %q want %q", cfg.Paths.BaseDir, cwd)
	}
	if want := filepath.Join(cwd, "master_registry.json"); cfg.Paths.Output != want {
		t.Fatalf("unexpected output: got %q want %q", cfg.Paths.Output, want)
	}
	if !cfg.Remote.Enabled {
		t.Fatal("expected remote listing enabled by default")
	}
	if cfg.Remote.Repository != "MidoN37/daily-scraper-krok" {
		t.Fatalf("unexpected repository: %q", cfg.Remote.Repository)
	}
	if cfg.Remote.Path != "Merged/PDF" {
		t.Fatalf("unexpected remote path: %q", cfg.Remote.Path)
	}
	if cfg.Remote.Token != "" {
		t.Fatalf("expected empty token, got %q", cfg.Remote.Token)
	}
	if cfg.Sources.RegularRoot != "Звичайні Базі" || cfg.Sources.OlderRoot != "Старше ЦТ" {
		t.Fatalf("unexpected source roots: %+v", cfg.Sources)
	}
	if cfg.Sources.MergedDir != "PDF Merged" {
		t.Fatalf("unexpected merged dir: %q", cfg.Sources.MergedDir)
	}
	if cfg.RemoteTimeout().Seconds() != 30 {
		t.Fatalf("unexpected remote timeout: %s", cfg.RemoteTimeout())
	}
	if cfg.Export.SQLitePath != "" {
		t.Fatalf("expected sqlite export disabled, got %q", cfg.Export.SQLitePath)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPathResolvesRelativeToBaseDir(t *testing.T) {
	isolateEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "krokindex.toml")
	baseDir := filepath.Join(tempDir, "bases")

	type payload struct {
		Paths struct {
			BaseDir string `toml:"base_dir"`
			Output  string `toml:"output"`
		} `toml:"paths"`
		Remote struct {
			Enabled        bool   `toml:"enabled"`
			Repository     string `toml:"repository"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
		} `toml:"remote"`
		Export struct {
			SQLitePath string `toml:"sqlite_path"`
		} `toml:"export"`
	}
	custom := payload{}
	custom.Paths.BaseDir = baseDir
	custom.Paths.Output = "out/catalog.json"
	custom.Remote.Enabled = true
	custom.Remote.Repository = "someone/other-repo/"
	custom.Remote.TimeoutSeconds = 5
	custom.Export.SQLitePath = "catalog.db"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.Output != filepath.Join(baseDir, "out", "catalog.json") {
		t.Fatalf("unexpected output: %q", cfg.Paths.Output)
	}
	if cfg.Export.SQLitePath != filepath.Join(baseDir, "catalog.db") {
		t.Fatalf("unexpected sqlite path: %q", cfg.Export.SQLitePath)
	}
	if cfg.Remote.Repository != "someone/other-repo" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Remote.Repository)
	}
	if cfg.RegularRootPath() != filepath.Join(baseDir, "Звичайні Базі") {
		t.Fatalf("unexpected regular root: %q", cfg.RegularRootPath())
	}
	if cfg.OlderRootPath() != filepath.Join(baseDir, "Старше ЦТ") {
		t.Fatalf("unexpected older root: %q", cfg.OlderRootPath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(filepath.Join(baseDir, "out")); err != nil || !info.IsDir() {
		t.Fatalf("expected output directory to exist: %v", err)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	isolateEnv(t)
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestTokenFallsBackToEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("GITHUB_TOKEN", " env-token ")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Remote.Token != "env-token" {
		t.Fatalf("expected token from env, got %q", cfg.Remote.Token)
	}
}

func TestTokenLoadedFromDotEnv(t *testing.T) {
	isolateEnv(t)
	if err := os.WriteFile(".env", []byte("GITHUB_TOKEN=dotenv-token\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Remote.Token != "dotenv-token" {
		t.Fatalf("expected token from .env, got %q", cfg.Remote.Token)
	}
}

func TestProjectConfigDiscoveredInWorkingDirectory(t *testing.T) {
	isolateEnv(t)
	body := "[remote]\nenabled = false\n\n[logging]\nformat = \"JSON\"\n"
	if err := os.WriteFile("krokindex.toml", []byte(body), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || !strings.HasSuffix(resolved, "krokindex.toml") {
		t.Fatalf("expected project config to be used, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Remote.Enabled {
		t.Fatal("expected remote disabled by project config")
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized json format, got %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsMalformedRepository(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.BaseDir = t.TempDir()
	cfg.Paths.Output = filepath.Join(cfg.Paths.BaseDir, "out.json")
	cfg.Remote.Repository = "no-slash"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected repository validation error")
	}

	cfg.Remote.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected disabled remote to skip repository check, got %v", err)
	}
}

func TestValidateRejectsNestedSourceRoot(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.BaseDir = t.TempDir()
	cfg.Paths.Output = filepath.Join(cfg.Paths.BaseDir, "out.json")
	cfg.Sources.OlderRoot = "a/b"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected nested source root to be rejected")
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	isolateEnv(t)
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Sources.MergedDir != "PDF Merged" {
		t.Fatalf("unexpected merged dir from sample: %q", cfg.Sources.MergedDir)
	}
}
