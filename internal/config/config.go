package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and artifact locations.
type Paths struct {
	BaseDir string `toml:"base_dir"`
	Output  string `toml:"output"`
	LogDir  string `toml:"log_dir"`
}

// Remote contains configuration for the GitHub directory listing pass.
type Remote struct {
	Enabled        bool   `toml:"enabled"`
	APIBaseURL     string `toml:"api_base_url"`
	Repository     string `toml:"repository"`
	Path           string `toml:"path"`
	Token          string `toml:"token"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Sources names the local directory trees scanned under Paths.BaseDir.
type Sources struct {
	RegularRoot string `toml:"regular_root"`
	OlderRoot   string `toml:"older_root"`
	MergedDir   string `toml:"merged_dir"`
}

// Export contains configuration for the optional SQLite mirror.
type Export struct {
	SQLitePath string `toml:"sqlite_path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for krokindex.
//
// Configuration sections by subsystem:
//   - Paths: base directory, artifact path, optional log directory
//   - Remote: GitHub contents listing (repository, path, token, timeout)
//   - Sources: local root directory names and the merged-booklet marker
//   - Export: optional SQLite search-index mirror
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Remote  Remote  `toml:"remote"`
	Sources Sources `toml:"sources"`
	Export  Export  `toml:"export"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/krokindex/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	if err := loadDotEnv(); err != nil {
		return nil, "", false, err
	}

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// loadDotEnv reads ./.env when present. Variables already set in the process
// environment are left untouched.
func loadDotEnv() error {
	info, err := os.Stat(".env")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat .env: %w", err)
	}
	if info.IsDir() {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s not found", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/krokindex/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("krokindex.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the build writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Paths.Output)}
	if c.Paths.LogDir != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	if c.Export.SQLitePath != "" {
		dirs = append(dirs, filepath.Dir(c.Export.SQLitePath))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// RemoteTimeout returns the bounded timeout for the remote listing call.
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.Remote.TimeoutSeconds) * time.Second
}

// RegularRootPath returns the absolute path of the regular bases tree.
func (c *Config) RegularRootPath() string {
	return filepath.Join(c.Paths.BaseDir, c.Sources.RegularRoot)
}

// OlderRootPath returns the absolute path of the older database tree.
func (c *Config) OlderRootPath() string {
	return filepath.Join(c.Paths.BaseDir, c.Sources.OlderRoot)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
