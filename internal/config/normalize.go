package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRemote()
	c.normalizeSources()
	if err := c.normalizeExport(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.BaseDir) == "" {
		c.Paths.BaseDir = defaultBaseDir
	}
	if c.Paths.BaseDir, err = expandPath(strings.TrimSpace(c.Paths.BaseDir)); err != nil {
		return fmt.Errorf("paths.base_dir: %w", err)
	}
	output := strings.TrimSpace(c.Paths.Output)
	switch {
	case output == "":
		output = filepath.Join(c.Paths.BaseDir, defaultOutputName)
	case !filepath.IsAbs(output) && !strings.HasPrefix(output, "~"):
		output = filepath.Join(c.Paths.BaseDir, output)
	}
	if c.Paths.Output, err = expandPath(output); err != nil {
		return fmt.Errorf("paths.output: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRemote() {
	c.Remote.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.Remote.APIBaseURL), "/")
	if c.Remote.APIBaseURL == "" {
		c.Remote.APIBaseURL = defaultAPIBaseURL
	}
	c.Remote.Repository = strings.Trim(strings.TrimSpace(c.Remote.Repository), "/")
	if c.Remote.Repository == "" {
		c.Remote.Repository = defaultRepository
	}
	c.Remote.Path = strings.Trim(strings.TrimSpace(c.Remote.Path), "/")
	if c.Remote.Path == "" {
		c.Remote.Path = defaultRemotePath
	}
	c.Remote.Token = strings.TrimSpace(c.Remote.Token)
	if c.Remote.Token == "" {
		if value, ok := os.LookupEnv("GITHUB_TOKEN"); ok {
			c.Remote.Token = strings.TrimSpace(value)
		} else if value, ok := os.LookupEnv("GH_TOKEN"); ok {
			c.Remote.Token = strings.TrimSpace(value)
		}
	}
	c.Remote.UserAgent = strings.TrimSpace(c.Remote.UserAgent)
	if c.Remote.UserAgent == "" {
		c.Remote.UserAgent = defaultUserAgent
	}
	if c.Remote.TimeoutSeconds <= 0 {
		c.Remote.TimeoutSeconds = defaultRemoteTimeout
	}
}

func (c *Config) normalizeSources() {
	c.Sources.RegularRoot = strings.TrimSpace(c.Sources.RegularRoot)
	if c.Sources.RegularRoot == "" {
		c.Sources.RegularRoot = defaultRegularRoot
	}
	c.Sources.OlderRoot = strings.TrimSpace(c.Sources.OlderRoot)
	if c.Sources.OlderRoot == "" {
		c.Sources.OlderRoot = defaultOlderRoot
	}
	c.Sources.MergedDir = strings.TrimSpace(c.Sources.MergedDir)
	if c.Sources.MergedDir == "" {
		c.Sources.MergedDir = defaultMergedDir
	}
}

func (c *Config) normalizeExport() error {
	path := strings.TrimSpace(c.Export.SQLitePath)
	if path == "" {
		c.Export.SQLitePath = ""
		return nil
	}
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "~") {
		path = filepath.Join(c.Paths.BaseDir, path)
	}
	var err error
	if c.Export.SQLitePath, err = expandPath(path); err != nil {
		return fmt.Errorf("export.sqlite_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
