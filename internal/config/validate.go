package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateRemote(); err != nil {
		return err
	}
	if err := c.validateSources(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.BaseDir) == "" {
		return errors.New("paths.base_dir must be set")
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		return errors.New("paths.output must be set")
	}
	if c.Export.SQLitePath != "" && c.Export.SQLitePath == c.Paths.Output {
		return errors.New("export.sqlite_path must differ from paths.output")
	}
	return nil
}

func (c *Config) validateRemote() error {
	if !c.Remote.Enabled {
		return nil
	}
	parsed, err := url.Parse(c.Remote.APIBaseURL)
	if err != nil {
		return fmt.Errorf("remote.api_base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("remote.api_base_url must be an http(s) URL, got %q", c.Remote.APIBaseURL)
	}
	owner, name, ok := strings.Cut(c.Remote.Repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("remote.repository must look like owner/name, got %q", c.Remote.Repository)
	}
	if c.Remote.TimeoutSeconds <= 0 {
		return errors.New("remote.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateSources() error {
	for key, value := range map[string]string{
		"sources.regular_root": c.Sources.RegularRoot,
		"sources.older_root":   c.Sources.OlderRoot,
		"sources.merged_dir":   c.Sources.MergedDir,
	} {
		if strings.ContainsRune(value, filepath.Separator) || strings.ContainsRune(value, '/') {
			return fmt.Errorf("%s must be a single directory name, got %q", key, value)
		}
	}
	if c.Sources.RegularRoot == c.Sources.OlderRoot {
		return errors.New("sources.regular_root and sources.older_root must differ")
	}
	return nil
}
