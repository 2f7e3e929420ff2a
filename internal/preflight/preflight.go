package preflight

import (
	"context"
	"path/filepath"

	"krokindex/internal/config"
	"krokindex/internal/services/github"
)

// Result reports the outcome of a single preflight check. Optional checks
// do not make the overall run fail.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes all applicable preflight checks for the given config.
// lister may be nil, in which case the configured GitHub client is used.
func RunAll(ctx context.Context, cfg *config.Config, lister Lister) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Base directory", cfg.Paths.BaseDir, false))
	results = append(results, CheckDirectoryAccess("Output directory", filepath.Dir(cfg.Paths.Output), true))
	if cfg.Export.SQLitePath != "" {
		results = append(results, CheckDirectoryAccess("SQLite directory", filepath.Dir(cfg.Export.SQLitePath), true))
	}

	results = append(results, CheckSourceRoot("Regular bases tree", cfg.RegularRootPath()))
	results = append(results, CheckSourceRoot("Older database tree", cfg.OlderRootPath()))

	if cfg.Remote.Enabled {
		if lister == nil {
			lister = github.NewConfiguredClient(cfg)
		}
		results = append(results, CheckRemote(ctx, lister, cfg.Remote.Repository, cfg.Remote.Path, cfg.RemoteTimeout()))
	}

	return results
}

// Failed returns the required checks that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed && !r.Optional {
			failed = append(failed, r)
		}
	}
	return failed
}
