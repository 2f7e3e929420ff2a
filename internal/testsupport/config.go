package testsupport

import (
	"path/filepath"
	"testing"

	"krokindex/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp base directory per
// test. The remote pass is disabled unless WithRemote is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BaseDir = base
	cfgVal.Paths.Output = filepath.Join(base, "master_registry.json")
	cfgVal.Remote.Enabled = false
	cfgVal.Remote.TimeoutSeconds = 5
	cfgVal.Remote.UserAgent = "krokindex/test"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithRemote enables the remote pass against apiBaseURL.
func WithRemote(apiBaseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Remote.Enabled = true
		b.cfg.Remote.APIBaseURL = apiBaseURL
	}
}

// WithToken sets the remote API token.
func WithToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Remote.Token = token
	}
}

// WithSQLiteExport enables the SQLite mirror inside the base directory.
func WithSQLiteExport() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Export.SQLitePath = filepath.Join(b.baseDir, "catalog.db")
	}
}

// WithLogDir enables file logging inside the base directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return cfg.Paths.BaseDir
}
