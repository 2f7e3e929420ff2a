package config

const (
	defaultBaseDir       = "."
	defaultOutputName    = "master_registry.json"
	defaultAPIBaseURL    = "https://api.github.com"
	defaultRepository    = "MidoN37/daily-scraper-krok"
	defaultRemotePath    = "Merged/PDF"
	defaultUserAgent     = "krokindex/dev"
	defaultRemoteTimeout = 30
	defaultRegularRoot   = "Звичайні Базі"
	defaultOlderRoot     = "Старше ЦТ"
	defaultMergedDir     = "PDF Merged"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultRemoteEnabled = true
)

// Default returns a Config populated with repository defaults. Output is left
// empty so normalization can place the artifact under the resolved base dir.
func Default() Config {
	return Config{
		Paths: Paths{
			BaseDir: defaultBaseDir,
		},
		Remote: Remote{
			Enabled:        defaultRemoteEnabled,
			APIBaseURL:     defaultAPIBaseURL,
			Repository:     defaultRepository,
			Path:           defaultRemotePath,
			UserAgent:      defaultUserAgent,
			TimeoutSeconds: defaultRemoteTimeout,
		},
		Sources: Sources{
			RegularRoot: defaultRegularRoot,
			OlderRoot:   defaultOlderRoot,
			MergedDir:   defaultMergedDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
