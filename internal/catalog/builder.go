package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"krokindex/internal/config"
	"krokindex/internal/logging"
	"krokindex/internal/services"
	"krokindex/internal/services/github"
)

// Stats summarizes a build.
type Stats struct {
	Counts            map[string]int
	Skipped           int
	RemoteUnavailable bool
	Duration          time.Duration
}

// Total returns the number of catalogued entries.
func (s Stats) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// Result is the outcome of Build.
type Result struct {
	RunID   string
	Entries []Entry
	Stats   Stats
}

// Builder runs the ingestion passes.
type Builder struct {
	cfg     *config.Config
	base    *slog.Logger
	logger  *slog.Logger
	lister  Lister
	offline bool
	runID   string
	passes  []Pass
	now     func() time.Time
}

// Option customizes a Builder.
type Option func(*Builder)

// WithLister replaces the GitHub client used by the remote pass.
func WithLister(lister Lister) Option {
	return func(b *Builder) { b.lister = lister }
}

// WithOffline skips the remote pass.
func WithOffline(offline bool) Option {
	return func(b *Builder) { b.offline = offline }
}

// WithRunID sets the correlation id instead of generating one.
func WithRunID(id string) Option {
	return func(b *Builder) { b.runID = id }
}

// WithPasses replaces the default passes.
func WithPasses(passes ...Pass) Option {
	return func(b *Builder) { b.passes = passes }
}

// NewBuilder constructs a Builder for cfg. Without options the passes are
// remote, regular tree, older tree, in that order.
func NewBuilder(cfg *config.Config, logger *slog.Logger, opts ...Option) *Builder {
	if logger == nil {
		logger = logging.NewNop()
	}
	b := &Builder{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.runID == "" {
		b.runID = uuid.NewString()
	}
	b.base = logger
	b.logger = logging.NewComponentLogger(logger, "catalog").With(logging.String(logging.FieldCorrelationID, b.runID))
	if b.passes == nil {
		b.passes = b.defaultPasses()
	}
	return b
}

func (b *Builder) defaultPasses() []Pass {
	if b.lister == nil {
		b.lister = github.NewConfiguredClient(b.cfg)
	}
	remoteEnabled := b.cfg.Remote.Enabled && !b.offline
	return []Pass{
		NewRemoteSource(b.lister, b.cfg.Remote.Repository, b.cfg.Remote.Path, remoteEnabled, b.base),
		NewRegularSource(b.cfg.Paths.BaseDir, b.cfg.Sources.RegularRoot, b.cfg.Sources.MergedDir, b.base),
		NewOlderSource(b.cfg.Paths.BaseDir, b.cfg.Sources.OlderRoot, b.base),
	}
}

// RunID returns the correlation id of this builder's runs.
func (b *Builder) RunID() string {
	return b.runID
}

// Build runs every pass in order and returns the concatenated entries.
// Remote failures, missing roots and malformed paths are logged and
// tolerated; walk errors and context cancellation abort the build.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	start := b.now()
	ctx = services.WithRequestID(ctx, b.runID)
	result := Result{
		RunID:   b.runID,
		Entries: []Entry{},
		Stats:   Stats{Counts: make(map[string]int, len(b.passes))},
	}

	b.logger.Info("catalog build started", logging.Int("passes", len(b.passes)))
	for _, pass := range b.passes {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("build canceled: %w", err)
		}
		source := pass.Source()
		passCtx := services.WithSource(ctx, source)
		out, err := pass.Collect(passCtx)
		if err != nil {
			return Result{}, fmt.Errorf("%s pass: %w", source, err)
		}
		result.Entries = append(result.Entries, out.Entries...)
		result.Stats.Counts[source] += len(out.Entries)
		result.Stats.Skipped += out.Skipped
		if out.Unavailable && source == SourceRemote {
			result.Stats.RemoteUnavailable = true
		}
		b.logger.Info("pass complete",
			logging.String(logging.FieldSource, source),
			logging.Int(logging.FieldCount, len(out.Entries)),
			logging.Int("skipped", out.Skipped),
		)
	}
	result.Stats.Duration = b.now().Sub(start)

	b.logger.Info("catalog build complete",
		logging.Int(logging.FieldCount, len(result.Entries)),
		logging.Int("skipped", result.Stats.Skipped),
		logging.Bool("remote_unavailable", result.Stats.RemoteUnavailable),
		logging.Duration("duration", result.Stats.Duration),
	)
	return result, nil
}
