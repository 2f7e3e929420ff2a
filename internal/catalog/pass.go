package catalog

import (
	"context"
	"log/slog"

	"krokindex/internal/logging"
	"krokindex/internal/services"
)

// Pass is one ingestion pass of a build.
type Pass interface {
	Source() string
	Collect(ctx context.Context) (PassResult, error)
}

// PassResult holds the entries produced by a pass.
type PassResult struct {
	Entries []Entry
	// Skipped counts eligible files dropped because they could not be
	// classified.
	Skipped int
	// Unavailable is set when the pass could not reach its source at all.
	Unavailable bool
}

// add validates entry and appends it, or logs and counts it as skipped.
func (r *PassResult) add(logger *slog.Logger, entry Entry, origin string) {
	if err := entry.Validate(); err != nil {
		r.skip(logger, origin, err)
		return
	}
	r.Entries = append(r.Entries, entry)
}

func (r *PassResult) skip(logger *slog.Logger, origin string, err error) {
	r.Skipped++
	logging.WarnWithContext(logger, "file skipped", "catalog.skip",
		logging.String(logging.FieldPath, origin),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "move the file into the expected folder layout"),
		logging.String(logging.FieldImpact, "file missing from catalog"),
	)
}

// runLogger adds the run id and source carried by ctx to logger.
func runLogger(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id, ok := services.RequestIDFromContext(ctx); ok {
		logger = logger.With(logging.String(logging.FieldCorrelationID, id))
	}
	if source, ok := services.SourceFromContext(ctx); ok {
		logger = logger.With(logging.String(logging.FieldSource, source))
	}
	return logger
}
