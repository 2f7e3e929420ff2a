package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"krokindex/internal/classify"
	"krokindex/internal/logging"
	"krokindex/internal/services"
	"krokindex/internal/services/github"
	"krokindex/internal/textutil"
)

// Lister lists a repository directory.
type Lister interface {
	ListDirectory(ctx context.Context, repository, dir string) ([]github.ContentEntry, error)
}

// RemoteSource ingests PDFs from a GitHub directory listing.
type RemoteSource struct {
	Lister     Lister
	Repository string
	Dir        string
	Enabled    bool
	logger     *slog.Logger
}

// NewRemoteSource constructs the remote pass.
func NewRemoteSource(lister Lister, repository, dir string, enabled bool, logger *slog.Logger) *RemoteSource {
	return &RemoteSource{
		Lister:     lister,
		Repository: repository,
		Dir:        dir,
		Enabled:    enabled,
		logger:     logging.NewComponentLogger(logger, "remote"),
	}
}

func (s *RemoteSource) Source() string { return SourceRemote }

// Fetch lists the remote directory. Failures are wrapped with
// ErrRemoteUnavailable.
func (s *RemoteSource) Fetch(ctx context.Context) ([]github.ContentEntry, error) {
	if s.Lister == nil {
		return nil, fmt.Errorf("%w: no listing client", ErrRemoteUnavailable)
	}
	entries, err := s.Lister.ListDirectory(ctx, s.Repository, s.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	return entries, nil
}

// Collect lists the remote directory and classifies every PDF file in it.
// A failed listing is logged and yields no entries; only cancellation of ctx
// is returned as an error.
func (s *RemoteSource) Collect(ctx context.Context) (PassResult, error) {
	var result PassResult
	logger := runLogger(ctx, s.logger)
	if !s.Enabled {
		logger.Info("remote listing disabled")
		return result, nil
	}

	listing, err := s.Fetch(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		result.Unavailable = true
		logging.WarnWithContext(logger, "remote listing failed", "remote.unavailable",
			logging.String("repository", s.Repository),
			logging.String(logging.FieldPath, s.Dir),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, services.Hint(err)),
			logging.String(logging.FieldImpact, "remote documents missing from catalog"),
		)
		return result, nil
	}

	for _, item := range listing {
		if !item.IsFile() || !textutil.HasPDFExt(item.Name) {
			continue
		}
		if item.DownloadURL == "" {
			result.skip(logger, item.Path, fmt.Errorf("%w: no download url", ErrInvalidEntry))
			continue
		}
		result.add(logger, RemoteEntry(item.Name, item.DownloadURL), item.DownloadURL)
	}
	logger.Debug("remote listing classified",
		logging.Int(logging.FieldCount, len(result.Entries)),
		logging.Int("listed", len(listing)),
	)
	return result, nil
}

// RemoteEntry classifies one remote file.
func RemoteEntry(filename, downloadURL string) Entry {
	raw := textutil.TrimPDFExt(filename)
	name := classify.NewName(raw)
	return Entry{
		Name:     textutil.Clean(raw),
		Source:   SourceRemote,
		Path:     downloadURL,
		ExamType: classify.RemoteExamType.Classify(name),
		Level:    classify.RemoteLevel.Classify(name),
		Subject:  RemoteSubject,
		Type:     textutil.TypeBooklet,
	}
}
