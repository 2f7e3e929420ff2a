package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"krokindex/internal/classify"
	"krokindex/internal/logging"
	"krokindex/internal/textutil"
)

const (
	olderPDFDir   = "pdf"
	olderEDKIMark = "єдкі"
)

// OlderSource ingests the older database tree.
type OlderSource struct {
	BaseDir string
	Root    string
	logger  *slog.Logger
}

// NewOlderSource constructs the older tree pass.
func NewOlderSource(baseDir, root string, logger *slog.Logger) *OlderSource {
	return &OlderSource{
		BaseDir: baseDir,
		Root:    root,
		logger:  logging.NewComponentLogger(logger, "older"),
	}
}

func (s *OlderSource) Source() string { return SourceOlder }

// Eligible reports whether files in a base-relative directory belong in the
// catalog: the directory ends in a "pdf" folder or sits anywhere under ЄДКІ.
func (s *OlderSource) Eligible(relDir string) bool {
	parts := SplitPath(relDir)
	if len(parts) > 0 && textutil.EqualFold(parts[len(parts)-1], olderPDFDir) {
		return true
	}
	return strings.Contains(textutil.Lower(relDir), olderEDKIMark)
}

func (s *OlderSource) Collect(ctx context.Context) (PassResult, error) {
	var result PassResult
	logger := runLogger(ctx, s.logger)
	root := joinRoot(s.BaseDir, s.Root)
	files, found, err := walkPDFs(ctx, s.BaseDir, root)
	if err != nil {
		return result, err
	}
	if !found {
		logRootMissing(logger, root)
		return result, nil
	}

	for _, file := range files {
		if !s.Eligible(file.Dir) {
			continue
		}
		entry, err := OlderEntry(file.Rel)
		if err != nil {
			result.skip(logger, file.Rel, err)
			continue
		}
		result.add(logger, entry, file.Rel)
	}
	logger.Debug("older tree classified", logging.Int(logging.FieldCount, len(result.Entries)))
	return result, nil
}

// OlderSchemaFor picks the schema for a base-relative path: the ЄДКІ layout
// when the first folder under the root is ЄДКІ (any case).
func OlderSchemaFor(rel string) PathSchema {
	parts := SplitPath(rel)
	if len(parts) > 2 && textutil.EqualFold(parts[1], olderEDKIMark) {
		return OlderEDKISchema
	}
	return OlderSchema
}

// OlderEntry classifies a base-relative path of the older tree.
func OlderEntry(rel string) (Entry, error) {
	schema := OlderSchemaFor(rel)
	seg, err := schema.Bind(rel)
	if err != nil {
		return Entry{}, err
	}
	examType := classify.ExamKrokUkrainian
	if schema.Name == OlderEDKISchema.Name {
		examType = classify.ExamEDKI
	}
	level := textutil.Clean(seg.Field(FieldLevel))
	subject := seg.Field(FieldSubject)
	return Entry{
		Name:     textutil.Clean(fmt.Sprintf("%s %s", level, subject)),
		Source:   SourceOlder,
		Path:     rel,
		ExamType: examType,
		Level:    level,
		Subject:  subject,
		Type:     textutil.TypeBooklet,
	}, nil
}
