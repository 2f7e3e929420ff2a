package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"krokindex/internal/classify"
	"krokindex/internal/logging"
	"krokindex/internal/textutil"
)

// RegularSource ingests the regular bases tree. Only files below a directory
// named MergedDir are catalogued.
type RegularSource struct {
	BaseDir   string
	Root      string
	MergedDir string
	logger    *slog.Logger
}

// NewRegularSource constructs the regular tree pass. root is a directory name
// under baseDir.
func NewRegularSource(baseDir, root, mergedDir string, logger *slog.Logger) *RegularSource {
	return &RegularSource{
		BaseDir:   baseDir,
		Root:      root,
		MergedDir: mergedDir,
		logger:    logging.NewComponentLogger(logger, "regular"),
	}
}

func (s *RegularSource) Source() string { return SourceRegular }

// Eligible reports whether a base-relative directory contains the merged
// marker as one of its segments.
func (s *RegularSource) Eligible(relDir string) bool {
	for _, part := range SplitPath(relDir) {
		if part == s.MergedDir {
			return true
		}
	}
	return false
}

func (s *RegularSource) Collect(ctx context.Context) (PassResult, error) {
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
		entry, err := RegularEntry(file.Rel)
		if err != nil {
			result.skip(logger, file.Rel, err)
			continue
		}
		result.add(logger, entry, file.Rel)
	}
	logger.Debug("regular tree classified", logging.Int(logging.FieldCount, len(result.Entries)))
	return result, nil
}

// RegularEntry classifies a base-relative path of the regular tree.
func RegularEntry(rel string) (Entry, error) {
	seg, err := RegularSchema.Bind(rel)
	if err != nil {
		return Entry{}, err
	}
	language := classify.RegularLanguage.Classify(classify.NewName(seg.Field(FieldLanguage)))
	level := textutil.Clean(seg.Field(FieldLevel))
	subject := seg.Field(FieldSubject)
	file := seg.File()
	return Entry{
		Name:     textutil.Clean(fmt.Sprintf("%s %s - %s", level, subject, textutil.TrimPDFExt(file))),
		Source:   SourceRegular,
		Path:     rel,
		ExamType: classify.RegularExamType(level, language),
		Level:    level,
		Subject:  subject,
		Type:     textutil.DocumentType(file),
	}, nil
}
