package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"krokindex/internal/logging"
	"krokindex/internal/textutil"
)

// localFile is a PDF found under a local root. Rel and Dir are relative to
// the base directory.
type localFile struct {
	Rel  string
	Dir  string
	Name string
}

// walkPDFs collects PDF files under root in lexical order. found is false
// when root does not exist.
func walkPDFs(ctx context.Context, base, root string) (files []localFile, found bool, err error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, false, fmt.Errorf("source root %s is not a directory", root)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !textutil.HasPDFExt(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		files = append(files, localFile{
			Rel:  rel,
			Dir:  filepath.Dir(rel),
			Name: d.Name(),
		})
		return nil
	})
	if err != nil {
		return nil, true, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, true, nil
}

func joinRoot(base, root string) string {
	return filepath.Join(base, root)
}

func logRootMissing(logger *slog.Logger, root string) {
	logging.WarnWithContext(logger, "source root not found", "catalog.root_missing",
		logging.String(logging.FieldPath, root),
		logging.String(logging.FieldErrorHint, "check paths.base_dir and the sources section"),
		logging.String(logging.FieldImpact, "source skipped"),
	)
}
