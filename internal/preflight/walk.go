package preflight

import (
	"io/fs"
	"path/filepath"
)

func walkFiles(root string, visit func(name string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			visit(d.Name())
		}
		return nil
	})
}
