package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"krokindex/internal/fileutil"
)

// WriteJSON atomically writes entries as an indented JSON array. Non-ASCII
// text is written literally and an empty catalog is written as [].
func WriteJSON(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return EncodeJSON(w, entries)
	})
	if err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}

// EncodeJSON writes entries to w in the artifact format.
func EncodeJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// ReadJSON loads a catalog artifact.
func ReadJSON(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return entries, nil
}
