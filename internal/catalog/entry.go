package catalog

import (
	"fmt"
	"strings"
)

// Source labels.
const (
	SourceRemote  = "База з ЦТ"
	SourceRegular = "Звичайні Базі"
	SourceOlder   = "Старше ЦТ"
)

// RemoteSubject is the subject assigned to every remote entry.
const RemoteSubject = "Нові тести"

// Entry is one catalogued document. For remote entries Path is a download
// URL; for local entries it is relative to the base directory.
type Entry struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Path     string `json:"path"`
	ExamType string `json:"exam_type"`
	Level    string `json:"level"`
	Subject  string `json:"subject"`
	Type     string `json:"type"`
}

// IsRemote reports whether Path is a retrieval URL rather than a local path.
func (e Entry) IsRemote() bool {
	return e.Source == SourceRemote
}

// Validate checks that every field is populated and the name carries no
// surrounding whitespace.
func (e Entry) Validate() error {
	fields := []struct {
		key   string
		value string
	}{
		{"name", e.Name},
		{"source", e.Source},
		{"path", e.Path},
		{"exam_type", e.ExamType},
		{"level", e.Level},
		{"subject", e.Subject},
		{"type", e.Type},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: empty %s", ErrInvalidEntry, f.key)
		}
	}
	if strings.TrimSpace(e.Name) != e.Name {
		return fmt.Errorf("%w: name %q has surrounding whitespace", ErrInvalidEntry, e.Name)
	}
	return nil
}
