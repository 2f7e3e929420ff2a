package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Field names shared by the path schemas.
const (
	FieldRoot     = "root"
	FieldLanguage = "language"
	FieldMerged   = "merged"
	FieldProgram  = "program"
	FieldLevel    = "level"
	FieldSubject  = "subject"
)

// PathSchema names the meaning of leading path segments for one directory
// layout. MinSegments counts the file name itself.
type PathSchema struct {
	Name        string
	MinSegments int
	Fields      map[string]int
}

var (
	// RegularSchema: <root>/<language>/<merged>/<level>/<subject>/.../<file>.
	RegularSchema = PathSchema{
		Name:        "regular",
		MinSegments: 6,
		Fields: map[string]int{
			FieldRoot:     0,
			FieldLanguage: 1,
			FieldMerged:   2,
			FieldLevel:    3,
			FieldSubject:  4,
		},
	}
	// OlderEDKISchema: <root>/ЄДКІ/<level>/<subject>/.../<file>.
	OlderEDKISchema = PathSchema{
		Name:        "older-edki",
		MinSegments: 5,
		Fields: map[string]int{
			FieldRoot:    0,
			FieldProgram: 1,
			FieldLevel:   2,
			FieldSubject: 3,
		},
	}
	// OlderSchema: <root>/<level>/<subject>/.../<file>.
	OlderSchema = PathSchema{
		Name:        "older",
		MinSegments: 4,
		Fields: map[string]int{
			FieldRoot:    0,
			FieldLevel:   1,
			FieldSubject: 2,
		},
	}
)

// SplitPath splits a base-relative path on the OS separator.
func SplitPath(rel string) []string {
	cleaned := filepath.Clean(rel)
	if cleaned == "." {
		return nil
	}
	return strings.Split(cleaned, string(filepath.Separator))
}

// Segments is a path bound to a schema.
type Segments struct {
	schema PathSchema
	parts  []string
}

// Bind checks rel against the schema. Paths with fewer segments than the
// schema requires fail with ErrLayout.
func (s PathSchema) Bind(rel string) (Segments, error) {
	parts := SplitPath(rel)
	if len(parts) < s.MinSegments {
		return Segments{}, fmt.Errorf("%w: %s schema needs %d segments, %q has %d", ErrLayout, s.Name, s.MinSegments, rel, len(parts))
	}
	return Segments{schema: s, parts: parts}, nil
}

// Field returns the segment stored under name. Unknown names return "".
func (s Segments) Field(name string) string {
	idx, ok := s.schema.Fields[name]
	if !ok || idx >= len(s.parts) {
		return ""
	}
	return s.parts[idx]
}

// File returns the final segment.
func (s Segments) File() string {
	if len(s.parts) == 0 {
		return ""
	}
	return s.parts[len(s.parts)-1]
}

// Schema returns the schema the path was bound to.
func (s Segments) Schema() PathSchema {
	return s.schema
}
