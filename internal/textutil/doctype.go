package textutil

import "strings"

// Document type labels.
const (
	TypeBooklet = "booklet"
	TypeBase    = "base"
)

// bookletKeywords mark merged or consolidated documents. Matching is done on
// the lower-cased filename.
var bookletKeywords = []string{
	"усі буклети",
	"all booklets",
	"все буклеты",
	"merged",
	"live",
}

// DocumentType classifies a filename as a merged booklet or a single-subject
// question base.
func DocumentType(filename string) string {
	lowered := Lower(filename)
	for _, keyword := range bookletKeywords {
		if strings.Contains(lowered, keyword) {
			return TypeBooklet
		}
	}
	return TypeBase
}
