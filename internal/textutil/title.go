package textutil

import (
	"regexp"
	"strings"
)

// CanonicalKrok is the fixed spelling every Krok/Крок variant is rewritten to.
const CanonicalKrok = "КРОК"

// krokPattern matches the exam keyword in either script followed by optional
// whitespace and a stage digit.
var krokPattern = regexp.MustCompile(`(?i)(krok|крок)[\s\p{Zs}]*([123])`)

var foldedKrokKeywords = map[string]struct{}{
	Fold("krok"): {},
	Fold("крок"): {},
}

// CanonicalizeKrok rewrites every "Krok 2", "крок2", "КРОК 2" style token to
// "КРОК 2", preserving the stage numeral.
func CanonicalizeKrok(text string) string {
	return krokPattern.ReplaceAllString(text, CanonicalKrok+" ${2}")
}

// titleUnit is one comparison unit of a title: a single word, or a canonical
// "КРОК n" stage phrase, which collapses as a whole.
type titleUnit struct {
	text       string
	folded     string
	lastFolded string
	stage      bool
}

func splitUnits(text string) []titleUnit {
	words := strings.Fields(text)
	units := make([]titleUnit, 0, len(words))
	for i := 0; i < len(words); i++ {
		word := words[i]
		if word == CanonicalKrok && i+1 < len(words) && isStageDigit(words[i+1]) {
			phrase := word + " " + words[i+1]
			units = append(units, titleUnit{text: phrase, folded: Fold(phrase), lastFolded: words[i+1], stage: true})
			i++
			continue
		}
		folded := Fold(word)
		units = append(units, titleUnit{text: word, folded: folded, lastFolded: folded})
	}
	return units
}

func isStageDigit(word string) bool {
	return word == "1" || word == "2" || word == "3"
}

func (u titleUnit) bareKrok() bool {
	if u.stage {
		return false
	}
	_, ok := foldedKrokKeywords[u.folded]
	return ok
}

// CollapseRepeats drops words that case-insensitively equal the previously
// kept word and rejoins the result with single spaces. Only adjacent repeats
// collapse. A canonical "КРОК n" phrase collapses as one unit, and a bare
// Krok keyword directly before it gives way to the canonical spelling.
func CollapseRepeats(text string) string {
	units := splitUnits(text)
	kept := make([]titleUnit, 0, len(units))
	for _, unit := range units {
		if unit.stage {
			for len(kept) > 0 && kept[len(kept)-1].bareKrok() {
				kept = kept[:len(kept)-1]
			}
		}
		if len(kept) > 0 {
			prev := kept[len(kept)-1]
			if unit.folded == prev.folded {
				continue
			}
			if !unit.stage && unit.folded == prev.lastFolded {
				continue
			}
		}
		kept = append(kept, unit)
	}

	parts := make([]string, len(kept))
	for i, unit := range kept {
		parts[i] = unit.text
	}
	return strings.Join(parts, " ")
}

// Clean produces a display title from a raw file or folder name: Krok
// variants are canonicalized first, then adjacent duplicates collapse.
// Clean is idempotent.
func Clean(text string) string {
	return strings.TrimSpace(CollapseRepeats(CanonicalizeKrok(text)))
}

// TrimPDFExt removes a trailing ".pdf" extension regardless of case.
func TrimPDFExt(name string) string {
	if HasPDFExt(name) {
		return name[:len(name)-len(".pdf")]
	}
	return name
}

// HasPDFExt reports whether name ends in ".pdf", ignoring case.
func HasPDFExt(name string) bool {
	return len(name) >= len(".pdf") && strings.EqualFold(name[len(name)-len(".pdf"):], ".pdf")
}
