package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cases.Caser values carry state and are not safe for concurrent use, so each
// call builds its own.

// Fold returns the Unicode case-folded form of s, suitable for
// case-insensitive comparison of mixed Cyrillic and Latin text.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Upper returns s upper-cased using Ukrainian casing rules.
func Upper(s string) string {
	return cases.Upper(language.Ukrainian).String(s)
}

// Lower returns s lower-cased using Ukrainian casing rules.
func Lower(s string) string {
	return cases.Lower(language.Ukrainian).String(s)
}
