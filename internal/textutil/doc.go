// Package textutil normalizes the human-authored document names found in the
// exam-preparation archives.
//
// The primary use cases are:
//   - Cleaning display titles: canonical "КРОК n" tokens and collapsed
//     repeated words (Clean)
//   - Deciding whether a file is a merged booklet or a single-subject base
//     (DocumentType)
//   - Script-aware case folding for Cyrillic and Latin comparisons (Fold,
//     EqualFold, Upper)
//
// All functions are pure and safe for concurrent use.
package textutil
