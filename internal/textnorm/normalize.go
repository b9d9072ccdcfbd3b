// Package textnorm implements the text-normalization pipelines shared by
// the indexer, scorer, and matching engine: a minimal whitespace-only
// pass for display, a standard lower-casing/diacritic-folding pass used
// for indexing, and a language-aware matching pass that additionally
// expands abbreviations, drops stopwords, and stems.
//
// Diacritic folding uses golang.org/x/text/unicode/norm: decompose to
// NFD, then drop combining marks.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	bracketedRe     = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)
	punctuationRe   = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	singleLetterRun = regexp.MustCompile(`\b(?:\p{L}\s+){1,}\p{L}\b`)
)

// NormalizeMinimal collapses whitespace only; case and punctuation are
// preserved. Used for display of "original" fields.
func NormalizeMinimal(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// RemoveBracketedContent strips bracketed/parenthetical annotations such
// as "[microform]" or "(electronic resource)", mirroring
// original_source's remove_bracketed_content helper used by the MARC
// loader's title assembly.
func RemoveBracketedContent(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(bracketedRe.ReplaceAllString(s, " "), " "))
}

// foldDiacritics decomposes s to NFD and drops combining marks, folding
// accented Latin characters to their ASCII base letters.
func foldDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// collapseSingleLetterRuns turns "u s a" into "usa", matching the
// the requirement to fold initialism-style runs of single-letter
// words together before they're tokenized.
func collapseSingleLetterRuns(s string) string {
	return singleLetterRun.ReplaceAllStringFunc(s, func(run string) string {
		return strings.ReplaceAll(run, " ", "")
	})
}

// NormalizeStandard lower-cases, folds diacritics to ASCII, removes
// bracketed annotations, replaces punctuation with spaces, collapses
// single-letter word runs, and collapses whitespace. Idempotent.
func NormalizeStandard(s string) string {
	if s == "" {
		return ""
	}
	s = RemoveBracketedContent(s)
	s = strings.ToLower(s)
	s = foldDiacritics(s)
	s = punctuationRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = collapseSingleLetterRuns(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits a normalized string on whitespace. Callers wanting
// tokens of a minimum length should filter the result themselves
// (the indexer requires length >= 2).
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
