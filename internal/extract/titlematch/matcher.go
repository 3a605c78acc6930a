// Package titlematch decides whether two differently-worded assessment titles
// name the same assessment. Matching is deterministic: an ordered list of
// strategies is tried and the first hit wins.
package titlematch

import (
	"strings"
	"unicode"
)

// TitlesOverlap reports whether a and b plausibly name the same assessment.
//
// Strategies, in order:
//  1. First-word prefix: "Laboratory Report" ~ "Lab Report"
//  2. Normalized exact match: "E-Test" ~ "eTest"
//  3. Single-word containment: "Quiz" ~ "Workshop Quiz"
func TitlesOverlap(a, b string) bool {
	if firstWordPrefix(a, b) {
		return true
	}
	if normalize(a) != "" && normalize(a) == normalize(b) {
		return true
	}
	return singleWordContainment(a, b)
}

// tokens splits a title into lowercased letter-only words of at least three
// characters.
func tokens(s string) []string {
	var out []string
	for _, w := range splitWords(s) {
		if len(w) >= 3 {
			out = append(out, w)
		}
	}
	return out
}

// splitWords extracts lowercased runs of letters.
func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// normalize strips everything but letters and lowercases.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstWordPrefix(a, b string) bool {
	ta, tb := tokens(a), tokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}
	return strings.HasPrefix(ta[0], tb[0]) || strings.HasPrefix(tb[0], ta[0])
}

// singleWordContainment matches when the shorter title is a single word of at
// least four letters appearing as a prefix or suffix of any word of the
// longer title.
func singleWordContainment(a, b string) bool {
	short, long := a, b
	if len(normalize(short)) > len(normalize(long)) {
		short, long = long, short
	}
	shortWords := splitWords(short)
	if len(shortWords) != 1 || len(shortWords[0]) < 4 {
		return false
	}
	word := shortWords[0]
	for _, t := range splitWords(long) {
		if strings.HasPrefix(t, word) || strings.HasSuffix(t, word) {
			return true
		}
	}
	return false
}
