// Package digits parses numbers out of PDF-extracted text in which digit
// glyphs may have been replaced by a placeholder sentinel. The sentinel is
// treated as a first-class "unknown digit" token: a number containing one is
// unresolvable unless surrounding context (an ordinal suffix) pins it down.
package digits

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder is the sentinel the upstream PDF text extractor substitutes for
// a digit glyph it could not recover.
const Placeholder = "#"

// MaxWeek bounds teaching-week numbers; anything outside [1, MaxWeek] is
// treated as "no week".
const MaxWeek = 20

var (
	numberRunRe = regexp.MustCompile(`[\d#](?:[\d#]|\s[\d#])*`)
	weekRangeRe = regexp.MustCompile(`([\d#]+)\s*[-–]\s*([\d#]+)`)
)

// Has reports whether s contains at least one placeholder sentinel.
func Has(s string) bool {
	return strings.Contains(s, Placeholder)
}

// collapse strips the single spaces a PDF extractor may insert between the
// digits of a multi-digit value ("2 3" stays, "# #" becomes "##").
func collapse(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// ParseInt parses a digit run as an integer. A run containing a placeholder
// is unresolvable.
func ParseInt(s string) (int, bool) {
	s = collapse(strings.TrimSpace(s))
	if s == "" || Has(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractInt returns the first resolvable integer in s. Runs corrupted by
// placeholders are skipped rather than guessed at.
func ExtractInt(s string) (int, bool) {
	for _, run := range numberRunRe.FindAllString(s, -1) {
		if n, ok := ParseInt(run); ok {
			return n, true
		}
	}
	return 0, false
}

// ResolveOrdinalDay recovers the day of month from an ordinal day expression
// whose digits may be placeholders. The suffix makes some corrupted values
// unambiguous:
//
//	"#st"/"#nd"/"#rd" → 1/2/3, "#th" → unresolvable
//	"##nd"/"##rd"     → 22/23, "##st"/"##th" → unresolvable
//
// Intact digits resolve regardless of suffix.
func ResolveOrdinalDay(day, suffix string) (int, bool) {
	day = collapse(strings.TrimSpace(day))
	suffix = strings.ToLower(strings.TrimSpace(suffix))

	if !Has(day) {
		n, err := strconv.Atoi(day)
		if err != nil || n < 1 || n > 31 {
			return 0, false
		}
		return n, true
	}

	// Mixed digit/placeholder runs ("2#") stay ambiguous.
	if strings.Trim(day, Placeholder) != "" {
		return 0, false
	}

	switch len(day) {
	case 1:
		switch suffix {
		case "st":
			return 1, true
		case "nd":
			return 2, true
		case "rd":
			return 3, true
		}
	case 2:
		switch suffix {
		case "nd":
			return 22, true
		case "rd":
			return 23, true
		}
	}
	return 0, false
}

// Weeks extracts every teaching-week number listed in s, expanding ranges
// ("2-12") and accepting comma lists ("2, 4, 6"). Corrupted numbers are
// skipped, results outside [1, MaxWeek] are dropped, duplicates are removed
// in order of first appearance.
func Weeks(s string) []int {
	var weeks []int
	seen := make(map[int]bool)
	add := func(w int) {
		if w >= 1 && w <= MaxWeek && !seen[w] {
			weeks = append(weeks, w)
			seen[w] = true
		}
	}

	for _, m := range weekRangeRe.FindAllStringSubmatch(s, -1) {
		lo, okLo := ParseInt(m[1])
		hi, okHi := ParseInt(m[2])
		if !okLo || !okHi || lo > hi {
			continue
		}
		for w := lo; w <= hi; w++ {
			add(w)
		}
	}

	rest := weekRangeRe.ReplaceAllString(s, " ")
	for _, run := range numberRunRe.FindAllString(rest, -1) {
		if n, ok := ParseInt(run); ok {
			add(n)
		}
	}
	return weeks
}
