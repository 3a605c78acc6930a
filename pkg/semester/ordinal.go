package semester

import (
	"regexp"
	"strings"
	"time"

	"uni-deadline-tracker/pkg/digits"
)

// ordinalDateRe captures a day (digits or placeholder sentinels, optionally
// spaced), an optional ordinal suffix and a month word. Trailing text such as
// a "23:59" time is ignored by the caller taking the first valid match.
var ordinalDateRe = regexp.MustCompile(`(?i)(\d{1,2}|#\s?#|#)\s*(st|nd|rd|th)?\s+([A-Za-z]{3,})`)

var months = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// MonthByName resolves a full month name or its 3-letter abbreviation,
// case-insensitively.
func MonthByName(word string) (time.Month, bool) {
	word = strings.ToLower(word)
	if m, ok := months[word]; ok {
		return m, true
	}
	if len(word) == 3 {
		for name, m := range months {
			if strings.HasPrefix(name, word) {
				return m, true
			}
		}
	}
	return 0, false
}

// ParseOrdinalDate extracts a day + month date from free text such as
// "3rd May" or "23rd September 23:59". Placeholder-corrupted days are
// recovered only when the ordinal suffix makes them unambiguous; anything
// else reports false.
func ParseOrdinalDate(text string, year int) (time.Time, bool) {
	for _, m := range ordinalDateRe.FindAllStringSubmatch(text, -1) {
		month, ok := MonthByName(m[3])
		if !ok {
			continue
		}
		day, ok := digits.ResolveOrdinalDay(m[1], m[2])
		if !ok {
			return time.Time{}, false
		}
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
