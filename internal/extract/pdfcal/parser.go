// Package pdfcal parses the week-by-week program calendar section of an
// extracted PDF unit outline. It exists for documents whose digit glyphs were
// lost: dates come from a running calendar-week counter anchored to the
// semester start, never from the printed (possibly corrupted) day numbers.
package pdfcal

import (
	"regexp"
	"strings"

	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/pkg/semester"
)

var (
	// A full week row: week ordinal, day number, month name and inline
	// content on one line. Digits may be placeholder sentinels.
	fullRowRe = regexp.MustCompile(`(?i)^([\d#]{1,2})\s*[.):|-]?\s+([\d#]{1,2}|#\s#)\s*(?:st|nd|rd|th)?\s+([A-Za-z]{3,})\b\s*(.*)$`)
	// A split week row: just the ordinal and a separator, content following
	// on the next lines.
	splitRowRe = regexp.MustCompile(`^([\d#]{1,2})\s*[.):|-]\s*$`)
)

// Parse locates the program calendar section and returns one CalendarItem per
// assessment keyword found in a teaching-week row. Every week row advances
// the calendar-week counter, teaching or not, so dates stay aligned across
// breaks.
func Parse(text, unit string, year, sem int, kw model.Keywords) []model.CalendarItem {
	lines := splitLines(text)
	start := headerIndex(lines, kw)
	if start == -1 {
		return nil
	}

	items := []model.CalendarItem{}
	weekCount := 0
	teaching := false
	active := false
	var content []string

	flush := func() {
		if active && teaching && weekCount > 0 {
			items = append(items, rowItems(strings.Join(content, " "), weekCount, year, sem, kw)...)
		}
		content = nil
	}

	for _, line := range lines[start+1:] {
		if m := fullRowRe.FindStringSubmatch(line); m != nil && monthKnown(m[3]) {
			flush()
			weekCount++
			active = true
			teaching = !matchesAny(line, kw.NonTeaching)
			if rest := strings.TrimSpace(m[4]); rest != "" {
				content = append(content, rest)
			}
			continue
		}
		if splitRowRe.MatchString(line) {
			flush()
			weekCount++
			active = true
			teaching = true
			continue
		}
		if active {
			if matchesAny(line, kw.NonTeaching) {
				teaching = false
			}
			content = append(content, line)
		}
	}
	flush()
	return items
}

// rowItems applies the ordered assessment keyword table to a row's joined
// content. A keyword already covered by an earlier, more specific match is
// suppressed ("Workshop Quiz" swallows "Quiz").
func rowItems(content string, week, year, sem int, kw model.Keywords) []model.CalendarItem {
	cl := strings.ToLower(content)
	var items []model.CalendarItem
	var matched []string

	for _, keyword := range kw.Assessments {
		kl := strings.ToLower(keyword)
		if !strings.Contains(cl, kl) {
			continue
		}
		subsumed := false
		for _, prev := range matched {
			if strings.Contains(prev, kl) {
				subsumed = true
				break
			}
		}
		if subsumed {
			continue
		}
		matched = append(matched, kl)
		items = append(items, model.CalendarItem{
			Title:           keyword,
			Week:            model.ClampWeek(week),
			Date:            semester.WeekToDate(sem, year, week, 0),
			CalendarSourced: true,
		})
	}
	return items
}

// headerIndex finds the short, exact section header line that opens the
// program calendar.
func headerIndex(lines []string, kw model.Keywords) int {
	for i, line := range lines {
		if len(line) > 40 {
			continue
		}
		ll := strings.ToLower(strings.TrimRight(line, ": "))
		for _, h := range kw.CalendarHeaders {
			if strings.Contains(ll, strings.ToLower(h)) {
				return i
			}
		}
	}
	return -1
}

func monthKnown(word string) bool {
	_, ok := semester.MonthByName(word)
	return ok
}

func matchesAny(s string, keywords []string) bool {
	sl := strings.ToLower(s)
	for _, k := range keywords {
		if k != "" && strings.Contains(sl, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
