// Package pdfsched parses the labeled assessment schedule out of raw text
// extracted from a PDF unit outline. The document repeats a block shape per
// assessment: a multi-line title, a percentage weight line, then Week:, Day:
// and Time: label lines. The extractor loses some digit glyphs, so every
// numeric field tolerates placeholder sentinels.
package pdfsched

import (
	"regexp"
	"strings"

	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/pkg/digits"
	"uni-deadline-tracker/pkg/semester"
)

const (
	// backWindow bounds the backward scan from a Week: line to the block's
	// weight delimiter.
	backWindow = 12
	// forwardWindow bounds the forward scan for the Day:/Time: labels, which
	// can sit several lines away due to line wrapping.
	forwardWindow = 14
	// fallbackTitleLines is how many preceding lines form the title when no
	// weight delimiter is found.
	fallbackTitleLines = 3
)

var (
	weekLabelRe = regexp.MustCompile(`(?i)^week\s*:\s*(.*)$`)
	dayLabelRe  = regexp.MustCompile(`(?i)^day\s*:\s*(.*)$`)
	timeLabelRe = regexp.MustCompile(`(?i)^time\s*:\s*(.*)$`)

	// A pure weight delimiter line: "25%", "( 2 5 % )", "#0%".
	percentOnlyRe = regexp.MustCompile(`^\(?\s*[\d#][\d#\s.]*\s*%\s*\)?$`)
	// A line ending in a percentage, with leading text kept as title.
	percentTailRe = regexp.MustCompile(`^(.*?)\s*\(?\s*([\d#][\d#\s.]*)\s*%\s*\)?$`)

	exactTimeRe = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)
	// "(x 3)" multiplicity suffix; dropped outright when the digit is lost.
	multiplicityRe = regexp.MustCompile(`(?i)\(\s*x\s*([\d#\s]*)\)`)
	pageNumberRe   = regexp.MustCompile(`^[\d#\s]+$`)
)

// Parse scans the extracted text for Week:-anchored blocks and returns one
// CalendarItem per resolved due date (multi-week entries expand to one item
// per week). Unresolvable blocks degrade to TBA items instead of erroring.
func Parse(text, unit string, year, sem int, kw model.Keywords) []model.CalendarItem {
	lines := splitLines(text)
	items := []model.CalendarItem{}

	for i, line := range lines {
		m := weekLabelRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		title, weight := scanBack(lines, i, kw)
		if title == "" {
			continue
		}
		weekText, dayText, timeText := scanForward(lines, i, m[1], kw)
		items = append(items, buildItems(title, weight, weekText, dayText, timeText, year, sem, kw)...)
	}
	return items
}

// buildItems classifies one block and resolves its dates.
func buildItems(title string, weight int, weekText, dayText, timeText string, year, sem int, kw model.Keywords) []model.CalendarItem {
	weeks := digits.Weeks(weekText)
	exactDate, hasExact := semester.ParseOrdinalDate(dayText, year)
	exactTime := findTime(timeText, dayText)

	if isDescriptive(weekText, kw) || isDescriptive(dayText, kw) || (len(weeks) == 0 && !hasExact) {
		item := model.CalendarItem{Title: title, Weight: weight, IsTBA: true}
		if len(weeks) > 0 {
			// Best-effort hint only; the date stays unset.
			item.Week = weeks[len(weeks)-1]
		}
		return []model.CalendarItem{item}
	}

	if len(weeks) > 1 {
		out := make([]model.CalendarItem, 0, len(weeks))
		for _, w := range weeks {
			out = append(out, model.CalendarItem{
				Title:     title,
				Weight:    weight,
				Week:      w,
				Date:      semester.WeekToDate(sem, year, w, 0),
				ExactTime: exactTime,
			})
		}
		return out
	}

	item := model.CalendarItem{Title: title, Weight: weight, ExactTime: exactTime}
	switch {
	case hasExact:
		item.Date = exactDate
		if len(weeks) == 1 {
			item.Week = weeks[0]
		}
	default:
		item.Week = weeks[len(weeks)-1]
		item.Date = semester.WeekToDate(sem, year, item.Week, 0)
	}
	return []model.CalendarItem{item}
}

// scanBack finds the block's weight delimiter above the Week: line and joins
// the lines between delimiter and label into the title. Without a delimiter
// it falls back to the few non-noise lines immediately above.
func scanBack(lines []string, weekIdx int, kw model.Keywords) (string, int) {
	start := weekIdx - backWindow
	if start < 0 {
		start = 0
	}

	delim := -1
	weight := 0
	var delimTitlePrefix string
	for j := weekIdx - 1; j >= start; j-- {
		line := lines[j]
		if isLabel(line) {
			break
		}
		if percentOnlyRe.MatchString(line) {
			weight, _ = digits.ExtractInt(line)
			delim = j
			break
		}
		if m := percentTailRe.FindStringSubmatch(line); m != nil && strings.TrimSpace(m[1]) != "" {
			if w, ok := digits.ParseInt(m[2]); ok {
				weight = w
			}
			delim = j
			delimTitlePrefix = strings.TrimSpace(m[1])
			break
		}
	}

	var parts []string
	if delim >= 0 {
		if delimTitlePrefix != "" && !isNoise(delimTitlePrefix, kw) {
			parts = append(parts, delimTitlePrefix)
		}
		for j := delim + 1; j < weekIdx; j++ {
			if !isNoise(lines[j], kw) && !isLabel(lines[j]) {
				parts = append(parts, lines[j])
			}
		}
	} else {
		for j := weekIdx - 1; j >= start && len(parts) < fallbackTitleLines; j-- {
			if isNoise(lines[j], kw) || isLabel(lines[j]) {
				break
			}
			parts = append([]string{lines[j]}, parts...)
		}
	}

	if weight > 100 {
		weight = 0
	}
	return cleanTitle(strings.Join(parts, " ")), weight
}

// scanForward collects the wrapped Week: value and the Day:/Time: values that
// follow it. Each labeled value continues across lines until the next label
// or a noise line.
func scanForward(lines []string, weekIdx int, weekValue string, kw model.Keywords) (weekText, dayText, timeText string) {
	var week, day, tm []string
	if strings.TrimSpace(weekValue) != "" {
		week = append(week, strings.TrimSpace(weekValue))
	}

	current := &week
	end := weekIdx + 1 + forwardWindow
	if end > len(lines) {
		end = len(lines)
	}
	for j := weekIdx + 1; j < end; j++ {
		line := lines[j]
		// The next block starts at its weight delimiter or Week: label.
		if weekLabelRe.MatchString(line) || percentOnlyRe.MatchString(line) {
			break
		}
		if m := dayLabelRe.FindStringSubmatch(line); m != nil {
			current = &day
			if v := strings.TrimSpace(m[1]); v != "" {
				day = append(day, v)
			}
			continue
		}
		if m := timeLabelRe.FindStringSubmatch(line); m != nil {
			current = &tm
			if v := strings.TrimSpace(m[1]); v != "" {
				tm = append(tm, v)
			}
			continue
		}
		if isNoise(line, kw) {
			current = nil
			continue
		}
		if current != nil {
			*current = append(*current, line)
		}
	}
	return strings.Join(week, " "), strings.Join(day, " "), strings.Join(tm, " ")
}

// cleanTitle strips a corrupted "(x N)" multiplicity suffix and collapses
// whitespace and stray separators.
func cleanTitle(title string) string {
	title = multiplicityRe.ReplaceAllStringFunc(title, func(m string) string {
		sub := multiplicityRe.FindStringSubmatch(m)
		if _, ok := digits.ParseInt(sub[1]); ok {
			return m
		}
		return ""
	})
	title = strings.Join(strings.Fields(title), " ")
	return strings.Trim(title, " -,;:.")
}

// isDescriptive reports whether a week or day value is a phrase ("TBA",
// "2 hours after the workshop") rather than a datable value.
func isDescriptive(s string, kw model.Keywords) bool {
	sl := strings.ToLower(s)
	for _, phrase := range kw.TBAPhrases {
		if phrase != "" && strings.Contains(sl, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// isLabel reports whether a line belongs to a neighboring block's labeled
// fields.
func isLabel(line string) bool {
	return weekLabelRe.MatchString(line) || dayLabelRe.MatchString(line) || timeLabelRe.MatchString(line)
}

// isNoise reports whether a line is a header, footer or table label.
func isNoise(line string, kw model.Keywords) bool {
	ll := strings.ToLower(line)
	for _, n := range kw.Noise {
		if n != "" && strings.Contains(ll, strings.ToLower(n)) {
			return true
		}
	}
	// Bare page numbers, possibly with lost digits.
	return pageNumberRe.MatchString(line)
}

func findTime(candidates ...string) string {
	for _, c := range candidates {
		if m := exactTimeRe.FindStringSubmatch(c); m != nil {
			return m[1]
		}
	}
	return ""
}

// splitLines tokenizes extracted text into non-empty trimmed lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
