// Package htmlcal parses the per-week HTML program calendar table from a unit
// outline page into dated calendar items. The table is the authoritative
// source of when assessments are due.
package htmlcal

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/pkg/semester"
)

var (
	// "(09:00 3rd May)", an inline override replacing the row's base date.
	overrideRe = regexp.MustCompile(`\(\s*(\d{1,2}:\d{2})\s+([^)]+)\)`)
	// "(25%)", an inline weight annotation.
	weightRe = regexp.MustCompile(`\(\s*(\d{1,3})\s*%\s*\)`)
	// Any remaining bracketed note is stripped from titles.
	bracketRe = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// WeekHints maps normalized cell text to the teaching week it appeared in.
// It lets the caller attach an approximate week to items that never received
// a date of their own.
type WeekHints map[string]int

// calendarTable is the structural skeleton of a located calendar table: the
// begin-date column, the assessment-bearing columns and the data rows.
type calendarTable struct {
	beginCol   int
	assessCols []int
	rows       [][]string
}

// Parse extracts one CalendarItem per non-empty assessment cell of each
// teaching-week row. It returns an empty slice when the table lacks its
// structural anchors (begin-date column, assessment columns); the caller then
// falls back to TBA entries from the assessment inventory.
func Parse(html, unit string, sem, year int, kw model.Keywords) []model.CalendarItem {
	t, ok := locateTable(html)
	if !ok {
		return nil
	}

	items := []model.CalendarItem{}
	week := 0
	for _, row := range t.rows {
		if t.beginCol >= len(row) {
			continue
		}
		dateCell := row[t.beginCol]
		if matchesAny(dateCell, kw.NonTeaching) {
			continue
		}
		week++

		baseDate, hasBase := semester.ParseOrdinalDate(dateCell, year)
		for _, c := range t.assessCols {
			if c >= len(row) {
				continue
			}
			if item, ok := parseCell(row[c], model.ClampWeek(week), baseDate, hasBase, year); ok {
				items = append(items, item)
			}
		}
	}
	return items
}

// BuildWeekHints records normalized text → week for every cell of every
// teaching-week row, not just assessment columns.
func BuildWeekHints(html string, kw model.Keywords) WeekHints {
	t, ok := locateTable(html)
	hints := WeekHints{}
	if !ok {
		return hints
	}

	week := 0
	for _, row := range t.rows {
		if t.beginCol >= len(row) || matchesAny(row[t.beginCol], kw.NonTeaching) {
			continue
		}
		week++
		for _, cell := range row {
			if key := NormalizeHint(cell); key != "" {
				if _, exists := hints[key]; !exists {
					hints[key] = model.ClampWeek(week)
				}
			}
		}
	}
	return hints
}

// NormalizeHint reduces text to lowercase letters only, the key form shared
// by hint recording and lookup.
func NormalizeHint(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseCell turns one assessment cell into a CalendarItem. Empty cells and
// lone "-" markers report false.
func parseCell(cell string, week int, baseDate time.Time, hasBase bool, year int) (model.CalendarItem, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "-" {
		return model.CalendarItem{}, false
	}

	item := model.CalendarItem{
		Week:            week,
		Date:            baseDate,
		CalendarSourced: true,
	}
	hasDate := hasBase

	if m := overrideRe.FindStringSubmatch(cell); m != nil {
		if d, ok := semester.ParseOrdinalDate(m[2], year); ok {
			item.ExactTime = m[1]
			item.Date = d
			hasDate = true
		}
	}
	if m := weightRe.FindStringSubmatch(cell); m != nil {
		if w, err := strconv.Atoi(m[1]); err == nil && w <= 100 {
			item.Weight = w
		}
	}

	title := strings.TrimSpace(spaceRe.ReplaceAllString(bracketRe.ReplaceAllString(cell, " "), " "))
	title = strings.Trim(title, " -,;:")
	if title == "" {
		return model.CalendarItem{}, false
	}
	item.Title = title
	item.IsTBA = !hasDate
	return item, true
}

// locateTable finds the first table whose header row carries a "begin date"
// column and at least one assessment column.
func locateTable(html string) (calendarTable, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return calendarTable{}, false
	}

	var found calendarTable
	ok := false
	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		trs := tbl.Find("tr")
		if trs.Length() < 2 {
			return true
		}
		header := cellTexts(trs.First())
		beginCol, assessCols := classifyColumns(header)
		if beginCol == -1 || len(assessCols) == 0 {
			return true
		}

		var rows [][]string
		trs.Slice(1, trs.Length()).Each(func(_ int, tr *goquery.Selection) {
			rows = append(rows, cellTexts(tr))
		})
		found = calendarTable{beginCol: beginCol, assessCols: assessCols, rows: rows}
		ok = true
		return false
	})
	return found, ok
}

// classifyColumns picks the begin-date column and the assessment-bearing
// columns. Content columns (workshop/lab/quiz headers that are really session
// listings) are only taken when they do not also name lectures or tutorials.
func classifyColumns(header []string) (int, []int) {
	beginCol := -1
	var assessCols []int
	for i, h := range header {
		hl := strings.ToLower(h)
		switch {
		case strings.Contains(hl, "begin") && strings.Contains(hl, "date"):
			if beginCol == -1 {
				beginCol = i
			}
		case strings.Contains(hl, "assessment"):
			assessCols = append(assessCols, i)
		case containsAny(hl, "workshop", "lab", "quiz") && !containsAny(hl, "lecture", "tutorial"):
			assessCols = append(assessCols, i)
		}
	}
	return beginCol, assessCols
}

func cellTexts(tr *goquery.Selection) []string {
	var cells []string
	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(spaceRe.ReplaceAllString(cell.Text(), " ")))
	})
	return cells
}

func matchesAny(s string, keywords []string) bool {
	sl := strings.ToLower(s)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(sl, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
