package htmlcal_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"uni-deadline-tracker/internal/extract/htmlcal"
	"uni-deadline-tracker/internal/model"
)

const calendarHTML = `
<html><body>
<table>
  <tr><th>Week</th><th>Begin Date</th><th>Lecture</th><th>Workshop</th><th>Assessment Due</th></tr>
  <tr><td>1.</td><td>23 February</td><td>Intro</td><td>-</td><td></td></tr>
  <tr><td>2.</td><td>2 March</td><td>Variables</td><td>Worksheet</td><td>Quiz (10%)</td></tr>
  <tr><td></td><td>Tuition Free Week</td><td></td><td></td><td></td></tr>
  <tr><td>3.</td><td>16 March</td><td>Loops</td><td>-</td><td>Assignment [group] (09:00 3rd May)</td></tr>
</table>
</body></html>`

func TestParse(t *testing.T) {
	kw := model.DefaultKeywords()
	items := htmlcal.Parse(calendarHTML, "COMP1000", 1, 2026, kw)

	// Week 2 row: Workshop cell + Assessment cell. Week 3 row: Assessment cell.
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %#v", len(items), items)
	}

	worksheet := items[0]
	if worksheet.Title != "Worksheet" || worksheet.Week != 2 {
		t.Errorf("unexpected worksheet item: %#v", worksheet)
	}
	if want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC); !worksheet.Date.Equal(want) {
		t.Errorf("worksheet date = %v, want %v", worksheet.Date, want)
	}
	if !worksheet.CalendarSourced || worksheet.IsTBA {
		t.Errorf("worksheet flags wrong: %#v", worksheet)
	}

	quiz := items[1]
	if quiz.Title != "Quiz" || quiz.Weight != 10 || quiz.Week != 2 {
		t.Errorf("unexpected quiz item: %#v", quiz)
	}

	// The break row is skipped entirely, so the next row is teaching week 3,
	// and its inline override replaces the row's base date.
	assignment := items[2]
	if assignment.Title != "Assignment" || assignment.Week != 3 {
		t.Errorf("unexpected assignment item: %#v", assignment)
	}
	if want := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC); !assignment.Date.Equal(want) {
		t.Errorf("assignment date = %v, want %v", assignment.Date, want)
	}
	if assignment.ExactTime != "09:00" {
		t.Errorf("assignment exact time = %q, want 09:00", assignment.ExactTime)
	}
}

func TestParseRoundTripWeekDates(t *testing.T) {
	// Rows carry the real begin dates for semester 1 2026, so every non-TBA
	// item's date must equal the week arithmetic for its week number.
	kw := model.DefaultKeywords()
	items := htmlcal.Parse(calendarHTML, "COMP1000", 1, 2026, kw)
	for _, it := range items {
		if it.IsTBA || it.ExactTime != "" {
			continue
		}
		want := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC).AddDate(0, 0, (it.Week-1)*7)
		if !it.Date.Equal(want) {
			t.Errorf("item %q week %d: date %v, want %v", it.Title, it.Week, it.Date, want)
		}
	}
}

func TestParseNoStructuralAnchor(t *testing.T) {
	kw := model.DefaultKeywords()

	t.Run("No begin date column", func(t *testing.T) {
		html := `<table><tr><th>Week</th><th>Assessment</th></tr><tr><td>1</td><td>Quiz</td></tr></table>`
		if items := htmlcal.Parse(html, "COMP1000", 1, 2026, kw); len(items) != 0 {
			t.Errorf("expected no items, got %#v", items)
		}
	})

	t.Run("No assessment columns", func(t *testing.T) {
		html := `<table><tr><th>Begin Date</th><th>Lecture</th></tr><tr><td>23 February</td><td>Intro</td></tr></table>`
		if items := htmlcal.Parse(html, "COMP1000", 1, 2026, kw); len(items) != 0 {
			t.Errorf("expected no items, got %#v", items)
		}
	})

	t.Run("Not HTML at all", func(t *testing.T) {
		if items := htmlcal.Parse("plain text", "COMP1000", 1, 2026, kw); len(items) != 0 {
			t.Errorf("expected no items, got %#v", items)
		}
	})
}

func TestParseClampsWeekCounter(t *testing.T) {
	// A table with more than 20 kept rows must not emit week numbers past
	// the teaching range; items beyond it carry "no week".
	var b strings.Builder
	b.WriteString(`<table><tr><th>Begin Date</th><th>Assessment Due</th></tr>`)
	for i := 1; i <= 22; i++ {
		fmt.Fprintf(&b, `<tr><td>n/a</td><td>Worksheet %d</td></tr>`, i)
	}
	b.WriteString(`</table>`)

	items := htmlcal.Parse(b.String(), "COMP1000", 1, 2026, model.DefaultKeywords())
	if len(items) != 22 {
		t.Fatalf("expected 22 items, got %d", len(items))
	}
	if items[19].Week != 20 {
		t.Errorf("row 20 week = %d, want 20", items[19].Week)
	}
	if items[20].Week != 0 || items[21].Week != 0 {
		t.Errorf("rows past 20 weeks = %d, %d, want 0", items[20].Week, items[21].Week)
	}
}

func TestBuildWeekHints(t *testing.T) {
	kw := model.DefaultKeywords()
	hints := htmlcal.BuildWeekHints(calendarHTML, kw)

	if got := hints[htmlcal.NormalizeHint("Worksheet")]; got != 2 {
		t.Errorf("worksheet hint = %d, want 2", got)
	}
	// Content columns are recorded too, not just assessment columns.
	if got := hints[htmlcal.NormalizeHint("Loops")]; got != 3 {
		t.Errorf("loops hint = %d, want 3", got)
	}
	if _, ok := hints[""]; ok {
		t.Error("empty cells must not be recorded")
	}
}
