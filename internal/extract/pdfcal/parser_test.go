package pdfcal_test

import (
	"testing"
	"time"

	"uni-deadline-tracker/internal/extract/pdfcal"
	"uni-deadline-tracker/internal/model"
)

func parse(t *testing.T, text string) []model.CalendarItem {
	t.Helper()
	return pdfcal.Parse(text, "COMP1000", 2026, 1, model.DefaultKeywords())
}

func TestParseFullRows(t *testing.T) {
	text := `
Program Calendar
1. 23 February Introduction
2. 2 March Workshop Quiz due
3. 9 March Lectures continue
`
	items := parse(t, text)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %#v", len(items), items)
	}
	it := items[0]
	if it.Title != "Workshop Quiz" || it.Week != 2 {
		t.Errorf("unexpected item: %#v", it)
	}
	if want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC); !it.Date.Equal(want) {
		t.Errorf("date = %v, want %v", it.Date, want)
	}
	if !it.CalendarSourced || it.IsTBA {
		t.Errorf("flags wrong: %#v", it)
	}
}

func TestParseCounterSpansBreaks(t *testing.T) {
	// The tuition-free row still occupies a calendar slot, so the assignment
	// lands in calendar week 4 even though it is only the third teaching week.
	text := `
Program Calendar
1. 23 February Introduction
2. 2 March Worksheet
3. 9 March Tuition Free Week
4. 16 March Assignment due
`
	items := parse(t, text)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %#v", len(items), items)
	}
	assignment := items[1]
	if assignment.Title != "Assignment" || assignment.Week != 4 {
		t.Errorf("unexpected item: %#v", assignment)
	}
	if want := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC); !assignment.Date.Equal(want) {
		t.Errorf("date = %v, want %v (counter must span the break)", assignment.Date, want)
	}
}

func TestParseSplitRows(t *testing.T) {
	// Split rows carry only the ordinal; content follows on its own lines.
	// Digit loss on the ordinal does not matter because the counter drives
	// the arithmetic.
	text := `
Program Calendar
#.
Introduction to the unit
#.
Practical Test in the laboratory
`
	items := parse(t, text)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %#v", len(items), items)
	}
	if items[0].Title != "Practical Test" || items[0].Week != 2 {
		t.Errorf("unexpected item: %#v", items[0])
	}
}

func TestParseKeywordSubsumption(t *testing.T) {
	text := `
Program Calendar
1. 23 February Workshop Quiz this week
`
	items := parse(t, text)
	if len(items) != 1 {
		t.Fatalf("expected exactly 1 item (Quiz subsumed), got %#v", items)
	}
	if items[0].Title != "Workshop Quiz" {
		t.Errorf("title = %q, want Workshop Quiz", items[0].Title)
	}
}

func TestParseMultipleKeywordsPerRow(t *testing.T) {
	text := `
Program Calendar
1. 23 February eTest and Assignment due this week
`
	items := parse(t, text)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %#v", items)
	}
	if items[0].Title != "eTest" || items[1].Title != "Assignment" {
		t.Errorf("titles = %q, %q", items[0].Title, items[1].Title)
	}
}

func TestParseNoHeader(t *testing.T) {
	text := `
1. 23 February Workshop Quiz
`
	if items := parse(t, text); len(items) != 0 {
		t.Errorf("expected no items without a section header, got %#v", items)
	}
}

func TestParseNonTeachingContentRow(t *testing.T) {
	// A split row whose content names an exam period yields nothing even
	// though "exam" is in the keyword table: the row is not a teaching week.
	text := `
Program Calendar
1.
Study Week no classes
2.
Examination period
`
	if items := parse(t, text); len(items) != 0 {
		t.Errorf("expected no items, got %#v", items)
	}
}
