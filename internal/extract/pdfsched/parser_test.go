package pdfsched_test

import (
	"testing"
	"time"

	"uni-deadline-tracker/internal/extract/pdfsched"
	"uni-deadline-tracker/internal/model"
)

func parse(t *testing.T, text string) []model.CalendarItem {
	t.Helper()
	return pdfsched.Parse(text, "COMP1000", 2026, 1, model.DefaultKeywords())
}

func TestParseSingleDatedBlock(t *testing.T) {
	text := `
Assessment Task Value % Due Date
25%
Practical Test
Week: 7
Day: Friday 3rd April
Time: 23:59
`
	items := parse(t, text)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %#v", len(items), items)
	}

	it := items[0]
	if it.Title != "Practical Test" {
		t.Errorf("title = %q", it.Title)
	}
	if it.Weight != 25 {
		t.Errorf("weight = %d, want 25", it.Weight)
	}
	if it.Week != 7 {
		t.Errorf("week = %d, want 7", it.Week)
	}
	if want := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC); !it.Date.Equal(want) {
		t.Errorf("date = %v, want %v (exact day preferred over week arithmetic)", it.Date, want)
	}
	if it.ExactTime != "23:59" {
		t.Errorf("exact time = %q, want 23:59", it.ExactTime)
	}
	if it.IsTBA {
		t.Error("item must not be TBA")
	}
}

func TestParseInlineWeightLine(t *testing.T) {
	// The weight can terminate the title line instead of standing alone.
	text := `
Workshop Quiz 5%
Week: 4
Day:
Time:
`
	items := parse(t, text)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %#v", items)
	}
	if items[0].Title != "Workshop Quiz" || items[0].Weight != 5 {
		t.Errorf("unexpected item: %#v", items[0])
	}
}

func TestParseMultiWeekExpansion(t *testing.T) {
	text := `
10%
Worksheet (x 9)
Week: 2-4
Day: Monday
Time: 09:00
`
	items := parse(t, text)
	if len(items) != 3 {
		t.Fatalf("expected 3 items for weeks 2-4, got %d: %#v", len(items), items)
	}
	for i, want := range []int{2, 3, 4} {
		it := items[i]
		if it.Week != want {
			t.Errorf("item %d week = %d, want %d", i, it.Week, want)
		}
		if it.Title != "Worksheet (x 9)" {
			t.Errorf("item %d title = %q", i, it.Title)
		}
		if it.Weight != 10 {
			t.Errorf("item %d weight = %d, want 10", i, it.Weight)
		}
		wantDate := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC).AddDate(0, 0, (want-1)*7)
		if !it.Date.Equal(wantDate) {
			t.Errorf("item %d date = %v, want %v", i, it.Date, wantDate)
		}
		if it.IsTBA {
			t.Errorf("item %d must not be TBA", i)
		}
	}
}

func TestParseTBAClassification(t *testing.T) {
	t.Run("Descriptive week phrase", func(t *testing.T) {
		text := `
50%
Final Exam
Week: Examination period
Day: TBA
Time: TBA
`
		items := parse(t, text)
		if len(items) != 1 || !items[0].IsTBA {
			t.Fatalf("expected single TBA item, got %#v", items)
		}
		if !items[0].Date.IsZero() {
			t.Errorf("TBA item must not carry a date: %#v", items[0])
		}
		if items[0].Weight != 50 {
			t.Errorf("weight = %d, want 50", items[0].Weight)
		}
	})

	t.Run("Relative day phrase keeps week hint", func(t *testing.T) {
		text := `
5%
Workshop Quiz
Week: 3
Day: 2 hours after the workshop
Time:
`
		items := parse(t, text)
		if len(items) != 1 || !items[0].IsTBA {
			t.Fatalf("expected single TBA item, got %#v", items)
		}
		if items[0].Week != 3 {
			t.Errorf("TBA item should keep the week hint, got %#v", items[0])
		}
	})

	t.Run("Nothing datable", func(t *testing.T) {
		text := `
10%
Participation
Week:
Day:
Time:
`
		items := parse(t, text)
		if len(items) != 1 || !items[0].IsTBA {
			t.Fatalf("expected single TBA item, got %#v", items)
		}
	})
}

func TestParseWeekListExpansion(t *testing.T) {
	// A comma list expands like a range, dating each listed week's Monday.
	text := `
15%
Lab Report
Week: 5, 9
Day:
Time:
`
	items := parse(t, text)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %#v", len(items), items)
	}
	wantLast := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 8*7)
	if !items[1].Date.Equal(wantLast) {
		t.Errorf("week 9 date = %v, want %v", items[1].Date, wantLast)
	}
}

func TestParsePlaceholderRecovery(t *testing.T) {
	t.Run("Corrupted weight tolerated", func(t *testing.T) {
		text := `
#5%
Mid-Semester Test
Week: 6
Day:
Time:
`
		items := parse(t, text)
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %#v", items)
		}
		if items[0].Weight != 0 {
			t.Errorf("corrupted weight must stay unknown, got %d", items[0].Weight)
		}
		if items[0].Week != 6 || items[0].IsTBA {
			t.Errorf("week still resolves: %#v", items[0])
		}
	})

	t.Run("Corrupted day recovered from ordinal suffix", func(t *testing.T) {
		text := `
20%
eTest
Week: 10
Day: Friday ##rd April
Time: 17:00
`
		items := parse(t, text)
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %#v", items)
		}
		if want := time.Date(2026, 4, 23, 0, 0, 0, 0, time.UTC); !items[0].Date.Equal(want) {
			t.Errorf("date = %v, want %v", items[0].Date, want)
		}
	})

	t.Run("Corrupted multiplicity suffix removed", func(t *testing.T) {
		text := `
10%
Worksheet (x #)
Week: 2
Day:
Time:
`
		items := parse(t, text)
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %#v", items)
		}
		if items[0].Title != "Worksheet" {
			t.Errorf("title = %q, want %q", items[0].Title, "Worksheet")
		}
	})
}

func TestParseWrappedTitleAndLabels(t *testing.T) {
	// The title wraps across lines and the Day:/Time: values continue on the
	// lines below their labels; footers are ignored.
	text := `
Curtin University
30%
Laboratory Report and
Reflective Summary
Week: 12
Day: Friday
22nd May
Time:
23:59
Page 4
`
	items := parse(t, text)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %#v", items)
	}
	it := items[0]
	if it.Title != "Laboratory Report and Reflective Summary" {
		t.Errorf("title = %q", it.Title)
	}
	if want := time.Date(2026, 5, 22, 0, 0, 0, 0, time.UTC); !it.Date.Equal(want) {
		t.Errorf("date = %v, want %v", it.Date, want)
	}
	if it.ExactTime != "23:59" {
		t.Errorf("exact time = %q", it.ExactTime)
	}
}

func TestParseMultipleBlocks(t *testing.T) {
	text := `
25%
Assignment 1
Week: 6
Day: Friday 3rd April
Time: 23:59
25%
Assignment 2
Week: 11
Day: Friday 8th May
Time: 23:59
`
	items := parse(t, text)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %#v", len(items), items)
	}
	if items[0].Title != "Assignment 1" || items[1].Title != "Assignment 2" {
		t.Errorf("titles = %q, %q", items[0].Title, items[1].Title)
	}
	if items[1].Week != 11 {
		t.Errorf("second block week = %d, want 11", items[1].Week)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if items := parse(t, ""); len(items) != 0 {
		t.Errorf("expected no items, got %#v", items)
	}
	if items := parse(t, "no labeled blocks here"); len(items) != 0 {
		t.Errorf("expected no items, got %#v", items)
	}
}
