package reconcile_test

import (
	"reflect"
	"testing"
	"time"

	"uni-deadline-tracker/internal/extract/reconcile"
	"uni-deadline-tracker/internal/model"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMergeUpgradesTBAInPlace(t *testing.T) {
	schedule := []model.CalendarItem{
		{Title: "Workshop Quiz", Week: 3, Date: day(time.March, 9), Weight: 10},
		{Title: "Final Exam - held during the examination period", IsTBA: true, Week: 12, Weight: 40},
	}
	calendar := []model.CalendarItem{
		{Title: "Exam", Week: 15, Date: day(time.June, 1), CalendarSourced: true},
	}

	merged := reconcile.Merge(schedule, calendar)
	if len(merged) != 2 {
		t.Fatalf("upgrade must not grow the list: got %d items", len(merged))
	}
	exam := merged[1]
	if exam.IsTBA {
		t.Error("entry still TBA after a calendar match")
	}
	if exam.Title != "Exam" || exam.Week != 15 || !exam.Date.Equal(day(time.June, 1)) {
		t.Errorf("unexpected upgraded entry: %#v", exam)
	}
	if exam.Weight != 40 {
		t.Errorf("weight = %d, want the schedule's 40 kept", exam.Weight)
	}
	if !exam.CalendarSourced {
		t.Error("upgraded entry should be marked calendar sourced")
	}
}

func TestMergeKeepsTBAWhenCalendarItemUndated(t *testing.T) {
	// The calendar row named the quiz but its begin-date cell was
	// unparseable, so the calendar item carries no date of its own. The
	// inventory entry must stay TBA with a zero date; only the week carries
	// over as a hint.
	schedule := []model.CalendarItem{
		{Title: "Quiz", IsTBA: true, Weight: 10},
	}
	calendar := []model.CalendarItem{
		{Title: "Quiz", Week: 1, IsTBA: true, CalendarSourced: true},
	}

	merged := reconcile.Merge(schedule, calendar)
	if len(merged) != 1 {
		t.Fatalf("expected 1 item, got %d: %#v", len(merged), merged)
	}
	quiz := merged[0]
	if !quiz.IsTBA {
		t.Error("entry lost its TBA flag without a concrete date")
	}
	if !quiz.Date.IsZero() {
		t.Errorf("date = %v, want zero", quiz.Date)
	}
	if quiz.Week != 1 {
		t.Errorf("week = %d, want the calendar's 1 as a hint", quiz.Week)
	}
	if quiz.Weight != 10 {
		t.Errorf("weight = %d, want the inventory's 10 kept", quiz.Weight)
	}
}

func TestMergeDropsResolvedDuplicates(t *testing.T) {
	// A multi-week schedule expansion already dated weeks 5 and 9; the
	// calendar repeats week 5 and adds week 6.
	schedule := []model.CalendarItem{
		{Title: "Worksheet", Week: 5, Date: day(time.March, 23)},
		{Title: "Worksheet", Week: 9, Date: day(time.April, 20)},
	}
	calendar := []model.CalendarItem{
		{Title: "Worksheet", Week: 5, Date: day(time.March, 23), CalendarSourced: true},
		{Title: "Worksheet", Week: 6, Date: day(time.March, 30), CalendarSourced: true},
	}

	merged := reconcile.Merge(schedule, calendar)
	if len(merged) != 3 {
		t.Fatalf("expected 3 items (week 5 deduplicated), got %d: %#v", len(merged), merged)
	}
	if merged[2].Week != 6 || !merged[2].CalendarSourced {
		t.Errorf("unexpected appended entry: %#v", merged[2])
	}
}

func TestMergeAppendsUnmatched(t *testing.T) {
	schedule := []model.CalendarItem{
		{Title: "Assignment", Week: 8, Date: day(time.April, 13)},
	}
	calendar := []model.CalendarItem{
		{Title: "Mid-Semester Test", Week: 6, Date: day(time.March, 30), CalendarSourced: true},
	}

	merged := reconcile.Merge(schedule, calendar)
	if len(merged) != 2 {
		t.Fatalf("expected 2 items, got %d", len(merged))
	}
	if merged[1].Title != "Mid-Semester Test" {
		t.Errorf("unexpected appended entry: %#v", merged[1])
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	schedule := []model.CalendarItem{
		{Title: "Practical Test - refer to announcements", IsTBA: true, Week: 4, Weight: 15},
		{Title: "Worksheet", Week: 5, Date: day(time.March, 23)},
	}
	calendar := []model.CalendarItem{
		{Title: "Practical Test", Week: 7, Date: day(time.April, 6), CalendarSourced: true},
		{Title: "Worksheet", Week: 5, Date: day(time.March, 23), CalendarSourced: true},
		{Title: "eTest", Week: 10, Date: day(time.April, 27), CalendarSourced: true},
	}

	once := reconcile.Merge(schedule, calendar)
	twice := reconcile.Merge(once, calendar)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merging the same calendar twice changed the result:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	schedule := []model.CalendarItem{
		{Title: "Exam", IsTBA: true, Week: 12},
	}
	calendar := []model.CalendarItem{
		{Title: "Exam", Week: 15, Date: day(time.June, 1), CalendarSourced: true},
	}

	reconcile.Merge(schedule, calendar)
	if !schedule[0].IsTBA {
		t.Error("input schedule slice was mutated")
	}
}

func TestAddSequenceNumbers(t *testing.T) {
	in := []model.Deadline{
		{Unit: "COMP1000", Title: "Practical Test", Week: 3},
		{Unit: "COMP1000", Title: "Final Exam", Week: 15},
		{Unit: "COMP1000", Title: "Practical Test", Week: 7},
		{Unit: "COMP1000", Title: "Practical Test", Week: 11},
	}

	out := reconcile.AddSequenceNumbers(in)
	want := []string{"Practical Test 1", "Final Exam", "Practical Test 2", "Practical Test 3"}
	for i, w := range want {
		if out[i].Title != w {
			t.Errorf("out[%d].Title = %q, want %q", i, out[i].Title, w)
		}
	}
	if in[0].Title != "Practical Test" {
		t.Error("input slice was mutated")
	}
}

func TestAddSequenceNumbersGroupsByBaseTitle(t *testing.T) {
	// Descriptive suffixes and trailing parentheticals do not split a group.
	in := []model.Deadline{
		{Unit: "COMP1000", Title: "Worksheet - online (x 9)"},
		{Unit: "COMP1000", Title: "Worksheet"},
	}

	out := reconcile.AddSequenceNumbers(in)
	if out[0].Title != "Worksheet 1" || out[1].Title != "Worksheet 2" {
		t.Errorf("titles = %q, %q", out[0].Title, out[1].Title)
	}
}

func TestAddSequenceNumbersSeparatesUnits(t *testing.T) {
	in := []model.Deadline{
		{Unit: "COMP1000", Title: "Quiz"},
		{Unit: "MATH1011", Title: "Quiz"},
	}

	out := reconcile.AddSequenceNumbers(in)
	if out[0].Title != "Quiz" || out[1].Title != "Quiz" {
		t.Errorf("cross-unit singletons must keep their titles: %q, %q", out[0].Title, out[1].Title)
	}
}
