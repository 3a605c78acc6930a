// Package reconcile merges schedule-derived and calendar-derived assessment
// items into one deduplicated list and numbers recurring items.
package reconcile

import (
	"uni-deadline-tracker/internal/extract/titlematch"
	"uni-deadline-tracker/internal/model"
)

// Merge folds calendar items into the schedule list. Calendar dates upgrade
// matching TBA schedule entries in place; calendar items already covered by a
// resolved schedule entry for the same week are dropped as duplicates;
// everything else is appended. A calendar item that is itself TBA never
// resolves an entry: it contributes at most a week hint, so an entry only
// loses its TBA flag when a concrete date arrives. Inputs are not mutated, so
// repeated calls with the same inputs produce the same output.
func Merge(schedule, calendar []model.CalendarItem) []model.CalendarItem {
	merged := make([]model.CalendarItem, len(schedule))
	copy(merged, schedule)

	for _, cal := range calendar {
		if i := findTBAMatch(merged, cal.Title); i >= 0 {
			if cal.IsTBA {
				hintWeek(&merged[i], cal)
			} else {
				upgrade(&merged[i], cal)
			}
			continue
		}
		if coveredByResolved(merged, cal) {
			continue
		}
		merged = append(merged, cal)
	}
	return merged
}

// findTBAMatch returns the first TBA entry whose title overlaps, or -1.
func findTBAMatch(items []model.CalendarItem, title string) int {
	for i := range items {
		if items[i].IsTBA && titlematch.TitlesOverlap(items[i].Title, title) {
			return i
		}
	}
	return -1
}

// upgrade resolves a TBA entry with the calendar's date. The calendar's
// canonical title wins over the schedule's raw text; the schedule's weight is
// kept when the calendar has none.
func upgrade(item *model.CalendarItem, cal model.CalendarItem) {
	item.Title = cal.Title
	item.Week = cal.Week
	item.Date = cal.Date
	item.ExactTime = cal.ExactTime
	item.IsTBA = false
	item.CalendarSourced = true
	if cal.Weight != 0 {
		item.Weight = cal.Weight
	}
}

// hintWeek carries an undated calendar match's week onto a TBA entry that has
// none. The entry stays TBA and keeps its zero date.
func hintWeek(item *model.CalendarItem, cal model.CalendarItem) {
	if item.Week == 0 {
		item.Week = cal.Week
	}
}

// coveredByResolved reports whether a resolved schedule entry already names
// this title in this week, as happens when a multi-week schedule expansion
// produced the date first.
func coveredByResolved(items []model.CalendarItem, cal model.CalendarItem) bool {
	for i := range items {
		if !items[i].IsTBA && items[i].Week == cal.Week &&
			titlematch.TitlesOverlap(items[i].Title, cal.Title) {
			return true
		}
	}
	return false
}
