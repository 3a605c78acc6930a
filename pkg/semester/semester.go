// Package semester converts teaching-week positions into calendar dates and
// parses ordinal day strings ("3rd May") out of free text, including text
// whose digits were replaced by a placeholder sentinel during PDF extraction.
package semester

import "time"

// weekCountCutover is the first year with a 14-week teaching calendar.
// Earlier years ran 13 teaching weeks.
const weekCountCutover = 2024

// verifiedStarts holds semester start dates confirmed against published
// academic calendars. Years outside this table fall back to the Nth-Monday
// rule in Start.
var verifiedStarts = map[int]map[int]time.Time{
	2023: {
		1: time.Date(2023, time.February, 27, 0, 0, 0, 0, time.UTC),
		2: time.Date(2023, time.July, 24, 0, 0, 0, 0, time.UTC),
	},
	2024: {
		1: time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC),
		2: time.Date(2024, time.July, 22, 0, 0, 0, 0, time.UTC),
	},
	2025: {
		1: time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC),
		2: time.Date(2025, time.July, 21, 0, 0, 0, 0, time.UTC),
	},
	2026: {
		1: time.Date(2026, time.February, 23, 0, 0, 0, 0, time.UTC),
		2: time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC),
	},
}

// TeachingWeeks returns the number of teaching weeks in the given year's
// semesters.
func TeachingWeeks(year int) int {
	if year >= weekCountCutover {
		return 14
	}
	return 13
}

// Start returns the first Monday of teaching week 1 for the given semester.
// Unverified years use the 4th Monday of February (semester 1) or July
// (semester 2).
func Start(year, semester int) time.Time {
	if bySem, ok := verifiedStarts[year]; ok {
		if start, ok := bySem[semester]; ok {
			return start
		}
	}
	month := time.February
	if semester == 2 {
		month = time.July
	}
	return nthMonday(year, month, 4)
}

// WeekToDate computes the date dayOffset days into the given teaching week.
// Any integer week is accepted; out-of-range weeks simply land outside the
// semester.
func WeekToDate(semester, year, week, dayOffset int) time.Time {
	return Start(year, semester).AddDate(0, 0, (week-1)*7+dayOffset)
}

func nthMonday(year int, month time.Month, n int) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset+(n-1)*7)
}
