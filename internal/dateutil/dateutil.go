// Package dateutil provides calendar arithmetic over YYYY-MM-DD date
// strings. All dates in the domain are carried in this format, which is
// lexicographically date-ordered, so callers may compare dates with plain
// string comparison.
package dateutil

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

// Parse splits a YYYY-MM-DD string into calendar components. Malformed
// input is a caller contract violation; the error exists for the few
// boundaries (CSV import) that feed user data in.
func Parse(s string) (year, month, day int, err error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return t.Year(), int(t.Month()) - 1, t.Day(), nil
}

// Valid reports whether s is a well-formed YYYY-MM-DD date.
func Valid(s string) bool {
	_, err := time.Parse(layout, s)
	return err == nil
}

// AddDays returns the calendar date n days after dateStr, format
// preserving. Month and year rollover follow Gregorian rules, leap years
// included.
func AddDays(dateStr string, n int) string {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		return ""
	}

	return t.AddDate(0, 0, n).Format(layout)
}

// MonthIndex returns the 0-based month of dateStr.
func MonthIndex(dateStr string) int {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		return 0
	}

	return int(t.Month()) - 1
}

// Year returns the calendar year of dateStr.
func Year(dateStr string) int {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		return 0
	}

	return t.Year()
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(layout)
}

// Period is a sub-period selector inside a year.
type Period string

const (
	PeriodYear      Period = "year"
	PeriodSemester1 Period = "semester_1"
	PeriodSemester2 Period = "semester_2"
	PeriodQuarter1  Period = "quarter_1"
	PeriodQuarter2  Period = "quarter_2"
	PeriodQuarter3  Period = "quarter_3"
	PeriodQuarter4  Period = "quarter_4"
)

// MonthRange returns the inclusive 0-based month bounds covered by the
// period. Semesters are months 0-5 and 6-11; quarter k covers the 3-month
// block starting at (k-1)*3. Unknown selectors behave as the full year.
func (p Period) MonthRange() (start, end int) {
	switch p {
	case PeriodSemester1:
		return 0, 5
	case PeriodSemester2:
		return 6, 11
	case PeriodQuarter1:
		return 0, 2
	case PeriodQuarter2:
		return 3, 5
	case PeriodQuarter3:
		return 6, 8
	case PeriodQuarter4:
		return 9, 11
	}

	return 0, 11
}

// Contains reports whether a 0-based month index falls inside the period.
func (p Period) Contains(month int) bool {
	start, end := p.MonthRange()
	return month >= start && month <= end
}
