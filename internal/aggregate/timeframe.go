// Package aggregate turns a user's expenses into dashboard summaries and
// fixed-cardinality time series. Every function is pure: the reference
// instant is passed in and inputs are never modified.
package aggregate

import (
	"strings"
	"time"
)

// TimeFrame selects both the date range and the bucket granularity.
type TimeFrame string

const (
	Day   TimeFrame = "day"
	Month TimeFrame = "month"
	Year  TimeFrame = "year"
)

// ParseTimeFrame is case-insensitive; unknown values fall back to Month.
func ParseTimeFrame(s string) TimeFrame {
	switch TimeFrame(strings.ToLower(strings.TrimSpace(s))) {
	case Day:
		return Day
	case Year:
		return Year
	default:
		return Month
	}
}

// Range is the closed interval [Start, End] covered by a time frame.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies within the range, both ends inclusive.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Range derives the frame boundaries from now, in now's location.
func (f TimeFrame) Range(now time.Time) Range {
	y, m, d := now.Date()
	loc := now.Location()

	var start time.Time
	switch f {
	case Day:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Year:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	}
	return Range{Start: start, End: now}
}

// divisor is the number of sub-periods the average is spread over:
// hours per day, days in the current month, months per year.
func (f TimeFrame) divisor(now time.Time) int64 {
	switch f {
	case Day:
		return 24
	case Year:
		return 12
	default:
		return int64(DaysIn(now.Year(), now.Month()))
	}
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
