package daterange

import (
	"fmt"
	"time"
)

// lastMillisecond is the sub-second part of an end-of-day boundary (.999).
const lastMillisecond = int(time.Second - time.Millisecond)

// maxStepDays bounds a single step to about three billion years, well inside
// what time.Date can normalize without integer overflow.
const maxStepDays = 1 << 40

// StartOfDay returns midnight (00:00:00.000) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of the given day in the same timezone
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, lastMillisecond, t.Location())
}

// isoWeekday maps Go's Sunday=0 to 7 so that Monday=1 ... Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DayBounds returns the day containing t.
func DayBounds(t time.Time) Range {
	return Range{Start: StartOfDay(t), End: EndOfDay(t)}
}

// WeekBounds returns the Monday-to-Sunday week containing t.
func WeekBounds(t time.Time) Range {
	start := StartOfDay(t).AddDate(0, 0, -(isoWeekday(t) - 1))
	return Range{Start: start, End: EndOfDay(start.AddDate(0, 0, 6))}
}

// MonthBounds returns the calendar month containing t.
// The last day is day 0 of the following month, so month lengths and leap
// years fall out of time.Date normalization.
func MonthBounds(t time.Time) Range {
	y, m, _ := t.Date()
	return Range{
		Start: time.Date(y, m, 1, 0, 0, 0, 0, t.Location()),
		End:   time.Date(y, m+1, 0, 23, 59, 59, lastMillisecond, t.Location()),
	}
}

// Bounds returns the canonical range of granularity g containing t.
func Bounds(g Granularity, t time.Time) (Range, error) {
	switch g {
	case Day:
		return DayBounds(t), nil
	case Week:
		return WeekBounds(t), nil
	case Month:
		return MonthBounds(t), nil
	}
	return Range{}, fmt.Errorf("%w: %q", ErrInvalidGranularity, string(g))
}

// AddMonths moves t by delta calendar months and returns the last day of the
// target month, keeping t's time of day. Anchoring on the last day avoids
// the overflow time.AddDate produces for e.g. Jan 31 + 1 month.
func AddMonths(t time.Time, delta int) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+time.Month(delta)+1, 0, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Step advances ref by delta units of g and returns the canonical range at
// the new point. 0 just normalizes ref. Steps spanning more than maxStepDays
// fail with ErrStepOutOfRange.
func Step(g Granularity, ref time.Time, delta int) (Range, error) {
	if limit := maxStepUnits(g); limit > 0 && (delta > limit || delta < -limit) {
		return Range{}, fmt.Errorf("%w: %d %s(s)", ErrStepOutOfRange, delta, string(g))
	}
	switch g {
	case Day:
		return DayBounds(ref.AddDate(0, 0, delta)), nil
	case Week:
		return WeekBounds(ref.AddDate(0, 0, 7*delta)), nil
	case Month:
		return MonthBounds(AddMonths(ref, delta)), nil
	}
	return Range{}, fmt.Errorf("%w: %q", ErrInvalidGranularity, string(g))
}

// maxStepUnits returns the largest |delta| Step accepts for g, or 0 for an
// unknown granularity.
func maxStepUnits(g Granularity) int {
	switch g {
	case Day:
		return maxStepDays
	case Week:
		return maxStepDays / 7
	case Month:
		return maxStepDays / 31
	}
	return 0
}
