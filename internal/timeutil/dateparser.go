// Package timeutil parses the dates users type into the picker.
package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dayLayouts are tried in order; ISO first so ambiguous input resolves to it.
var dayLayouts = []string{
	"2006-01-02", // ISO
	"02/01/2006", // European
	"02.01.2006", // German
}

// monthLayouts resolve to the first day of the month.
var monthLayouts = []string{
	"2006-01",
	"01-2006",
	"01.2006",
}

var (
	yearOnlyRe      = regexp.MustCompile(`^\d{4}$`)
	isoPartialDayRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)
	euroPartialRe   = regexp.MustCompile(`^\d{1,2}[/.]\d{1,2}\.?$`)
	tooManyPartsRe  = regexp.MustCompile(`^\d+[-/.]\d+[-/.]\d+[-/.]`)
)

// ParseDate parses a date typed by the user, relative to now.
// The result is midnight of that day in now's location.
//
// Valid inputs:
//   - "2024-01-15", "15/01/2024", "15.01.2024" (a day)
//   - "2024-01", "01-2024", "01.2024" (first day of the month)
//   - "today" (or "t"), "yesterday" (or "y"), "tomorrow"
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)")
	}

	loc := now.Location()
	switch strings.ToLower(input) {
	case "today", "t":
		return startOfDay(now), nil
	case "yesterday", "y":
		return startOfDay(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)), nil
	}

	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range monthLayouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, buildDateParseError(input)
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month (use format YYYY-MM or YYYY-MM-DD, e.g., %s-01)", input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-%s)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, strings.TrimSuffix(input, "."))
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD, DD/MM/YYYY or MM-YYYY, e.g., 2024-01-15, 15/01/2024 or 01-2024)", input)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
