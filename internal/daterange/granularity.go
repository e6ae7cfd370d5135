package daterange

import (
	"fmt"
	"strings"
)

// Granularity is the unit a range covers and steps by.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

// Granularities returns the supported granularities, smallest first.
func Granularities() []Granularity {
	return []Granularity{Day, Week, Month}
}

// ParseGranularity parses a granularity name.
// Accepts "day"/"days"/"d", "week"/"weeks"/"w" and "month"/"months"/"m", case-insensitive.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "days", "d":
		return Day, nil
	case "week", "weeks", "w":
		return Week, nil
	case "month", "months", "m":
		return Month, nil
	}
	return "", fmt.Errorf("%w: %q (valid values: day, week, month)", ErrInvalidGranularity, s)
}

// Valid reports whether g is one of Day, Week or Month.
func (g Granularity) Valid() bool {
	switch g {
	case Day, Week, Month:
		return true
	}
	return false
}

func (g Granularity) String() string {
	return string(g)
}
