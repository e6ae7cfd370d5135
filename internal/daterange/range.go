package daterange

import (
	"fmt"
	"time"
)

// Range is an inclusive interval [Start, End].
// Ranges built by this package start at 00:00:00.000 and end at 23:59:59.999.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Equal reports whether both boundaries denote the same instants.
func (r Range) Equal(other Range) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// Contains checks if t falls within the range (inclusive)
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the number of calendar days the range touches.
func (r Range) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	start := StartOfDay(r.Start)
	end := StartOfDay(r.End.In(r.Start.Location()))
	days := 1
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}
