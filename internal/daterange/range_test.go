package daterange

import (
	"errors"
	"testing"
	"time"
)

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		input    string
		expected Granularity
	}{
		{"day", Day},
		{"days", Day},
		{"D", Day},
		{"week", Week},
		{"Weeks", Week},
		{"w", Week},
		{"month", Month},
		{"MONTHS", Month},
		{" m ", Month},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			g, err := ParseGranularity(tt.input)
			if err != nil {
				t.Fatalf("ParseGranularity(%q) returned unexpected error: %v", tt.input, err)
			}
			if g != tt.expected {
				t.Errorf("ParseGranularity(%q) = %q, expected %q", tt.input, g, tt.expected)
			}
		})
	}
}

func TestParseGranularity_Invalid(t *testing.T) {
	for _, input := range []string{"", "year", "fortnight", "dd"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseGranularity(input)
			if !errors.Is(err, ErrInvalidGranularity) {
				t.Errorf("ParseGranularity(%q) error = %v, expected ErrInvalidGranularity", input, err)
			}
		})
	}
}

func TestGranularity_Valid(t *testing.T) {
	for _, g := range Granularities() {
		if !g.Valid() {
			t.Errorf("%q.Valid() = false, expected true", g)
		}
	}
	if Granularity("days").Valid() {
		t.Error(`"days".Valid() = true, expected false (only canonical names are valid)`)
	}
}

func TestRange_Equal(t *testing.T) {
	a := DayBounds(makeTime(2024, time.May, 1, 8, 0, 0))
	b := DayBounds(makeTime(2024, time.May, 1, 20, 0, 0))
	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v", a, b)
	}

	// Same instants in a different zone are still equal
	c := Range{Start: a.Start.In(time.FixedZone("X", 3600)), End: a.End.In(time.FixedZone("X", 3600))}
	if !a.Equal(c) {
		t.Errorf("expected %v to equal %v", a, c)
	}

	d := DayBounds(makeTime(2024, time.May, 2, 8, 0, 0))
	if a.Equal(d) {
		t.Errorf("expected %v to differ from %v", a, d)
	}
}

func TestRange_Contains(t *testing.T) {
	r := DayBounds(makeTime(2024, time.May, 1, 0, 0, 0))
	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{"start is inclusive", r.Start, true},
		{"end is inclusive", r.End, true},
		{"before start", r.Start.Add(-time.Nanosecond), false},
		{"after end", r.End.Add(time.Millisecond), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.input); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	if got := DayBounds(makeTime(2024, time.May, 1, 0, 0, 0)).Days(); got != 1 {
		t.Errorf("day Days() = %d, expected 1", got)
	}
	if got := MonthBounds(makeTime(2024, time.February, 1, 0, 0, 0)).Days(); got != 29 {
		t.Errorf("february 2024 Days() = %d, expected 29", got)
	}
	if got := (Range{Start: makeTime(2024, time.May, 2, 0, 0, 0), End: makeTime(2024, time.May, 1, 0, 0, 0)}).Days(); got != 0 {
		t.Errorf("inverted range Days() = %d, expected 0", got)
	}
}

func TestRange_String(t *testing.T) {
	r := WeekBounds(makeTime(2024, time.June, 5, 0, 0, 0))
	if got := r.String(); got != "2024-06-03..2024-06-09" {
		t.Errorf("String() = %q, expected %q", got, "2024-06-03..2024-06-09")
	}
}
