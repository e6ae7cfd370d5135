package picker

import (
	"github.com/xolan/datepicker/internal/daterange"
)

// Display layouts per granularity
const (
	DayLabelLayout   = "Monday 02.01.2006"
	WeekLabelLayout  = "02.01.2006"
	MonthLabelLayout = "01.2006"
)

// Popup input layouts
const (
	DateInputLayout  = "2006-01-02"
	MonthInputLayout = "01-2006"
)

// Label formats r for display under granularity g.
func Label(g daterange.Granularity, r daterange.Range) string {
	switch g {
	case daterange.Day:
		return r.Start.Format(DayLabelLayout)
	case daterange.Week:
		return r.Start.Format(WeekLabelLayout) + " - " + r.End.Format(WeekLabelLayout)
	case daterange.Month:
		return r.Start.Format(MonthLabelLayout)
	}
	return r.String()
}

// Label returns the display text of the current range.
func (p *Picker) Label() string {
	return Label(p.granularity, p.current)
}

// InputLayout returns the layout the popup date entry uses; month pickers
// only ask for month and year.
func (p *Picker) InputLayout() string {
	if p.granularity == daterange.Month {
		return MonthInputLayout
	}
	return DateInputLayout
}
