// Package picker holds the state of a stepping date-range picker: a granularity
// and the range currently shown. Navigation replaces the range wholesale and
// notifies listeners only when the range actually changes.
package picker

import (
	"fmt"
	"time"

	"github.com/xolan/datepicker/internal/daterange"
)

// ChangeEvent is delivered to listeners after the current range was replaced
// by Navigate or PickDate.
type ChangeEvent struct {
	Range       daterange.Range
	Previous    daterange.Range
	Granularity daterange.Granularity
}

// Picker is not safe for concurrent use; hosts dispatch one interaction at a time.
type Picker struct {
	granularity daterange.Granularity
	current     daterange.Range
	listeners   []func(ChangeEvent)
}

// New creates a picker showing the range of granularity g that contains ref.
func New(g daterange.Granularity, ref time.Time) (*Picker, error) {
	r, err := daterange.Bounds(g, ref)
	if err != nil {
		return nil, err
	}
	return &Picker{granularity: g, current: r}, nil
}

// Granularity returns the current granularity
func (p *Picker) Granularity() daterange.Granularity {
	return p.granularity
}

// Range returns the range currently shown.
func (p *Picker) Range() daterange.Range {
	return p.current
}

// OnChange registers fn to be called on every change event.
func (p *Picker) OnChange(fn func(ChangeEvent)) {
	p.listeners = append(p.listeners, fn)
}

// SetGranularity switches the granularity and re-derives the current range
// from its start date. No change event is emitted.
func (p *Picker) SetGranularity(g daterange.Granularity) error {
	r, err := daterange.Bounds(g, p.current.Start)
	if err != nil {
		return err
	}
	p.granularity = g
	p.current = r
	return nil
}

// SetRange replaces the current range without emitting a change event.
func (p *Picker) SetRange(r *daterange.Range) error {
	if r == nil {
		return daterange.ErrNullRange
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: %s < %s", daterange.ErrInvertedRange, r.End.Format(time.RFC3339), r.Start.Format(time.RFC3339))
	}
	p.current = *r
	return nil
}

// Navigate moves the current range by delta units of the granularity.
// It reports whether the range changed.
func (p *Picker) Navigate(delta int) (bool, error) {
	return p.apply(p.current.Start, delta)
}

// PickDate selects the range of the current granularity containing t,
// as when a date is chosen from the popup.
func (p *Picker) PickDate(t time.Time) (bool, error) {
	return p.apply(t, 0)
}

// Today selects the range containing now.
func (p *Picker) Today(now time.Time) (bool, error) {
	return p.PickDate(now)
}

func (p *Picker) apply(ref time.Time, delta int) (bool, error) {
	next, err := daterange.Step(p.granularity, ref, delta)
	if err != nil {
		return false, err
	}
	if next.Equal(p.current) {
		return false, nil
	}

	ev := ChangeEvent{Range: next, Previous: p.current, Granularity: p.granularity}
	p.current = next
	for _, fn := range p.listeners {
		fn(ev)
	}
	return true, nil
}
