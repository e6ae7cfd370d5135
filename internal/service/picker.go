package service

import (
	"fmt"
	"time"

	"github.com/xolan/datepicker/internal/config"
	"github.com/xolan/datepicker/internal/daterange"
	"github.com/xolan/datepicker/internal/picker"
	"github.com/xolan/datepicker/internal/state"
	"github.com/xolan/datepicker/internal/timeutil"
)

// Result describes the picker after an operation
type Result struct {
	Granularity daterange.Granularity
	Range       daterange.Range
	Label       string
	Changed     bool
}

// PickerService loads, drives and persists the picker state
type PickerService struct {
	statePath string
	config    config.Config
	now       func() time.Time
}

// NewPickerService creates a new PickerService
func NewPickerService(statePath string, cfg config.Config) *PickerService {
	return &PickerService{
		statePath: statePath,
		config:    cfg,
		now:       time.Now,
	}
}

// SetClock replaces the clock used for "today" and initial state (for testing).
func (s *PickerService) SetClock(now func() time.Time) {
	s.now = now
}

// SetConfig replaces the configuration used for the timezone and the
// granularity of a fresh picker.
func (s *PickerService) SetConfig(cfg config.Config) {
	s.config = cfg
}

// Now returns the current time in the configured timezone.
func (s *PickerService) Now() (time.Time, error) {
	loc, err := s.config.Location()
	if err != nil {
		return time.Time{}, err
	}
	return s.now().In(loc), nil
}

// Session is an open picker whose change events are saved as they happen.
type Session struct {
	*picker.Picker
	saveErr error
}

// Err returns the error of the most recent save triggered by a change event.
func (s *Session) Err() error {
	return s.saveErr
}

// Open builds a picker from the saved state, or from the configured default
// granularity and today if nothing was saved.
func (s *PickerService) Open() (*Session, error) {
	now, err := s.Now()
	if err != nil {
		return nil, err
	}

	saved, err := state.Load(s.statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load picker state: %w", err)
	}

	var p *picker.Picker
	if saved == nil {
		p, err = picker.New(s.config.Granularity(), now)
		if err != nil {
			return nil, err
		}
	} else {
		p, err = picker.New(saved.Granularity, saved.Range.Start)
		if err != nil {
			return nil, err
		}
		// Saved instants come back with a fixed offset; move them to the
		// configured zone so later steps follow its DST rules.
		loc := now.Location()
		r := daterange.Range{Start: saved.Range.Start.In(loc), End: saved.Range.End.In(loc)}
		if err := p.SetRange(&r); err != nil {
			return nil, err
		}
	}

	sess := &Session{Picker: p}
	p.OnChange(func(picker.ChangeEvent) {
		sess.saveErr = s.Save(p)
	})
	return sess, nil
}

// Save persists the picker's granularity and range.
func (s *PickerService) Save(p *picker.Picker) error {
	st := state.State{
		Granularity: p.Granularity(),
		Range:       p.Range(),
		UpdatedAt:   s.now(),
	}
	if err := state.Save(s.statePath, st); err != nil {
		return fmt.Errorf("failed to save picker state: %w", err)
	}
	return nil
}

// Show returns the current picker state without changing it.
func (s *PickerService) Show() (*Result, error) {
	sess, err := s.Open()
	if err != nil {
		return nil, err
	}
	return resultOf(sess.Picker, false), nil
}

// Step navigates by delta units of the current granularity.
func (s *PickerService) Step(delta int) (*Result, error) {
	return s.do(func(p *picker.Picker) (bool, error) {
		return p.Navigate(delta)
	})
}

// Pick selects the range containing the date typed by the user.
func (s *PickerService) Pick(input string) (*Result, error) {
	now, err := s.Now()
	if err != nil {
		return nil, err
	}
	date, err := timeutil.ParseDate(input, now)
	if err != nil {
		return nil, err
	}
	return s.do(func(p *picker.Picker) (bool, error) {
		return p.PickDate(date)
	})
}

// Today selects the range containing the current date.
func (s *PickerService) Today() (*Result, error) {
	now, err := s.Now()
	if err != nil {
		return nil, err
	}
	return s.do(func(p *picker.Picker) (bool, error) {
		return p.Today(now)
	})
}

// SetGranularity switches the granularity by name and saves the re-derived range.
func (s *PickerService) SetGranularity(name string) (*Result, error) {
	g, err := daterange.ParseGranularity(name)
	if err != nil {
		return nil, err
	}

	sess, err := s.Open()
	if err != nil {
		return nil, err
	}
	p := sess.Picker
	before := p.Range()
	prev := p.Granularity()
	if err := p.SetGranularity(g); err != nil {
		return nil, err
	}
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return resultOf(p, prev != g || !before.Equal(p.Range())), nil
}

// Reset forgets the saved state.
func (s *PickerService) Reset() error {
	return state.Clear(s.statePath)
}

// do opens the picker, applies op and makes sure a change was persisted.
func (s *PickerService) do(op func(p *picker.Picker) (bool, error)) (*Result, error) {
	sess, err := s.Open()
	if err != nil {
		return nil, err
	}
	changed, err := op(sess.Picker)
	if err != nil {
		return nil, err
	}
	if err := sess.Err(); err != nil {
		return nil, err
	}
	return resultOf(sess.Picker, changed), nil
}

func resultOf(p *picker.Picker, changed bool) *Result {
	return &Result{
		Granularity: p.Granularity(),
		Range:       p.Range(),
		Label:       p.Label(),
		Changed:     changed,
	}
}
